package enrollments

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"est/internal/domain"
	"est/internal/repository"
)

type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Insert(ctx context.Context, e *domain.Enrollment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) ExistsForStudentAndCourse(ctx context.Context, studentID, courseID string) (bool, error) {
	args := m.Called(ctx, studentID, courseID)
	return args.Bool(0), args.Error(1)
}

type MockCourseGetter struct {
	mock.Mock
}

func (m *MockCourseGetter) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

const (
	studentID = "bbbbbbbb-0000-0000-0000-000000000001"
	courseID  = "cccccccc-0000-0000-0000-000000000001"
)

func student() domain.Principal {
	return domain.Principal{UserID: studentID, Username: "s1", Role: domain.RoleStudent}
}

func TestEnroll_Success(t *testing.T) {
	enrollments := new(MockEnrollmentRepository)
	courses := new(MockCourseGetter)

	courses.On("GetByID", mock.Anything, courseID).Return(&domain.Course{CourseID: courseID}, nil)
	enrollments.On("ExistsForStudentAndCourse", mock.Anything, studentID, courseID).Return(false, nil)
	enrollments.On("Insert", mock.Anything, mock.Anything).Return(nil)

	e, err := NewService(enrollments, courses).Enroll(context.Background(), student(), courseID)

	assert.NoError(t, err)
	assert.Equal(t, studentID, e.StudentID)
	assert.Equal(t, courseID, e.CourseID)
	assert.Equal(t, domain.EnrollmentActive, e.Status)
	assert.NotEmpty(t, e.EnrollmentID)
	assert.False(t, e.EnrollmentDate.IsZero())
}

func TestEnroll_OnlyStudents(t *testing.T) {
	enrollments := new(MockEnrollmentRepository)
	courses := new(MockCourseGetter)

	teacher := domain.Principal{UserID: studentID, Role: domain.RoleTeacher}
	_, err := NewService(enrollments, courses).Enroll(context.Background(), teacher, courseID)

	assert.ErrorIs(t, err, ErrForbidden)
	courses.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestEnroll_CourseMustExist(t *testing.T) {
	enrollments := new(MockEnrollmentRepository)
	courses := new(MockCourseGetter)

	courses.On("GetByID", mock.Anything, courseID).Return(nil, repository.ErrNotFound)

	_, err := NewService(enrollments, courses).Enroll(context.Background(), student(), courseID)

	assert.ErrorIs(t, err, ErrCourseNotFound)
	enrollments.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestEnroll_SequentialDuplicateRejected(t *testing.T) {
	enrollments := new(MockEnrollmentRepository)
	courses := new(MockCourseGetter)

	courses.On("GetByID", mock.Anything, courseID).Return(&domain.Course{CourseID: courseID}, nil)
	enrollments.On("ExistsForStudentAndCourse", mock.Anything, studentID, courseID).Return(true, nil)

	_, err := NewService(enrollments, courses).Enroll(context.Background(), student(), courseID)

	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
	enrollments.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

// racingEnrollmentRepo answers the duplicate check from rows already
// committed, the way the real store does. There is no lock between the
// check and the insert.
type racingEnrollmentRepo struct {
	mu      sync.Mutex
	rows    []domain.Enrollment
	arrived chan struct{}
	release chan struct{}
}

func (r *racingEnrollmentRepo) Insert(ctx context.Context, e *domain.Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *e)
	return nil
}

func (r *racingEnrollmentRepo) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Enrollment(nil), r.rows...), nil
}

func (r *racingEnrollmentRepo) ExistsForStudentAndCourse(ctx context.Context, studentID, courseID string) (bool, error) {
	r.mu.Lock()
	found := false
	for _, e := range r.rows {
		if e.StudentID == studentID && e.CourseID == courseID {
			found = true
		}
	}
	r.mu.Unlock()
	// Park here until every request has passed its duplicate check.
	r.arrived <- struct{}{}
	<-r.release
	return found, nil
}

type staticCourseGetter struct{}

func (staticCourseGetter) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	return &domain.Course{CourseID: id}, nil
}

// TestEnroll_ConcurrentDuplicateIsPossible documents the known limitation:
// the duplicate check is a read before the write with no isolation, so two
// concurrent requests for the same pair can both succeed. This test proves
// the window exists; it is not a bug to "fix" here without a store-level
// uniqueness guarantee.
func TestEnroll_ConcurrentDuplicateIsPossible(t *testing.T) {
	repo := &racingEnrollmentRepo{
		arrived: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	service := NewService(repo, staticCourseGetter{})

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.Enroll(context.Background(), student(), courseID)
		}(i)
	}

	// Release the writes only once both requests are past their check.
	<-repo.arrived
	<-repo.arrived
	close(repo.release)
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])

	rows, _ := repo.ListByStudent(context.Background(), studentID)
	assert.Len(t, rows, 2, "both enrollments commit: the check-then-write race is real")
}

func TestListMine_JoinsCoursesInApplicationCode(t *testing.T) {
	enrollments := new(MockEnrollmentRepository)
	courses := new(MockCourseGetter)

	enrollments.On("ListByStudent", mock.Anything, studentID).Return([]domain.Enrollment{
		{EnrollmentID: "e1", CourseID: courseID, Status: domain.EnrollmentActive},
	}, nil)
	courses.On("GetByID", mock.Anything, courseID).Return(&domain.Course{
		CourseID: courseID, Title: "Algebra", Description: "intro", TeacherName: "Ms. Prime",
	}, nil)

	details, err := NewService(enrollments, courses).ListMine(context.Background(), student())

	assert.NoError(t, err)
	assert.Len(t, details, 1)
	assert.Equal(t, "Algebra", details[0].Course.Title)
	assert.Equal(t, "Ms. Prime", details[0].Course.TeacherName)
}

func TestListMine_DropsEnrollmentsWithDeletedCourses(t *testing.T) {
	enrollments := new(MockEnrollmentRepository)
	courses := new(MockCourseGetter)

	gone := "cccccccc-0000-0000-0000-00000000dead"
	enrollments.On("ListByStudent", mock.Anything, studentID).Return([]domain.Enrollment{
		{EnrollmentID: "e1", CourseID: courseID},
		{EnrollmentID: "e2", CourseID: gone},
	}, nil)
	courses.On("GetByID", mock.Anything, courseID).Return(&domain.Course{CourseID: courseID, Title: "Algebra"}, nil)
	courses.On("GetByID", mock.Anything, gone).Return(nil, repository.ErrNotFound)

	details, err := NewService(enrollments, courses).ListMine(context.Background(), student())

	assert.NoError(t, err)
	assert.Len(t, details, 1, "an enrollment whose course is gone silently disappears")
	assert.Equal(t, "e1", details[0].EnrollmentID)
}
