package enrollments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"est/internal/domain"
	"est/internal/repository"
)

type Service struct {
	enrollments EnrollmentRepository
	courses     CourseGetter
}

func NewService(enrollments EnrollmentRepository, courses CourseGetter) *Service {
	return &Service{enrollments: enrollments, courses: courses}
}

// Enroll creates an active enrollment for the calling student. The
// duplicate check is a read before the write with no isolation in between:
// two concurrent requests for the same pair can both pass it and both
// insert. The store cannot express the cross-partition uniqueness that
// would close the window, so the race stands as a known limitation.
func (s *Service) Enroll(ctx context.Context, p domain.Principal, courseID string) (*domain.Enrollment, error) {
	if p.Role != domain.RoleStudent {
		return nil, ErrForbidden
	}
	if courseID == "" {
		return nil, ErrValidation
	}

	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	exists, err := s.enrollments.ExistsForStudentAndCourse(ctx, p.UserID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyEnrolled
	}

	e := &domain.Enrollment{
		EnrollmentID:   uuid.New().String(),
		StudentID:      p.UserID,
		CourseID:       courseID,
		EnrollmentDate: time.Now(),
		Status:         domain.EnrollmentActive,
	}
	if err := s.enrollments.Insert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListMine returns the caller's enrollments joined to their courses in
// application code, one course fetch per enrollment. An enrollment whose
// course row no longer exists is dropped from the result without error.
func (s *Service) ListMine(ctx context.Context, p domain.Principal) ([]EnrollmentDetails, error) {
	rows, err := s.enrollments.ListByStudent(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	details := make([]EnrollmentDetails, 0, len(rows))
	for _, e := range rows {
		course, err := s.courses.GetByID(ctx, e.CourseID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		details = append(details, EnrollmentDetails{
			EnrollmentID:   e.EnrollmentID,
			EnrollmentDate: e.EnrollmentDate.Format(time.RFC3339),
			Status:         e.Status,
			Course: CourseSummary{
				CourseID:    course.CourseID,
				Title:       course.Title,
				Description: course.Description,
				TeacherName: course.TeacherName,
			},
		})
	}
	return details, nil
}
