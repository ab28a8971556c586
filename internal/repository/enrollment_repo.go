package repository

import (
	"context"
	"time"

	"github.com/gocql/gocql"

	"est/internal/domain"
)

const enrollmentColumns = `enrollment_id, student_id, course_id, enrollment_date, status`

// EnrollmentRepository owns row CRUD on the enrollments table. The store
// enforces no uniqueness on (student_id, course_id); callers check before
// writing, with no isolation between the check and the write.
type EnrollmentRepository struct {
	session *gocql.Session
}

func NewEnrollmentRepository(session *gocql.Session) *EnrollmentRepository {
	return &EnrollmentRepository{session: session}
}

func (r *EnrollmentRepository) Insert(ctx context.Context, e *domain.Enrollment) error {
	enrollmentID, err := parseID(e.EnrollmentID)
	if err != nil {
		return err
	}
	studentID, err := parseID(e.StudentID)
	if err != nil {
		return err
	}
	courseID, err := parseID(e.CourseID)
	if err != nil {
		return err
	}

	return r.session.Query(
		`INSERT INTO enrollments (`+enrollmentColumns+`) VALUES (?, ?, ?, ?, ?)`,
		enrollmentID, studentID, courseID, e.EnrollmentDate, e.Status,
	).WithContext(ctx).Exec()
}

func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	sid, err := parseID(studentID)
	if err != nil {
		return []domain.Enrollment{}, nil
	}

	iter := r.session.Query(
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE student_id = ? ALLOW FILTERING`, sid,
	).WithContext(ctx).Iter()

	var (
		enrollments    []domain.Enrollment
		eid, stid, cid gocql.UUID
		enrolledAt     time.Time
		status         string
	)
	for iter.Scan(&eid, &stid, &cid, &enrolledAt, &status) {
		enrollments = append(enrollments, domain.Enrollment{
			EnrollmentID:   idString(eid),
			StudentID:      idString(stid),
			CourseID:       idString(cid),
			EnrollmentDate: enrolledAt,
			Status:         status,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	if enrollments == nil {
		enrollments = []domain.Enrollment{}
	}
	return enrollments, nil
}

// ExistsForStudentAndCourse reports whether any enrollment row matches the
// pair. Full-table scan with post-hoc filtering, same as ListByStudent.
func (r *EnrollmentRepository) ExistsForStudentAndCourse(ctx context.Context, studentID, courseID string) (bool, error) {
	sid, err := parseID(studentID)
	if err != nil {
		return false, nil
	}
	cid, err := parseID(courseID)
	if err != nil {
		return false, nil
	}

	iter := r.session.Query(
		`SELECT enrollment_id FROM enrollments WHERE student_id = ? AND course_id = ? ALLOW FILTERING`,
		sid, cid,
	).WithContext(ctx).Iter()

	var eid gocql.UUID
	found := iter.Scan(&eid)
	if err := iter.Close(); err != nil {
		return false, err
	}
	return found, nil
}
