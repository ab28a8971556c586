package enrollments

import (
	"context"

	"est/internal/domain"
)

// EnrollmentRepository defines the enrollment row operations this module needs.
type EnrollmentRepository interface {
	Insert(ctx context.Context, e *domain.Enrollment) error
	ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error)
	ExistsForStudentAndCourse(ctx context.Context, studentID, courseID string) (bool, error)
}

// CourseGetter fetches single course rows; the store offers no join, so
// cross-entity views are assembled here one row at a time.
type CourseGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Course, error)
}
