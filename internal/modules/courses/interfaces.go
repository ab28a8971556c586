package courses

import (
	"context"

	"est/internal/domain"
)

// CourseRepository defines the course row operations this module needs.
type CourseRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	ListAll(ctx context.Context) ([]domain.Course, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]domain.Course, error)
	Update(ctx context.Context, id, title, description string) error
	Delete(ctx context.Context, id string) error
}
