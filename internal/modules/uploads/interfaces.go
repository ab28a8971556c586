package uploads

import (
	"context"

	"est/internal/domain"
)

// CourseInserter writes the course metadata row after the object write.
type CourseInserter interface {
	Insert(ctx context.Context, c *domain.Course) error
}
