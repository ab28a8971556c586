package users

import (
	"context"
	"time"

	"est/internal/domain"
)

// UserRepository defines the users table operations this module needs.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
	ListAll(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
}
