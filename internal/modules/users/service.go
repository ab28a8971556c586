package users

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"est/internal/domain"
	"est/internal/repository"
)

// Service is the identity-owning side of the system: it decodes tokens,
// derives the caller's role, and keeps the durable users table in sync.
type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

// ResolveCurrent decodes the token and upserts the users row, touching
// last_login on every successful resolution. The token's signature is not
// verified; the service sits behind the realm's gateway and inherits that
// trust decision from the deployment it replaced.
func (s *Service) ResolveCurrent(ctx context.Context, token string) (*domain.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	username, _ := claims["preferred_username"].(string)
	email, _ := claims["email"].(string)
	fullName, _ := claims["name"].(string)
	role := roleFromClaims(claims)

	user := &domain.User{
		UserID:   sub,
		Username: username,
		Email:    email,
		FullName: fullName,
		Role:     role,
	}

	now := time.Now()
	existing, err := s.users.GetByID(ctx, sub)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		user.CreatedAt = now
		user.LastLogin = now
		if err := s.users.Insert(ctx, user); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		user.CreatedAt = existing.CreatedAt
		user.LastLogin = now
		if err := s.users.TouchLastLogin(ctx, sub, now); err != nil {
			// The resolution itself succeeded; a stale last_login is
			// tolerable, a failed login is not.
			log.Printf("touch last_login for %s: %v", sub, err)
		}
	}

	return user, nil
}

// Users returns all users; admin only.
func (s *Service) Users(ctx context.Context, current *domain.User) ([]domain.User, error) {
	if current.Role != domain.RoleAdmin {
		return nil, ErrForbidden
	}
	return s.users.ListAll(ctx)
}

// UsersByRole returns users holding the given role; admin and teacher only.
func (s *Service) UsersByRole(ctx context.Context, current *domain.User, role string) ([]domain.User, error) {
	if !domain.Role(role).Valid() {
		return nil, ErrInvalidRole
	}
	if current.Role != domain.RoleAdmin && current.Role != domain.RoleTeacher {
		return nil, ErrForbidden
	}
	return s.users.ListByRole(ctx, domain.Role(role))
}

// roleFromClaims maps the realm's role list onto the platform roles.
// Admin wins over teacher; everyone else is a student.
func roleFromClaims(claims jwt.MapClaims) domain.Role {
	realmAccess, _ := claims["realm_access"].(map[string]any)
	rawRoles, _ := realmAccess["roles"].([]any)

	role := domain.RoleStudent
	for _, r := range rawRoles {
		switch r {
		case "admin":
			return domain.RoleAdmin
		case "teacher":
			role = domain.RoleTeacher
		}
	}
	return role
}
