package identity

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"est/internal/domain"
)

// LocalResolver decodes the token payload without verifying its signature.
// This is a known trust gap inherited from the deployment this system
// replaces: any well-formed token is accepted when the directory is down.
// The resolved role is always teacher regardless of the token's claims.
type LocalResolver struct{}

func (LocalResolver) Resolve(_ context.Context, token string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrUnauthenticated
	}

	username, _ := claims["preferred_username"].(string)
	if username == "" {
		username, _ = claims["name"].(string)
	}

	return &domain.Principal{
		UserID:   sub,
		Username: username,
		Role:     domain.RoleTeacher,
	}, nil
}
