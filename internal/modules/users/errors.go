package users

import "errors"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrForbidden    = errors.New("insufficient role")
	ErrInvalidRole  = errors.New("invalid role")
)
