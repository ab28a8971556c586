package users

import (
	"time"

	"est/internal/domain"
)

type UserResponse struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
	LastLogin string `json:"last_login,omitempty"`
}

func toResponse(u domain.User, withTimestamps bool) UserResponse {
	resp := UserResponse{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
	if withTimestamps {
		if !u.CreatedAt.IsZero() {
			resp.CreatedAt = u.CreatedAt.Format(time.RFC3339)
		}
		if !u.LastLogin.IsZero() {
			resp.LastLogin = u.LastLogin.Format(time.RFC3339)
		}
	}
	return resp
}

func toResponses(list []domain.User, withTimestamps bool) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toResponse(u, withTimestamps))
	}
	return out
}
