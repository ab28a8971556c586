package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"est/internal/domain"
)

// ErrUnauthenticated means no principal could be resolved from the token.
// It is distinct from "resolved but not allowed", which the workflows
// decide for themselves.
var ErrUnauthenticated = errors.New("unauthenticated")

// Resolver turns a bearer token into a Principal.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*domain.Principal, error)
}

// DirectoryResolver asks the user directory service who the caller is and
// trusts its answer verbatim. When the directory is unreachable it falls
// back to the local unverified decoder; a reachable directory that rejects
// the token is final and does not trigger the fallback.
type DirectoryResolver struct {
	baseURL  string
	client   *http.Client
	fallback Resolver
}

func NewDirectoryResolver(baseURL string, fallback Resolver) *DirectoryResolver {
	return &DirectoryResolver{
		baseURL:  baseURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		fallback: fallback,
	}
}

func (r *DirectoryResolver) Resolve(ctx context.Context, token string) (*domain.Principal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/users/me", nil)
	if err != nil {
		return nil, fmt.Errorf("build directory request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("user directory unreachable, falling back to local decode: %v", err)
		return r.fallback.Resolve(ctx, token)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, ErrUnauthenticated
	}

	var body struct {
		User struct {
			UserID   string `json:"user_id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, ErrUnauthenticated
	}
	if body.User.UserID == "" {
		return nil, ErrUnauthenticated
	}

	return &domain.Principal{
		UserID:   body.User.UserID,
		Username: body.User.Username,
		Role:     domain.Role(body.User.Role),
	}, nil
}
