package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gocql/gocql"

	"est/internal/domain"
)

const userColumns = `user_id, username, email, full_name, role, created_at, last_login`

// UserRepository owns row CRUD on the users table.
type UserRepository struct {
	session *gocql.Session
}

func NewUserRepository(session *gocql.Session) *UserRepository {
	return &UserRepository{session: session}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var (
		uid                             gocql.UUID
		username, email, fullName, role string
		createdAt, lastLogin            time.Time
	)
	err = r.session.Query(
		`SELECT `+userColumns+` FROM users WHERE user_id = ?`, userID,
	).WithContext(ctx).Scan(&uid, &username, &email, &fullName, &role, &createdAt, &lastLogin)
	if errors.Is(err, gocql.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &domain.User{
		UserID:    idString(uid),
		Username:  username,
		Email:     email,
		FullName:  fullName,
		Role:      domain.Role(role),
		CreatedAt: createdAt,
		LastLogin: lastLogin,
	}, nil
}

func (r *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	userID, err := parseID(u.UserID)
	if err != nil {
		return err
	}
	return r.session.Query(
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		userID, u.Username, u.Email, u.FullName, string(u.Role), u.CreatedAt, u.LastLogin,
	).WithContext(ctx).Exec()
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	userID, err := parseID(id)
	if err != nil {
		return err
	}
	return r.session.Query(
		`UPDATE users SET last_login = ? WHERE user_id = ?`, at, userID,
	).WithContext(ctx).Exec()
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	return r.scan(r.session.Query(`SELECT ` + userColumns + ` FROM users`).WithContext(ctx))
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return r.scan(r.session.Query(
		`SELECT `+userColumns+` FROM users WHERE role = ? ALLOW FILTERING`, string(role),
	).WithContext(ctx))
}

func (r *UserRepository) scan(q *gocql.Query) ([]domain.User, error) {
	iter := q.Iter()

	var (
		users                           []domain.User
		uid                             gocql.UUID
		username, email, fullName, role string
		createdAt, lastLogin            time.Time
	)
	for iter.Scan(&uid, &username, &email, &fullName, &role, &createdAt, &lastLogin) {
		users = append(users, domain.User{
			UserID:    idString(uid),
			Username:  username,
			Email:     email,
			FullName:  fullName,
			Role:      domain.Role(role),
			CreatedAt: createdAt,
			LastLogin: lastLogin,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}
