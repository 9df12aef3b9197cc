package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"crowdfund/internal/domain"
	"crowdfund/internal/infra"
	"crowdfund/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	db infra.SQLExecutor
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(db infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{db: db}
}

// Create inserts user and fills in its generated id and timestamp.
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	row := r.db.QueryRow(ctx, sqlinline.QInsertUser, user.Username, user.Email, user.PasswordHash, string(user.Role))
	if err := row.Scan(&user.ID, &user.CreatedAt); err != nil {
		return fmt.Errorf("insert user: %w", mapError(err))
	}
	return nil
}

// GetByID fetches a user by UUID.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, sqlinline.QSelectUserByID, id))
}

// GetByUsername fetches a user by login name.
func (r *UserRepositoryPG) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, sqlinline.QSelectUserByUsername, username))
}

func (r *UserRepositoryPG) ExistsUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, sqlinline.QUsernameExists, username)
}

func (r *UserRepositoryPG) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, sqlinline.QEmailExists, email)
}

func (r *UserRepositoryPG) exists(ctx context.Context, query, value string) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, query, value).Scan(&ok); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return ok, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		return nil, mapError(err)
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
