package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cardmart/cardmart/internal/models"
	"github.com/cardmart/cardmart/internal/repository/postgres"
)

const (
	selectUserByLoginQuery = `
						SELECT id, login, password_hash, is_admin, points, created_at FROM users
						WHERE login = $1
`
)

// UserRepository implements UserRepository interface
type UserRepository struct {
	db *postgres.DB
}

// NewUserRepository creates new UserRepository instance
func NewUserRepository(db *postgres.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByLogin returns user by login
func (ur *UserRepository) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	user := models.User{}
	err := ur.db.QueryRow(ctx, selectUserByLoginQuery, login).Scan(&user.ID, &user.Login, &user.PasswordHash, &user.IsAdmin, &user.Points, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}
