package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/cardmart/cardmart/internal/models"
)

// UserRepository is interface for interacting with user-related data
type UserRepository interface {
	// GetUserByLogin returns user by login
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}

// AuthService implements AuthService interface
type AuthService struct {
	repo  UserRepository
	token TokenService
}

// NewAuthService creates new AuthService instance
func NewAuthService(repo UserRepository, token TokenService) *AuthService {
	return &AuthService{
		repo:  repo,
		token: token,
	}
}

// LoginAdmin checks credentials and issues an auth token for an admin user
func (as *AuthService) LoginAdmin(ctx context.Context, login, password string) (string, error) {
	user, err := as.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return "", models.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.ErrInvalidCredentials
	}

	if !user.IsAdmin {
		return "", models.ErrUnauthorized
	}

	return as.token.CreateToken(user)
}
