package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/cardmart/cardmart/internal/models"
)

const tokenTTL = 24 * time.Hour

// AuthToken creates and verifies HMAC-signed auth tokens
type AuthToken struct {
	key []byte
}

// NewAuthToken creates new AuthToken instance with signing key
func NewAuthToken(key []byte) *AuthToken {
	return &AuthToken{key: key}
}

type claims struct {
	jwt.RegisteredClaims
	UserID  uint64 `json:"uid"`
	IsAdmin bool   `json:"adm"`
}

// CreateToken issues a signed token for user
func (at *AuthToken) CreateToken(user *models.User) (string, error) {
	now := time.Now()
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID:  user.ID,
		IsAdmin: user.IsAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(at.key)
}

// VerifyToken parses and validates tokenString and returns its payload
func (at *AuthToken) VerifyToken(tokenString string) (*models.TokenPayload, error) {
	c := claims{}
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.ErrInvalidToken
		}
		return at.key, nil
	})
	if err != nil || !token.Valid {
		return nil, models.ErrInvalidToken
	}

	id, err := uuid.Parse(c.ID)
	if err != nil {
		return nil, models.ErrInvalidToken
	}

	return &models.TokenPayload{
		ID:      id,
		UserID:  c.UserID,
		IsAdmin: c.IsAdmin,
	}, nil
}
