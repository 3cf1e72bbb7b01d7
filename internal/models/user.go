package models

import (
	"time"

	"github.com/google/uuid"
)

// User is user entity with loyalty points balance
type User struct {
	ID           uint64
	Login        string
	PasswordHash string
	IsAdmin      bool
	Points       int64
	CreatedAt    time.Time
}

// TokenPayload is authorization token payload
type TokenPayload struct {
	ID      uuid.UUID
	UserID  uint64
	IsAdmin bool
}
