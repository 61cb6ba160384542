package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the canonical identity record for the rental API.
// Email is stored lowercased so uniqueness holds case-insensitively.
type User struct {
	UserID       uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
