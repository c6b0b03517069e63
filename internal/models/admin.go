package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is an operator account allowed to manage the catalog.
// PasswordHash is a bcrypt hash and never leaves the service.
type AdminUser struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
