package storage

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task represents a single persisted task.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidateTitle returns ErrEmptyTitle if title has no visible characters.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}
