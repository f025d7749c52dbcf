package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user together with the
// gamification state stored on the same record.
type User struct {
	ID               uuid.UUID
	Email            string
	Username         string
	PasswordHash     string
	CustomNoteLabels []string
	GameState        UserGameState
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
