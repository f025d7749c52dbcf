package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultNoteCategory is assigned to notes created without categories.
const DefaultNoteCategory = "general"

// Note is a free-form document owned by a user.
type Note struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Title      string
	Content    string
	Categories []string
	IsFavorite bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NoteUpdateParams holds optional fields for a partial note update.
type NoteUpdateParams struct {
	Title      *string
	Content    *string
	Categories []string
	IsFavorite *bool
}
