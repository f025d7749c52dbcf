package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultHabitIcon is used when a habit is created without an icon.
const DefaultHabitIcon = "☀️"

// Habit is a daily recurring check-off item with its own streak.
type Habit struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Title             string
	Icon              string
	Position          int
	IsCompleted       bool
	LastCompletedDate *time.Time
	CurrentStreak     int
	CreatedAt         time.Time
}

// CompletedOn reports whether the habit was checked off on day.
func (h Habit) CompletedOn(day time.Time) bool {
	return h.LastCompletedDate != nil && CivilDay(*h.LastCompletedDate).Equal(CivilDay(day))
}

// Complete checks the habit off for today and advances its streak.
func (h *Habit) Complete(today time.Time) {
	s := Streak{Current: h.CurrentStreak, Longest: h.CurrentStreak, LastDate: h.LastCompletedDate}.Advance(today)
	h.CurrentStreak = s.Current
	h.LastCompletedDate = s.LastDate
	h.IsCompleted = true
}

// HabitUpdateParams holds optional fields for a partial habit update.
type HabitUpdateParams struct {
	Title       *string
	Icon        *string
	Position    *int
	IsCompleted *bool
}
