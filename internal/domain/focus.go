package domain

import (
	"time"

	"github.com/google/uuid"
)

// FocusSession is one Pomodoro run. DurationActual and CompletedAt are set
// once the session is completed.
type FocusSession struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TaskID          *uuid.UUID
	DurationPlanned int
	DurationActual  *int
	StartedAt       time.Time
	CompletedAt     *time.Time
	Interrupted     bool
}

// IsCompleted reports whether the session has been finished.
func (s FocusSession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// FocusStats aggregates a user's completed focus sessions.
type FocusStats struct {
	TotalFocusTime    int
	TotalSessions     int
	CompletedSessions int
	CompletionRate    float64
	TodayFocusTime    int
	TodaySessions     int
}
