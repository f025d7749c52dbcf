package domain

import "time"

// AchievementType selects the counter an achievement is measured against.
type AchievementType string

const (
	AchievementTask       AchievementType = "task"
	AchievementStreak     AchievementType = "streak"
	AchievementFocus      AchievementType = "focus"
	AchievementFocusHours AchievementType = "focus_hours"
	AchievementNotes      AchievementType = "notes"
)

func (t AchievementType) String() string { return string(t) }

// Achievement is a catalog entry.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Type        AchievementType
	Requirement int
	XPReward    int
	BadgeIcon   string
}

// Achievements is the fixed catalog, in display order.
var Achievements = []Achievement{
	{ID: "first_step", Name: "First Step", Description: "Complete your first task", Type: AchievementTask, Requirement: 1, XPReward: 50, BadgeIcon: "check"},
	{ID: "centurion", Name: "Centurion", Description: "Complete 100 tasks", Type: AchievementTask, Requirement: 100, XPReward: 500, BadgeIcon: "trophy"},
	{ID: "task_master", Name: "Task Master", Description: "Complete 1000 tasks", Type: AchievementTask, Requirement: 1000, XPReward: 2000, BadgeIcon: "crown"},
	{ID: "getting_warm", Name: "Getting Warm", Description: "Reach a 3-day streak", Type: AchievementStreak, Requirement: 3, XPReward: 100, BadgeIcon: "flame"},
	{ID: "on_fire", Name: "On Fire", Description: "Reach a 7-day streak", Type: AchievementStreak, Requirement: 7, XPReward: 250, BadgeIcon: "flame"},
	{ID: "blazing", Name: "Blazing", Description: "Reach a 30-day streak", Type: AchievementStreak, Requirement: 30, XPReward: 1000, BadgeIcon: "flame"},
	{ID: "focused_mind", Name: "Focused Mind", Description: "Complete 10 focus sessions without interruption", Type: AchievementFocus, Requirement: 10, XPReward: 200, BadgeIcon: "clock"},
	{ID: "deep_work", Name: "Deep Work", Description: "Accumulate 100 hours of focus time", Type: AchievementFocusHours, Requirement: 6000, XPReward: 1000, BadgeIcon: "brain"},
	{ID: "note_taker", Name: "Note Taker", Description: "Create 50 notes", Type: AchievementNotes, Requirement: 50, XPReward: 200, BadgeIcon: "file-text"},
}

// AchievementStats holds the counters achievements are evaluated against.
type AchievementStats struct {
	TasksCompleted     int
	LongestStreak      int
	UninterruptedFocus int
	FocusMinutes       int
	NotesCreated       int
}

// Value returns the counter relevant for t.
func (s AchievementStats) Value(t AchievementType) int {
	switch t {
	case AchievementTask:
		return s.TasksCompleted
	case AchievementStreak:
		return s.LongestStreak
	case AchievementFocus:
		return s.UninterruptedFocus
	case AchievementFocusHours:
		return s.FocusMinutes
	case AchievementNotes:
		return s.NotesCreated
	default:
		return 0
	}
}

// AchievementProgress is one catalog entry evaluated for a user.
type AchievementProgress struct {
	Achievement
	Current    int
	Unlocked   bool
	UnlockedAt *time.Time
	Progress   float64
}

// EvaluateAchievements evaluates the catalog against stats. unlocked maps
// achievement IDs to their persisted unlock time.
func EvaluateAchievements(stats AchievementStats, unlocked map[string]time.Time) []AchievementProgress {
	out := make([]AchievementProgress, 0, len(Achievements))
	for _, a := range Achievements {
		cur := stats.Value(a.Type)
		p := AchievementProgress{
			Achievement: a,
			Current:     cur,
			Progress:    min(1, float64(cur)/float64(a.Requirement)),
		}
		if at, ok := unlocked[a.ID]; ok {
			p.Unlocked = true
			p.UnlockedAt = &at
			p.Progress = 1
		} else if cur >= a.Requirement {
			p.Unlocked = true
		}
		out = append(out, p)
	}
	return out
}
