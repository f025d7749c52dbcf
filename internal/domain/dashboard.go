package domain

import "math"

// DashboardStats is the summary shown on the dashboard.
type DashboardStats struct {
	CurrentStreak        int
	LongestStreak        int
	TotalXP              int
	CurrentLevel         int
	TasksCompletedToday  int
	TasksTotalToday      int
	FocusTimeToday       int
	NotesCount           int
	WeeklyCompletionRate float64
	TotalTasksCompleted  int
	TotalFocusTime       int
}

// CompletionRate returns completed/total as a percentage rounded to one
// decimal place. Zero total yields zero.
func CompletionRate(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
