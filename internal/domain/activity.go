package domain

import "time"

// ActivityKind names a per-day activity counter.
type ActivityKind string

const (
	ActivityTasksCompleted ActivityKind = "tasks_completed"
	ActivityFocusTime      ActivityKind = "focus_time"
	ActivityNotesCreated   ActivityKind = "notes_created"
	ActivityExpensesLogged ActivityKind = "expenses_logged"
)

func (k ActivityKind) String() string { return string(k) }

func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivityTasksCompleted, ActivityFocusTime, ActivityNotesCreated, ActivityExpensesLogged:
		return true
	}
	return false
}

// focusMinutesPerPoint is how many focus minutes count as one completed task.
const focusMinutesPerPoint = 25

// DailyActivity holds one user's counters for one calendar day.
type DailyActivity struct {
	Date           time.Time
	TasksCompleted int
	FocusTime      int // minutes
	NotesCreated   int
	ExpensesLogged int
}

// Score combines completed tasks and focus time into one number.
func (a DailyActivity) Score() int {
	return a.TasksCompleted + a.FocusTime/focusMinutesPerPoint
}

// Level buckets the score into the 0..4 contribution intensity.
func (a DailyActivity) Level() int {
	return ActivityLevel(a.Score())
}

// IsActive reports whether anything counted towards the score happened.
func (a DailyActivity) IsActive() bool {
	return a.TasksCompleted+a.FocusTime > 0
}

// ActivityLevel maps an activity score to an intensity level.
func ActivityLevel(score int) int {
	switch {
	case score >= 8:
		return 4
	case score >= 5:
		return 3
	case score >= 3:
		return 2
	case score > 0:
		return 1
	}
	return 0
}

// IndexActivity keys activity records by their yyyy-MM-dd date.
func IndexActivity(days []DailyActivity) map[string]DailyActivity {
	m := make(map[string]DailyActivity, len(days))
	for _, d := range days {
		m[DayString(d.Date)] = d
	}
	return m
}

// TotalContributions sums the activity score over all days.
func TotalContributions(activity map[string]DailyActivity) int {
	total := 0
	for _, a := range activity {
		total += a.Score()
	}
	return total
}

// TotalActiveDays counts days with completed tasks or focus time.
func TotalActiveDays(activity map[string]DailyActivity) int {
	n := 0
	for _, a := range activity {
		if a.IsActive() {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// Contribution calendar
// ---------------------------------------------------------------------------

// ContributionCell is one square of the contribution grid. Empty cells are
// placeholders that align days to their weekday column.
type ContributionCell struct {
	Date           time.Time
	Empty          bool
	TasksCompleted int
	FocusTime      int
	Score          int
	Level          int
}

// ContributionMonth holds the cells of one month. len(Cells) is always a
// multiple of 7 and columns start on Sunday.
type ContributionMonth struct {
	Year  int
	Month time.Month
	Cells []ContributionCell
}

// ContributionCalendar is the month-bucketed grid plus its totals.
type ContributionCalendar struct {
	Start              time.Time
	End                time.Time
	Months             []ContributionMonth
	TotalContributions int
	TotalActiveDays    int
}

// BuildContributionCalendar lays out every day of [start, end] by month.
// Days missing from activity count as zero. Each month is padded with
// leading placeholders so its first day lands in the right weekday column
// and with trailing placeholders up to a multiple of 7.
func BuildContributionCalendar(activity map[string]DailyActivity, start, end time.Time) []ContributionMonth {
	start, end = CivilDay(start), CivilDay(end)
	if end.Before(start) {
		return nil
	}

	var months []ContributionMonth
	var cur *ContributionMonth

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if cur == nil || cur.Month != day.Month() || cur.Year != day.Year() {
			if cur != nil {
				months = append(months, padMonth(*cur))
			}
			cur = &ContributionMonth{Year: day.Year(), Month: day.Month()}
			for i := 0; i < int(day.Weekday()); i++ {
				cur.Cells = append(cur.Cells, ContributionCell{Empty: true})
			}
		}

		a := activity[DayString(day)]
		a.Date = day
		cur.Cells = append(cur.Cells, ContributionCell{
			Date:           day,
			TasksCompleted: a.TasksCompleted,
			FocusTime:      a.FocusTime,
			Score:          a.Score(),
			Level:          a.Level(),
		})
	}
	if cur != nil {
		months = append(months, padMonth(*cur))
	}

	return months
}

func padMonth(m ContributionMonth) ContributionMonth {
	for len(m.Cells)%7 != 0 {
		m.Cells = append(m.Cells, ContributionCell{Empty: true})
	}
	return m
}

// FlattenCalendar returns the real cells of months in chronological order,
// the flat weekly-row layout of the same data.
func FlattenCalendar(months []ContributionMonth) []ContributionCell {
	var cells []ContributionCell
	for _, m := range months {
		for _, c := range m.Cells {
			if !c.Empty {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// NewContributionCalendar builds the grid for [start, end] and computes
// totals over the activity inside that range.
func NewContributionCalendar(days []DailyActivity, start, end time.Time) ContributionCalendar {
	start, end = CivilDay(start), CivilDay(end)

	inRange := make([]DailyActivity, 0, len(days))
	for _, d := range days {
		day := CivilDay(d.Date)
		if day.Before(start) || day.After(end) {
			continue
		}
		inRange = append(inRange, d)
	}
	index := IndexActivity(inRange)

	return ContributionCalendar{
		Start:              start,
		End:                end,
		Months:             BuildContributionCalendar(index, start, end),
		TotalContributions: TotalContributions(index),
		TotalActiveDays:    TotalActiveDays(index),
	}
}
