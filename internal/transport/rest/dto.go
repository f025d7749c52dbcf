package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

// amountInput accepts an amount as a JSON number or string and keeps its
// raw text so the service applies one coercion rule to both forms.
type amountInput struct {
	Raw string
	Set bool
}

func (a *amountInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	a.Set = true
	switch {
	case bytes.Equal(b, []byte("null")):
		a.Raw = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		return json.Unmarshal(b, &a.Raw)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("amount must be a number or string: %w", err)
		}
		a.Raw = n.String()
		return nil
	}
}

func (a *amountInput) ptr() *string {
	if a == nil || !a.Set {
		return nil
	}
	return &a.Raw
}

// money renders a decimal as a JSON number without losing precision.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

func dayPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := domain.DayString(*t)
	return &s
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type userResponse struct {
	ID                  string      `json:"id"`
	Email               string      `json:"email"`
	Username            string      `json:"username"`
	CustomNoteLabels    []string    `json:"custom_note_labels"`
	TotalXP             int         `json:"total_xp"`
	CurrentLevel        int         `json:"current_level"`
	CurrentStreak       int         `json:"current_streak"`
	LongestStreak       int         `json:"longest_streak"`
	LastActivityDate    *string     `json:"last_activity_date"`
	InitialBalance      json.Number `json:"initial_balance"`
	IsInitialBalanceSet bool        `json:"is_initial_balance_set"`
	CreatedAt           time.Time   `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	labels := u.CustomNoteLabels
	if labels == nil {
		labels = []string{}
	}
	gs := u.GameState
	return userResponse{
		ID:                  u.ID.String(),
		Email:               u.Email,
		Username:            u.Username,
		CustomNoteLabels:    labels,
		TotalXP:             gs.TotalXP,
		CurrentLevel:        gs.CurrentLevel,
		CurrentStreak:       gs.Streak.Current,
		LongestStreak:       gs.Streak.Longest,
		LastActivityDate:    dayPtr(gs.Streak.LastDate),
		InitialBalance:      money(gs.InitialBalance),
		IsInitialBalanceSet: gs.IsInitialBalanceSet,
		CreatedAt:           u.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Budget
// ---------------------------------------------------------------------------

type sheetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

func toSheetResponse(s *domain.Sheet) sheetResponse {
	return sheetResponse{ID: s.ID.String(), Name: s.Name, Order: s.Position, CreatedAt: s.CreatedAt}
}

type rowResponse struct {
	ID          string      `json:"id"`
	SheetID     string      `json:"sheet_id"`
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Credit      json.Number `json:"credit"`
	Debit       json.Number `json:"debit"`
	Order       int         `json:"order"`
	CreatedAt   time.Time   `json:"created_at"`
}

func toRowResponse(r *domain.Row) rowResponse {
	return rowResponse{
		ID:          r.ID.String(),
		SheetID:     r.SheetID.String(),
		Date:        r.Date,
		Description: r.Description,
		Credit:      money(r.Credit),
		Debit:       money(r.Debit),
		Order:       r.Position,
		CreatedAt:   r.CreatedAt,
	}
}

type totalsResponse struct {
	Credit json.Number `json:"credit"`
	Debit  json.Number `json:"debit"`
	Net    json.Number `json:"net"`
}

func toTotalsResponse(t domain.Totals) totalsResponse {
	return totalsResponse{Credit: money(t.Credit), Debit: money(t.Debit), Net: money(t.Net())}
}

type importResponse struct {
	Message string              `json:"message"`
	Count   int                 `json:"count"`
	Skipped int                 `json:"skipped"`
	Errors  []importRowResponse `json:"errors"`
}

type transactionResponse struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Section     string      `json:"section"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	IsRecurring bool        `json:"is_recurring"`
	CreatedAt   time.Time   `json:"created_at"`
}

func toTransactionResponse(t *domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:          t.ID.String(),
		Type:        string(t.Type),
		Amount:      money(t.Amount),
		Category:    t.Category,
		Section:     t.Section,
		Description: t.Description,
		Date:        t.Date,
		IsRecurring: t.IsRecurring,
		CreatedAt:   t.CreatedAt,
	}
}

type monthlyResponse struct {
	Month    string      `json:"month"`
	Income   json.Number `json:"income"`
	Expenses json.Number `json:"expenses"`
}

type summaryResponse struct {
	TotalIncome         json.Number            `json:"total_income"`
	TotalExpenses       json.Number            `json:"total_expenses"`
	Balance             json.Number            `json:"balance"`
	InitialBalance      json.Number            `json:"initial_balance"`
	IsInitialBalanceSet bool                   `json:"is_initial_balance_set"`
	ExpenseByCategory   map[string]json.Number `json:"expense_by_category"`
	MonthlyData         []monthlyResponse      `json:"monthly_data"`
}

func toSummaryResponse(s domain.BudgetSummary) summaryResponse {
	byCategory := make(map[string]json.Number, len(s.ExpenseByCategory))
	for k, v := range s.ExpenseByCategory {
		byCategory[k] = money(v)
	}
	return summaryResponse{
		TotalIncome:         money(s.TotalIncome),
		TotalExpenses:       money(s.TotalExpenses),
		Balance:             money(s.Balance),
		InitialBalance:      money(s.InitialBalance),
		IsInitialBalanceSet: s.IsInitialBalanceSet,
		ExpenseByCategory:   byCategory,
		MonthlyData: mapSlice(s.MonthlyData, func(m domain.MonthlyTotal) monthlyResponse {
			return monthlyResponse{Month: m.Month, Income: money(m.Income), Expenses: money(m.Expenses)}
		}),
	}
}

// ---------------------------------------------------------------------------
// Gamification and dashboard
// ---------------------------------------------------------------------------

type levelInfoResponse struct {
	TotalXP       int     `json:"total_xp"`
	CurrentLevel  int     `json:"current_level"`
	LevelFloor    int     `json:"level_floor"`
	NextLevelAt   int     `json:"next_level_at"`
	XPToNextLevel int     `json:"xp_to_next_level"`
	LevelProgress float64 `json:"level_progress"`
	CurrentStreak int     `json:"current_streak"`
	LongestStreak int     `json:"longest_streak"`
}

func toLevelInfoResponse(l domain.LevelInfo) levelInfoResponse {
	return levelInfoResponse{
		TotalXP:       l.TotalXP,
		CurrentLevel:  l.CurrentLevel,
		LevelFloor:    l.LevelFloor,
		NextLevelAt:   l.NextLevelAt,
		XPToNextLevel: l.XPToNextLevel,
		LevelProgress: l.Progress,
		CurrentStreak: l.CurrentStreak,
		LongestStreak: l.LongestStreak,
	}
}

type achievementResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	Requirement int        `json:"requirement"`
	XPReward    int        `json:"xp_reward"`
	BadgeIcon   string     `json:"badge_icon"`
	Current     int        `json:"current"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at"`
	Progress    float64    `json:"progress"`
}

func toAchievementResponse(a domain.AchievementProgress) achievementResponse {
	return achievementResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Type:        a.Type.String(),
		Requirement: a.Requirement,
		XPReward:    a.XPReward,
		BadgeIcon:   a.BadgeIcon,
		Current:     a.Current,
		Unlocked:    a.Unlocked,
		UnlockedAt:  a.UnlockedAt,
		Progress:    a.Progress,
	}
}

type dashboardStatsResponse struct {
	CurrentStreak        int     `json:"current_streak"`
	LongestStreak        int     `json:"longest_streak"`
	TotalXP              int     `json:"total_xp"`
	CurrentLevel         int     `json:"current_level"`
	TasksCompletedToday  int     `json:"tasks_completed_today"`
	TasksTotalToday      int     `json:"tasks_total_today"`
	FocusTimeToday       int     `json:"focus_time_today"`
	NotesCount           int     `json:"notes_count"`
	WeeklyCompletionRate float64 `json:"weekly_completion_rate"`
	TotalTasksCompleted  int     `json:"total_tasks_completed"`
	TotalFocusTime       int     `json:"total_focus_time"`
}

func toDashboardStatsResponse(s domain.DashboardStats) dashboardStatsResponse {
	return dashboardStatsResponse{
		CurrentStreak:        s.CurrentStreak,
		LongestStreak:        s.LongestStreak,
		TotalXP:              s.TotalXP,
		CurrentLevel:         s.CurrentLevel,
		TasksCompletedToday:  s.TasksCompletedToday,
		TasksTotalToday:      s.TasksTotalToday,
		FocusTimeToday:       s.FocusTimeToday,
		NotesCount:           s.NotesCount,
		WeeklyCompletionRate: s.WeeklyCompletionRate,
		TotalTasksCompleted:  s.TotalTasksCompleted,
		TotalFocusTime:       s.TotalFocusTime,
	}
}

type activityResponse struct {
	Date           string `json:"date"`
	TasksCompleted int    `json:"tasks_completed"`
	FocusTime      int    `json:"focus_time"`
	NotesCreated   int    `json:"notes_created"`
	ExpensesLogged int    `json:"expenses_logged"`
	Score          int    `json:"score"`
	Level          int    `json:"level"`
}

func toActivityResponse(a domain.DailyActivity) activityResponse {
	return activityResponse{
		Date:           domain.DayString(a.Date),
		TasksCompleted: a.TasksCompleted,
		FocusTime:      a.FocusTime,
		NotesCreated:   a.NotesCreated,
		ExpensesLogged: a.ExpensesLogged,
		Score:          a.Score(),
		Level:          a.Level(),
	}
}

type cellResponse struct {
	Date           *string `json:"date"`
	Empty          bool    `json:"empty"`
	TasksCompleted int     `json:"tasks_completed"`
	FocusTime      int     `json:"focus_time"`
	Score          int     `json:"score"`
	Level          int     `json:"level"`
}

type monthResponse struct {
	Month string         `json:"month"`
	Cells []cellResponse `json:"cells"`
}

type calendarResponse struct {
	Start              string          `json:"start"`
	End                string          `json:"end"`
	Months             []monthResponse `json:"months"`
	TotalContributions int             `json:"total_contributions"`
	TotalActiveDays    int             `json:"total_active_days"`
}

func toCalendarResponse(c domain.ContributionCalendar) calendarResponse {
	return calendarResponse{
		Start:              domain.DayString(c.Start),
		End:                domain.DayString(c.End),
		TotalContributions: c.TotalContributions,
		TotalActiveDays:    c.TotalActiveDays,
		Months: mapSlice(c.Months, func(m domain.ContributionMonth) monthResponse {
			return monthResponse{
				Month: fmt.Sprintf("%04d-%02d", m.Year, int(m.Month)),
				Cells: mapSlice(m.Cells, func(cell domain.ContributionCell) cellResponse {
					out := cellResponse{
						Empty:          cell.Empty,
						TasksCompleted: cell.TasksCompleted,
						FocusTime:      cell.FocusTime,
						Score:          cell.Score,
						Level:          cell.Level,
					}
					if !cell.Empty {
						out.Date = dayPtr(&cell.Date)
					}
					return out
				}),
			}
		}),
	}
}

// ---------------------------------------------------------------------------
// Productivity
// ---------------------------------------------------------------------------

type taskResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Priority      int        `json:"priority"`
	Status        string     `json:"status"`
	EstimatedTime *int       `json:"estimated_time"`
	ActualTime    *int       `json:"actual_time"`
	DueDate       *string    `json:"due_date"`
	CompletedAt   *time.Time `json:"completed_at"`
	Tags          []string   `json:"tags"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResponse{
		ID:            t.ID.String(),
		Title:         t.Title,
		Description:   t.Description,
		Category:      t.Category.String(),
		Priority:      t.Priority,
		Status:        t.Status.String(),
		EstimatedTime: t.EstimatedTime,
		ActualTime:    t.ActualTime,
		DueDate:       t.DueDate,
		CompletedAt:   t.CompletedAt,
		Tags:          tags,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type noteResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Categories []string  `json:"categories"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toNoteResponse(n *domain.Note) noteResponse {
	categories := n.Categories
	if categories == nil {
		categories = []string{}
	}
	return noteResponse{
		ID:         n.ID.String(),
		Title:      n.Title,
		Content:    n.Content,
		Categories: categories,
		IsFavorite: n.IsFavorite,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

type focusSessionResponse struct {
	ID              string     `json:"id"`
	TaskID          *string    `json:"task_id"`
	DurationPlanned int        `json:"duration_planned"`
	DurationActual  *int       `json:"duration_actual"`
	StartedAt       time.Time  `json:"started_at"`
	CompletedAt     *time.Time `json:"completed_at"`
	Interrupted     bool       `json:"interrupted"`
}

func toFocusSessionResponse(s *domain.FocusSession) focusSessionResponse {
	out := focusSessionResponse{
		ID:              s.ID.String(),
		DurationPlanned: s.DurationPlanned,
		DurationActual:  s.DurationActual,
		StartedAt:       s.StartedAt,
		CompletedAt:     s.CompletedAt,
		Interrupted:     s.Interrupted,
	}
	if s.TaskID != nil {
		id := s.TaskID.String()
		out.TaskID = &id
	}
	return out
}

type focusStatsResponse struct {
	TotalFocusTime    int     `json:"total_focus_time"`
	TotalSessions     int     `json:"total_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
	CompletionRate    float64 `json:"completion_rate"`
	TodayFocusTime    int     `json:"today_focus_time"`
	TodaySessions     int     `json:"today_sessions"`
}

func toFocusStatsResponse(s domain.FocusStats) focusStatsResponse {
	return focusStatsResponse{
		TotalFocusTime:    s.TotalFocusTime,
		TotalSessions:     s.TotalSessions,
		CompletedSessions: s.CompletedSessions,
		CompletionRate:    s.CompletionRate,
		TodayFocusTime:    s.TodayFocusTime,
		TodaySessions:     s.TodaySessions,
	}
}

type habitResponse struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Icon              string  `json:"icon"`
	Order             int     `json:"order"`
	IsCompleted       bool    `json:"is_completed"`
	LastCompletedDate *string `json:"last_completed_date"`
	CurrentStreak     int     `json:"current_streak"`
}

func toHabitResponse(h *domain.Habit) habitResponse {
	return habitResponse{
		ID:                h.ID.String(),
		Title:             h.Title,
		Icon:              h.Icon,
		Order:             h.Position,
		IsCompleted:       h.IsCompleted,
		LastCompletedDate: dayPtr(h.LastCompletedDate),
		CurrentStreak:     h.CurrentStreak,
	}
}
