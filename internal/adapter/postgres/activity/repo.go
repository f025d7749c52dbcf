// Package activity implements the daily activity counter repository.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/adapter/postgres"
	"github.com/lifeos/lifeos-backend/internal/domain"
)

const table = "daily_activity"

type activityRow struct {
	Date           time.Time `db:"date"`
	TasksCompleted int       `db:"tasks_completed"`
	FocusTime      int       `db:"focus_time"`
	NotesCreated   int       `db:"notes_created"`
	ExpensesLogged int       `db:"expenses_logged"`
}

func (r activityRow) toDomain() domain.DailyActivity {
	return domain.DailyActivity{
		Date:           domain.CivilDay(r.Date),
		TasksCompleted: r.TasksCompleted,
		FocusTime:      r.FocusTime,
		NotesCreated:   r.NotesCreated,
		ExpensesLogged: r.ExpensesLogged,
	}
}

// Repo provides daily activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Increment adds amount to the kind counter of the user's day, creating
// the day record when it does not exist yet.
func (r *Repo) Increment(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.ActivityKind, amount int) error {
	if !kind.IsValid() {
		return domain.NewValidationError("kind", fmt.Sprintf("unknown activity kind %q", kind))
	}
	col := kind.String()

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "date", col).
		Values(userID, domain.DayString(day), amount).
		Suffix(fmt.Sprintf("ON CONFLICT (user_id, date) DO UPDATE SET %[1]s = %[2]s.%[1]s + EXCLUDED.%[1]s", col, table)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "user", userID)
	}
	return nil
}

// ListRange returns the user's records for days in [from, to], oldest first.
// Days without a record are omitted.
func (r *Repo) ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyActivity, error) {
	query, args, err := postgres.Builder().
		Select("date", "tasks_completed", "focus_time", "notes_created", "expenses_logged").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Expr("date BETWEEN ?::date AND ?::date", domain.DayString(from), domain.DayString(to))).
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []activityRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}

	out := make([]domain.DailyActivity, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// GetDay returns one day's record, or a zero record for that day when
// nothing was logged.
func (r *Repo) GetDay(ctx context.Context, userID uuid.UUID, day time.Time) (domain.DailyActivity, error) {
	days, err := r.ListRange(ctx, userID, day, day)
	if err != nil {
		return domain.DailyActivity{}, err
	}
	if len(days) == 0 {
		return domain.DailyActivity{Date: domain.CivilDay(day)}, nil
	}
	return days[0], nil
}
