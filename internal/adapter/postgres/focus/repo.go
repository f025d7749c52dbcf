// Package focus implements the focus session repository using PostgreSQL.
package focus

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/adapter/postgres"
	"github.com/lifeos/lifeos-backend/internal/domain"
)

const (
	table = "focus_sessions"

	// ListLimit caps the number of sessions returned by List.
	ListLimit = 100
)

var (
	columns   = []string{"id", "user_id", "task_id", "duration_planned", "duration_actual", "started_at", "completed_at", "interrupted"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type sessionRow struct {
	ID              uuid.UUID  `db:"id"`
	UserID          uuid.UUID  `db:"user_id"`
	TaskID          *uuid.UUID `db:"task_id"`
	DurationPlanned int        `db:"duration_planned"`
	DurationActual  *int       `db:"duration_actual"`
	StartedAt       time.Time  `db:"started_at"`
	CompletedAt     *time.Time `db:"completed_at"`
	Interrupted     bool       `db:"interrupted"`
}

func (r sessionRow) toDomain() *domain.FocusSession {
	return &domain.FocusSession{
		ID:              r.ID,
		UserID:          r.UserID,
		TaskID:          r.TaskID,
		DurationPlanned: r.DurationPlanned,
		DurationActual:  r.DurationActual,
		StartedAt:       r.StartedAt,
		CompletedAt:     r.CompletedAt,
		Interrupted:     r.Interrupted,
	}
}

// Repo provides focus session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new focus session repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a session owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.FocusSession, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sessionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "focus session", id)
	}
	return row.toDomain(), nil
}

// List returns the user's most recent sessions, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.FocusSession, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("started_at DESC").
		Limit(ListLimit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sessionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list focus sessions: %w", err)
	}

	out := make([]*domain.FocusSession, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Stats aggregates the user's completed sessions. Sessions started in
// [dayStart, dayEnd) count as today's.
func (r *Repo) Stats(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (domain.FocusStats, error) {
	const todayCond = "started_at >= ? AND started_at < ?"

	query, args, err := postgres.Builder().
		Select(
			"count(*)",
			"count(*) FILTER (WHERE NOT interrupted)",
			"COALESCE(SUM(duration_actual), 0)",
		).
		Column(squirrel.Expr("COALESCE(SUM(duration_actual) FILTER (WHERE "+todayCond+"), 0)", dayStart, dayEnd)).
		Column(squirrel.Expr("count(*) FILTER (WHERE "+todayCond+")", dayStart, dayEnd)).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.NotEq{"completed_at": nil}).
		ToSql()
	if err != nil {
		return domain.FocusStats{}, fmt.Errorf("build query: %w", err)
	}

	var s domain.FocusStats
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).
		Scan(&s.TotalSessions, &s.CompletedSessions, &s.TotalFocusTime, &s.TodayFocusTime, &s.TodaySessions)
	if err != nil {
		return domain.FocusStats{}, fmt.Errorf("focus stats: %w", err)
	}
	if s.TotalSessions > 0 {
		s.CompletionRate = float64(s.CompletedSessions) / float64(s.TotalSessions) * 100
	}
	return s, nil
}

// Create starts a session.
func (r *Repo) Create(ctx context.Context, s domain.FocusSession) (*domain.FocusSession, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "task_id", "duration_planned", "started_at").
		Values(s.UserID, s.TaskID, s.DurationPlanned, s.StartedAt).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sessionRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "focus session", uuid.Nil)
	}
	return row.toDomain(), nil
}

// Complete finishes a running session.
// Returns domain.ErrConflict if the session was already completed.
func (r *Repo) Complete(ctx context.Context, userID, id uuid.UUID, actual int, interrupted bool, at time.Time) (*domain.FocusSession, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("duration_actual", actual).
		Set("interrupted", interrupted).
		Set("completed_at", at).
		Where(squirrel.Eq{"id": id, "user_id": userID, "completed_at": nil}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sessionRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...)
	if err == nil {
		return row.toDomain(), nil
	}

	mapped := postgres.MapError(err, "focus session", id)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}
	if _, getErr := r.GetByID(ctx, userID, id); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("focus session %s already completed: %w", id, domain.ErrConflict)
}
