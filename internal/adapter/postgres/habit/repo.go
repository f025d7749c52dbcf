// Package habit implements the Habit repository using PostgreSQL.
package habit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/adapter/postgres"
	"github.com/lifeos/lifeos-backend/internal/domain"
)

const table = "habits"

var (
	columns   = []string{"id", "user_id", "title", "icon", "position", "is_completed", "last_completed_date", "current_streak", "created_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type habitRow struct {
	ID                uuid.UUID  `db:"id"`
	UserID            uuid.UUID  `db:"user_id"`
	Title             string     `db:"title"`
	Icon              string     `db:"icon"`
	Position          int        `db:"position"`
	IsCompleted       bool       `db:"is_completed"`
	LastCompletedDate *time.Time `db:"last_completed_date"`
	CurrentStreak     int        `db:"current_streak"`
	CreatedAt         time.Time  `db:"created_at"`
}

func (r habitRow) toDomain() *domain.Habit {
	h := &domain.Habit{
		ID:            r.ID,
		UserID:        r.UserID,
		Title:         r.Title,
		Icon:          r.Icon,
		Position:      r.Position,
		IsCompleted:   r.IsCompleted,
		CurrentStreak: r.CurrentStreak,
		CreatedAt:     r.CreatedAt,
	}
	if r.LastCompletedDate != nil {
		d := domain.CivilDay(*r.LastCompletedDate)
		h.LastCompletedDate = &d
	}
	return h
}

func dayOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return domain.DayString(*t)
}

// Repo provides habit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new habit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a habit owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row habitRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "habit", id)
	}
	return row.toDomain(), nil
}

// List returns the user's habits by position.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Habit, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("position", "created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []habitRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	out := make([]*domain.Habit, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// MaxPosition returns the highest position in use, or -1 without habits.
func (r *Repo) MaxPosition(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("COALESCE(MAX(position), -1)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var pos int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&pos); err != nil {
		return 0, fmt.Errorf("max habit position: %w", err)
	}
	return pos, nil
}

// Create inserts a habit.
func (r *Repo) Create(ctx context.Context, h domain.Habit) (*domain.Habit, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "title", "icon", "position").
		Values(h.UserID, h.Title, h.Icon, h.Position).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row habitRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "habit", uuid.Nil)
	}
	return row.toDomain(), nil
}

// Save writes every mutable field of h.
func (r *Repo) Save(ctx context.Context, h domain.Habit) (*domain.Habit, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("title", h.Title).
		Set("icon", h.Icon).
		Set("position", h.Position).
		Set("is_completed", h.IsCompleted).
		Set("last_completed_date", squirrel.Expr("?::date", dayOrNil(h.LastCompletedDate))).
		Set("current_streak", h.CurrentStreak).
		Where(squirrel.Eq{"id": h.ID, "user_id": h.UserID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row habitRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "habit", h.ID)
	}
	return row.toDomain(), nil
}

// ResetStale clears the completed flag of habits not checked off on today.
// It returns the number of habits reset.
func (r *Repo) ResetStale(ctx context.Context, userID uuid.UUID, today time.Time) (int64, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("is_completed", false).
		Where(squirrel.Eq{"user_id": userID, "is_completed": true}).
		Where(squirrel.Expr("(last_completed_date IS NULL OR last_completed_date <> ?::date)", domain.DayString(today))).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("reset habits: %w", err)
	}
	return tag.RowsAffected(), nil
}

const reorderSQL = `UPDATE habits h
SET position = v.ord - 1
FROM unnest($1::uuid[]) WITH ORDINALITY AS v(id, ord)
WHERE h.id = v.id AND h.user_id = $2`

// Reorder sets each habit's position to its index in ids.
// Returns domain.ErrNotFound when any id is not one of the user's habits.
func (r *Repo) Reorder(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, reorderSQL, ids, userID)
	if err != nil {
		return fmt.Errorf("reorder habits: %w", err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf("reorder habits: %d of %d found: %w", tag.RowsAffected(), len(ids), domain.ErrNotFound)
	}
	return nil
}

// Delete removes a habit.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "habit", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("habit %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
