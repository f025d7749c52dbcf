// Package task implements the Task repository using PostgreSQL.
package task

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

const table = "tasks"

var (
	columns = []string{
		"id", "user_id", "title", "description", "category", "priority", "status",
		"estimated_time", "actual_time", "due_date", "completed_at", "tags", "created_at", "updated_at",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type taskRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	Title         string     `db:"title"`
	Description   string     `db:"description"`
	Category      string     `db:"category"`
	Priority      int        `db:"priority"`
	Status        string     `db:"status"`
	EstimatedTime *int       `db:"estimated_time"`
	ActualTime    *int       `db:"actual_time"`
	DueDate       *string    `db:"due_date"`
	CompletedAt   *time.Time `db:"completed_at"`
	Tags          []string   `db:"tags"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func (r taskRow) toDomain() *domain.Task {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Task{
		ID:            r.ID,
		UserID:        r.UserID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      domain.TaskCategory(r.Category),
		Priority:      r.Priority,
		Status:        domain.TaskStatus(r.Status),
		EstimatedTime: r.EstimatedTime,
		ActualTime:    r.ActualTime,
		DueDate:       r.DueDate,
		CompletedAt:   r.CompletedAt,
		Tags:          tags,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new task repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a task owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return row.toDomain(), nil
}

// List returns the user's tasks, newest first, narrowed by filter.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error) {
	where := squirrel.Eq{"user_id": userID}
	if filter.Category != nil {
		where["category"] = filter.Category.String()
	}
	if filter.Status != nil {
		where["status"] = filter.Status.String()
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []taskRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]*domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toDomain()
	}
	return tasks, nil
}

// Stats counts the user's tasks for the dashboard. Tasks of today are the
// ones due on today or in the daily category; the week starts at weekStart.
func (r *Repo) Stats(ctx context.Context, userID uuid.UUID, today string, weekStart time.Time) (domain.TaskStats, error) {
	const todayCond = "(left(due_date, 10) = ? OR category = 'daily')"

	query, args, err := postgres.Builder().
		Select().
		Column(squirrel.Expr("count(*) FILTER (WHERE status = 'completed' AND "+todayCond+")", today)).
		Column(squirrel.Expr("count(*) FILTER (WHERE "+todayCond+")", today)).
		Column(squirrel.Expr("count(*) FILTER (WHERE created_at >= ?)", weekStart)).
		Column(squirrel.Expr("count(*) FILTER (WHERE status = 'completed' AND created_at >= ?)", weekStart)).
		Column("count(*) FILTER (WHERE status = 'completed')").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return domain.TaskStats{}, fmt.Errorf("build query: %w", err)
	}

	var s domain.TaskStats
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).
		Scan(&s.CompletedToday, &s.TotalToday, &s.WeeklyCreated, &s.WeeklyCompleted, &s.TotalCompleted)
	if err != nil {
		return domain.TaskStats{}, fmt.Errorf("task stats: %w", err)
	}
	return s, nil
}

// CountCompleted returns how many of the user's tasks are completed.
func (r *Repo) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID, "status": domain.TaskStatusCompleted.String()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count completed tasks: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a task.
func (r *Repo) Create(ctx context.Context, t domain.Task) (*domain.Task, error) {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "title", "description", "category", "priority", "status", "estimated_time", "due_date", "tags").
		Values(t.UserID, t.Title, t.Description, t.Category.String(), t.Priority, t.Status.String(), t.EstimatedTime, t.DueDate, tags).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}
	return row.toDomain(), nil
}

// Update applies a partial update. Moving a task into the completed status
// through Update does not set completed_at; use MarkCompleted for that.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error) {
	set := map[string]any{}
	if params.Title != nil {
		set["title"] = *params.Title
	}
	if params.Description != nil {
		set["description"] = *params.Description
	}
	if params.Category != nil {
		set["category"] = params.Category.String()
	}
	if params.Priority != nil {
		set["priority"] = *params.Priority
	}
	if params.Status != nil {
		set["status"] = params.Status.String()
	}
	if params.EstimatedTime != nil {
		set["estimated_time"] = *params.EstimatedTime
	}
	if params.DueDate != nil {
		set["due_date"] = *params.DueDate
	}
	if params.Tags != nil {
		set["tags"] = params.Tags
	}
	if len(set) == 0 {
		return r.GetByID(ctx, userID, id)
	}
	set["updated_at"] = squirrel.Expr("now()")

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return row.toDomain(), nil
}

// MarkCompleted moves a task to the completed status at the given time.
// The boolean result is false when the task was already completed, in
// which case the stored task is returned unchanged.
func (r *Repo) MarkCompleted(ctx context.Context, userID, id uuid.UUID, at time.Time) (*domain.Task, bool, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("status", domain.TaskStatusCompleted.String()).
		Set("completed_at", at).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Where(squirrel.NotEq{"status": domain.TaskStatusCompleted.String()}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build query: %w", err)
	}

	var row taskRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...)
	if err == nil {
		return row.toDomain(), true, nil
	}

	mapped := postgres.MapError(err, "task", id)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, false, mapped
	}

	existing, getErr := r.GetByID(ctx, userID, id)
	if getErr != nil {
		return nil, false, getErr
	}
	return existing, false, nil
}

// Delete removes a task.
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
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
