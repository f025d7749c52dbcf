// Package note implements the Note repository using PostgreSQL.
package note

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

const table = "notes"

var (
	columns   = []string{"id", "user_id", "title", "content", "categories", "is_favorite", "created_at", "updated_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type noteRow struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	Title      string    `db:"title"`
	Content    string    `db:"content"`
	Categories []string  `db:"categories"`
	IsFavorite bool      `db:"is_favorite"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r noteRow) toDomain() *domain.Note {
	cats := r.Categories
	if cats == nil {
		cats = []string{}
	}
	return &domain.Note{
		ID:         r.ID,
		UserID:     r.UserID,
		Title:      r.Title,
		Content:    r.Content,
		Categories: cats,
		IsFavorite: r.IsFavorite,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a note owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return row.toDomain(), nil
}

// List returns the user's notes, most recently updated first. A non-empty
// category keeps only notes carrying it.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, category string) ([]*domain.Note, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID})
	if category != "" {
		b = b.Where("? = ANY(categories)", category)
	}

	query, args, err := b.OrderBy("updated_at DESC", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []noteRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]*domain.Note, len(rows))
	for i, row := range rows {
		notes[i] = row.toDomain()
	}
	return notes, nil
}

// Count returns the number of notes a user owns.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return n, nil
}

// Create inserts a note.
func (r *Repo) Create(ctx context.Context, n domain.Note) (*domain.Note, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "title", "content", "categories", "is_favorite").
		Values(n.UserID, n.Title, n.Content, n.Categories, n.IsFavorite).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "note", uuid.Nil)
	}
	return row.toDomain(), nil
}

// Update applies a partial update and bumps updated_at.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error) {
	set := map[string]any{}
	if params.Title != nil {
		set["title"] = *params.Title
	}
	if params.Content != nil {
		set["content"] = *params.Content
	}
	if params.Categories != nil {
		set["categories"] = params.Categories
	}
	if params.IsFavorite != nil {
		set["is_favorite"] = *params.IsFavorite
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

	var row noteRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return row.toDomain(), nil
}

// Delete removes a note.
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
		return postgres.MapError(err, "note", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
