// Package sheet implements the budget sheet repository using PostgreSQL.
package sheet

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

const table = "budget_sheets"

var (
	columns   = []string{"id", "user_id", "name", "position", "created_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type sheetRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}

func (r sheetRow) toDomain() *domain.Sheet {
	return &domain.Sheet{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		Position:  r.Position,
		CreatedAt: r.CreatedAt,
	}
}

// Repo provides sheet persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sheet repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a sheet owned by userID.
// Returns domain.ErrNotFound if the sheet does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, sheetID uuid.UUID) (*domain.Sheet, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": sheetID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sheetRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "sheet", sheetID)
	}
	return row.toDomain(), nil
}

// List returns the user's sheets in creation order.
// Returns an empty slice (not nil) when the user has no sheets.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Sheet, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("position", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sheetRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}

	sheets := make([]*domain.Sheet, len(rows))
	for i, row := range rows {
		sheets[i] = row.toDomain()
	}
	return sheets, nil
}

// Count returns the number of sheets a user owns.
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
		return 0, fmt.Errorf("count sheets: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a sheet at the end of the user's sheet list.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Sheet, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "name", "position").
		Values(userID, name, squirrel.Expr("(SELECT count(*) FROM "+table+" WHERE user_id = ?)", userID)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sheetRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "sheet", uuid.Nil)
	}
	return row.toDomain(), nil
}

// Update applies a partial update. With no fields set it returns the
// current sheet unchanged.
// Returns domain.ErrNotFound if the sheet does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, sheetID uuid.UUID, params domain.SheetUpdateParams) (*domain.Sheet, error) {
	set := map[string]any{}
	if params.Name != nil {
		set["name"] = *params.Name
	}
	if params.Position != nil {
		set["position"] = *params.Position
	}
	if len(set) == 0 {
		return r.GetByID(ctx, userID, sheetID)
	}

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": sheetID, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row sheetRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "sheet", sheetID)
	}
	return row.toDomain(), nil
}

// Delete removes a sheet. Rows are removed by ON DELETE CASCADE.
// Returns domain.ErrNotFound if the sheet does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, sheetID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": sheetID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "sheet", sheetID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("sheet %s: %w", sheetID, domain.ErrNotFound)
	}
	return nil
}
