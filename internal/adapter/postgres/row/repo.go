// Package row implements the budget row repository using PostgreSQL.
package row

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeos/lifeos-backend/internal/adapter/postgres"
	"github.com/lifeos/lifeos-backend/internal/domain"
)

const table = "budget_rows"

var (
	columns   = []string{"id", "sheet_id", "user_id", "date", "description", "credit", "debit", "position", "created_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type rowRow struct {
	ID          uuid.UUID       `db:"id"`
	SheetID     uuid.UUID       `db:"sheet_id"`
	UserID      uuid.UUID       `db:"user_id"`
	Date        string          `db:"date"`
	Description string          `db:"description"`
	Credit      decimal.Decimal `db:"credit"`
	Debit       decimal.Decimal `db:"debit"`
	Position    int             `db:"position"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (r rowRow) toDomain() *domain.Row {
	return &domain.Row{
		ID:          r.ID,
		SheetID:     r.SheetID,
		UserID:      r.UserID,
		Date:        r.Date,
		Description: r.Description,
		Credit:      r.Credit,
		Debit:       r.Debit,
		Position:    r.Position,
		CreatedAt:   r.CreatedAt,
	}
}

func toDomainSlice(rows []rowRow) []*domain.Row {
	out := make([]*domain.Row, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// Repo provides ledger row persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new row repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a row owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, rowID uuid.UUID) (*domain.Row, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": rowID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row rowRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "row", rowID)
	}
	return row.toDomain(), nil
}

// ListBySheet returns the rows of a sheet in store order.
func (r *Repo) ListBySheet(ctx context.Context, userID, sheetID uuid.UUID) ([]*domain.Row, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"sheet_id": sheetID, "user_id": userID}).
		OrderBy("position", "created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []rowRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list rows: %w", err)
	}
	return toDomainSlice(rows), nil
}

// Totals sums credit and debit over every row of a sheet.
func (r *Repo) Totals(ctx context.Context, userID, sheetID uuid.UUID) (domain.Totals, error) {
	query, args, err := postgres.Builder().
		Select("COALESCE(SUM(credit), 0)", "COALESCE(SUM(debit), 0)").
		From(table).
		Where(squirrel.Eq{"sheet_id": sheetID, "user_id": userID}).
		ToSql()
	if err != nil {
		return domain.Totals{}, fmt.Errorf("build query: %w", err)
	}

	var t domain.Totals
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&t.Credit, &t.Debit); err != nil {
		return domain.Totals{}, fmt.Errorf("sum rows: %w", err)
	}
	return t, nil
}

// NextPosition returns the position a row appended to the sheet receives.
func (r *Repo) NextPosition(ctx context.Context, sheetID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("COALESCE(MAX(position) + 1, 0)").
		From(table).
		Where(squirrel.Eq{"sheet_id": sheetID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var pos int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&pos); err != nil {
		return 0, fmt.Errorf("next position: %w", err)
	}
	return pos, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a row to the end of its sheet. The position of row is ignored.
func (r *Repo) Create(ctx context.Context, row domain.Row) (*domain.Row, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("sheet_id", "user_id", "date", "description", "credit", "debit", "position").
		Values(row.SheetID, row.UserID, row.Date, row.Description, row.Credit, row.Debit,
			squirrel.Expr("(SELECT COALESCE(MAX(position) + 1, 0) FROM "+table+" WHERE sheet_id = ?)", row.SheetID)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var out rowRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "sheet", row.SheetID)
	}
	return out.toDomain(), nil
}

// CreateBatch appends rows to a sheet in slice order with one statement.
// All rows must belong to sheetID and userID.
func (r *Repo) CreateBatch(ctx context.Context, userID, sheetID uuid.UUID, rows []domain.Row) ([]*domain.Row, error) {
	if len(rows) == 0 {
		return []*domain.Row{}, nil
	}

	start, err := r.NextPosition(ctx, sheetID)
	if err != nil {
		return nil, err
	}

	b := postgres.Builder().
		Insert(table).
		Columns("sheet_id", "user_id", "date", "description", "credit", "debit", "position")
	for i, row := range rows {
		b = b.Values(sheetID, userID, row.Date, row.Description, row.Credit, row.Debit, start+i)
	}

	query, args, err := b.Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var out []rowRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "sheet", sheetID)
	}
	return toDomainSlice(out), nil
}

// Update applies a partial update. With no fields set it returns the
// current row unchanged.
func (r *Repo) Update(ctx context.Context, userID, rowID uuid.UUID, params domain.RowUpdateParams) (*domain.Row, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, userID, rowID)
	}

	set := map[string]any{}
	if params.Date != nil {
		set["date"] = *params.Date
	}
	if params.Description != nil {
		set["description"] = *params.Description
	}
	if params.Credit != nil {
		set["credit"] = *params.Credit
	}
	if params.Debit != nil {
		set["debit"] = *params.Debit
	}
	if params.Position != nil {
		set["position"] = *params.Position
	}

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": rowID, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var out rowRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "row", rowID)
	}
	return out.toDomain(), nil
}

// Delete removes a row.
// Returns domain.ErrNotFound if the row does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, rowID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": rowID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "row", rowID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("row %s: %w", rowID, domain.ErrNotFound)
	}
	return nil
}

// DeleteBySheet removes every row of a sheet and returns how many were removed.
func (r *Repo) DeleteBySheet(ctx context.Context, userID, sheetID uuid.UUID) (int64, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"sheet_id": sheetID, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete rows: %w", err)
	}
	return tag.RowsAffected(), nil
}
