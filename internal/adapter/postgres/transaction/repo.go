// Package transaction implements the legacy budget transaction repository.
package transaction

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

const table = "budget_transactions"

var (
	columns   = []string{"id", "user_id", "type", "amount", "category", "section", "description", "date", "is_recurring", "created_at"}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type txRow struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Type        string          `db:"type"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Section     string          `db:"section"`
	Description string          `db:"description"`
	Date        string          `db:"date"`
	IsRecurring bool            `db:"is_recurring"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (r txRow) toDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:          r.ID,
		UserID:      r.UserID,
		Type:        domain.TransactionType(r.Type),
		Amount:      r.Amount,
		Category:    r.Category,
		Section:     r.Section,
		Description: r.Description,
		Date:        r.Date,
		IsRecurring: r.IsRecurring,
		CreatedAt:   r.CreatedAt,
	}
}

type bucketRow struct {
	Type     string          `db:"type"`
	Category string          `db:"category"`
	Month    string          `db:"month"`
	Total    decimal.Decimal `db:"total"`
}

// Repo provides transaction persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new transaction repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a transaction owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row txRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}
	return row.toDomain(), nil
}

// List returns the user's transactions, newest date first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []txRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	out := make([]*domain.Transaction, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Buckets returns transaction totals grouped by type, category and month
// (the first seven characters of the date).
func (r *Repo) Buckets(ctx context.Context, userID uuid.UUID) ([]domain.TransactionBucket, error) {
	query, args, err := postgres.Builder().
		Select("type", "category", "left(date, 7) AS month", "SUM(amount) AS total").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		GroupBy("type", "category", "month").
		OrderBy("month", "type", "category").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []bucketRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("transaction buckets: %w", err)
	}

	out := make([]domain.TransactionBucket, len(rows))
	for i, row := range rows {
		out[i] = domain.TransactionBucket{
			Type:     domain.TransactionType(row.Type),
			Category: row.Category,
			Month:    row.Month,
			Total:    row.Total,
		}
	}
	return out, nil
}

// Create inserts a transaction.
func (r *Repo) Create(ctx context.Context, t domain.Transaction) (*domain.Transaction, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "type", "amount", "category", "section", "description", "date", "is_recurring").
		Values(t.UserID, string(t.Type), t.Amount, t.Category, t.Section, t.Description, t.Date, t.IsRecurring).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row txRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "transaction", uuid.Nil)
	}
	return row.toDomain(), nil
}

// Update applies a partial update.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, params domain.TransactionUpdateParams) (*domain.Transaction, error) {
	set := map[string]any{}
	if params.Type != nil {
		set["type"] = string(*params.Type)
	}
	if params.Amount != nil {
		set["amount"] = *params.Amount
	}
	if params.Category != nil {
		set["category"] = *params.Category
	}
	if params.Section != nil {
		set["section"] = *params.Section
	}
	if params.Description != nil {
		set["description"] = *params.Description
	}
	if params.Date != nil {
		set["date"] = *params.Date
	}
	if params.IsRecurring != nil {
		set["is_recurring"] = *params.IsRecurring
	}
	if len(set) == 0 {
		return r.GetByID(ctx, userID, id)
	}

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row txRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "transaction", id)
	}
	return row.toDomain(), nil
}

// Delete removes a transaction.
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
		return postgres.MapError(err, "transaction", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
