// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"errors"
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

const table = "users"

var (
	columns = []string{
		"id", "email", "username", "password_hash", "custom_note_labels",
		"total_xp", "current_level", "current_streak", "longest_streak", "last_streak_date",
		"initial_balance", "is_initial_balance_set", "created_at", "updated_at",
	}
	returning = "RETURNING " + strings.Join(columns, ", ")
)

type userRow struct {
	ID                  uuid.UUID       `db:"id"`
	Email               string          `db:"email"`
	Username            string          `db:"username"`
	PasswordHash        string          `db:"password_hash"`
	CustomNoteLabels    []string        `db:"custom_note_labels"`
	TotalXP             int             `db:"total_xp"`
	CurrentLevel        int             `db:"current_level"`
	CurrentStreak       int             `db:"current_streak"`
	LongestStreak       int             `db:"longest_streak"`
	LastStreakDate      *time.Time      `db:"last_streak_date"`
	InitialBalance      decimal.Decimal `db:"initial_balance"`
	IsInitialBalanceSet bool            `db:"is_initial_balance_set"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	labels := r.CustomNoteLabels
	if labels == nil {
		labels = []string{}
	}
	return &domain.User{
		ID:               r.ID,
		Email:            r.Email,
		Username:         r.Username,
		PasswordHash:     r.PasswordHash,
		CustomNoteLabels: labels,
		GameState: domain.UserGameState{
			TotalXP:      r.TotalXP,
			CurrentLevel: r.CurrentLevel,
			Streak: domain.Streak{
				Current:  r.CurrentStreak,
				Longest:  r.LongestStreak,
				LastDate: r.LastStreakDate,
			},
			InitialBalance:      r.InitialBalance,
			IsInitialBalanceSet: r.IsInitialBalanceSet,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Repo provides user and game state persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, suffix string, id any) (*domain.User, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where)
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "", id)
}

// GetByEmail returns a user by email address, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Expr("lower(email) = lower(?)", email), "", email)
}

// GetByUsername returns a user by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"username": username}, "", username)
}

// GetForUpdate returns a user and locks its row until the surrounding
// transaction ends. Outside a transaction the lock is released immediately.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "FOR UPDATE", id)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user with a fresh game state.
// Returns domain.ErrAlreadyExists when the email or username is taken.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	labels := u.CustomNoteLabels
	if labels == nil {
		labels = []string{}
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "email", "username", "password_hash", "custom_note_labels").
		Values(u.ID, u.Email, u.Username, u.PasswordHash, labels).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return row.toDomain(), nil
}

// UpdateGameState persists XP, level and streak fields of s.
// The initial balance is not touched; see SetInitialBalance.
func (r *Repo) UpdateGameState(ctx context.Context, id uuid.UUID, s domain.UserGameState) error {
	query, args, err := postgres.Builder().
		Update(table).
		Set("total_xp", s.TotalXP).
		Set("current_level", s.CurrentLevel).
		Set("current_streak", s.Streak.Current).
		Set("longest_streak", s.Streak.Longest).
		Set("last_streak_date", s.Streak.LastDate).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// UpdateLabels replaces the user's custom note labels.
func (r *Repo) UpdateLabels(ctx context.Context, id uuid.UUID, labels []string) (*domain.User, error) {
	if labels == nil {
		labels = []string{}
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("custom_note_labels", labels).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// SetInitialBalance stores the starting balance if it has never been set.
// Returns domain.ErrAlreadySet when the flag is already raised and
// domain.ErrNotFound when the user does not exist.
func (r *Repo) SetInitialBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*domain.User, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("initial_balance", amount).
		Set("is_initial_balance_set", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "is_initial_balance_set": false}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	err = pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...)
	if err == nil {
		return row.toDomain(), nil
	}

	mapped := postgres.MapError(err, "user", id)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}

	// Zero rows: either the user is missing or the balance is already set.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("initial balance: %w", domain.ErrAlreadySet)
}
