package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a fresh game state and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:               uuid.New(),
		Email:            "testuser-" + suffix + "@example.com",
		Username:         "user_" + suffix,
		PasswordHash:     "$2a$04$invalidhashfortestsonly",
		CustomNoteLabels: []string{},
		GameState:        domain.NewUserGameState(),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (id, email, username, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		user.ID, user.Email, user.Username, user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedSheet creates a budget sheet owned by userID.
func SeedSheet(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.Sheet {
	t.Helper()

	sheet := domain.Sheet{ID: uuid.New(), UserID: userID, Name: name}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO budget_sheets (id, user_id, name, position)
		 VALUES ($1, $2, $3, (SELECT count(*) FROM budget_sheets WHERE user_id = $2))
		 RETURNING position, created_at`,
		sheet.ID, userID, name,
	).Scan(&sheet.Position, &sheet.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSheet: %v", err)
	}

	return sheet
}

// SeedRow appends a row to a sheet.
func SeedRow(t *testing.T, pool *pgxpool.Pool, sheet domain.Sheet, date, description string, credit, debit string) domain.Row {
	t.Helper()

	row := domain.Row{
		ID:          uuid.New(),
		SheetID:     sheet.ID,
		UserID:      sheet.UserID,
		Date:        date,
		Description: description,
		Credit:      decimal.RequireFromString(credit),
		Debit:       decimal.RequireFromString(debit),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO budget_rows (id, sheet_id, user_id, date, description, credit, debit, position)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, (SELECT count(*) FROM budget_rows WHERE sheet_id = $2))
		 RETURNING position, created_at`,
		row.ID, row.SheetID, row.UserID, row.Date, row.Description, row.Credit, row.Debit,
	).Scan(&row.Position, &row.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedRow: %v", err)
	}

	return row
}
