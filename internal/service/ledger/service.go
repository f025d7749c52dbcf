// Package ledger implements the budget spreadsheet: sheets, their rows and
// the legacy single-amount transactions with their summary.
package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type sheetRepo interface {
	GetByID(ctx context.Context, userID, sheetID uuid.UUID) (*domain.Sheet, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Sheet, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Sheet, error)
	Update(ctx context.Context, userID, sheetID uuid.UUID, params domain.SheetUpdateParams) (*domain.Sheet, error)
	Delete(ctx context.Context, userID, sheetID uuid.UUID) error
}

type rowRepo interface {
	ListBySheet(ctx context.Context, userID, sheetID uuid.UUID) ([]*domain.Row, error)
	Totals(ctx context.Context, userID, sheetID uuid.UUID) (domain.Totals, error)
	Create(ctx context.Context, row domain.Row) (*domain.Row, error)
	Update(ctx context.Context, userID, rowID uuid.UUID, params domain.RowUpdateParams) (*domain.Row, error)
	Delete(ctx context.Context, userID, rowID uuid.UUID) error
	DeleteBySheet(ctx context.Context, userID, sheetID uuid.UUID) (int64, error)
}

type transactionRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Transaction, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error)
	Buckets(ctx context.Context, userID uuid.UUID) ([]domain.TransactionBucket, error)
	Create(ctx context.Context, t domain.Transaction) (*domain.Transaction, error)
	Update(ctx context.Context, userID, id uuid.UUID, params domain.TransactionUpdateParams) (*domain.Transaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type activityRecorder interface {
	RecordActivity(ctx context.Context, userID uuid.UUID, kind domain.ActivityKind, amount int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the budget ledger.
type Service struct {
	log          *slog.Logger
	sheets       sheetRepo
	rows         rowRepo
	transactions transactionRepo
	users        userRepo
	activity     activityRecorder
	tx           txManager
	strict       bool
}

// NewService creates a new ledger service.
func NewService(
	log *slog.Logger,
	sheets sheetRepo,
	rows rowRepo,
	transactions transactionRepo,
	users userRepo,
	activity activityRecorder,
	tx txManager,
	cfg config.BudgetConfig,
) *Service {
	return &Service{
		log:          log.With("service", "ledger"),
		sheets:       sheets,
		rows:         rows,
		transactions: transactions,
		users:        users,
		activity:     activity,
		tx:           tx,
		strict:       cfg.StrictNumbers,
	}
}
