// Package impex imports spreadsheet files into budget sheets and exports
// sheets as CSV.
package impex

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/domain"
)

type sheetRepo interface {
	GetByID(ctx context.Context, userID, sheetID uuid.UUID) (*domain.Sheet, error)
}

type rowRepo interface {
	ListBySheet(ctx context.Context, userID, sheetID uuid.UUID) ([]*domain.Row, error)
	CreateBatch(ctx context.Context, userID, sheetID uuid.UUID, rows []domain.Row) ([]*domain.Row, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements sheet import and export.
type Service struct {
	log    *slog.Logger
	sheets sheetRepo
	rows   rowRepo
	tx     txManager
	cfg    config.BudgetConfig
}

// NewService creates a new import/export service.
func NewService(log *slog.Logger, sheets sheetRepo, rows rowRepo, tx txManager, cfg config.BudgetConfig) *Service {
	return &Service{
		log:    log.With("service", "impex"),
		sheets: sheets,
		rows:   rows,
		tx:     tx,
		cfg:    cfg,
	}
}
