// Package user implements profile operations of the authenticated user.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateLabels(ctx context.Context, id uuid.UUID, labels []string) (*domain.User, error)
	SetInitialBalance(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*domain.User, error)
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
