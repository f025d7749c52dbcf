// Package task implements the to-do list. Creating and completing tasks
// feeds the gamification engine.
package task

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/domain"
)

type taskRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.TaskFilter) ([]*domain.Task, error)
	Create(ctx context.Context, t domain.Task) (*domain.Task, error)
	Update(ctx context.Context, userID, id uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error)
	MarkCompleted(ctx context.Context, userID, id uuid.UUID, at time.Time) (*domain.Task, bool, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type gamifier interface {
	AwardXP(ctx context.Context, userID uuid.UUID, amount int, reason string) error
	RecordActivity(ctx context.Context, userID uuid.UUID, kind domain.ActivityKind, amount int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements task operations.
type Service struct {
	log   *slog.Logger
	tasks taskRepo
	game  gamifier
	tx    txManager
	xp    config.GamificationConfig
	now   func() time.Time
}

// NewService creates a new task service.
func NewService(log *slog.Logger, tasks taskRepo, game gamifier, tx txManager, xp config.GamificationConfig) *Service {
	return &Service{
		log:   log.With("service", "task"),
		tasks: tasks,
		game:  game,
		tx:    tx,
		xp:    xp,
		now:   time.Now,
	}
}
