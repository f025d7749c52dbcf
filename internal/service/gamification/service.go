// Package gamification awards XP, tracks streaks and daily activity, and
// evaluates achievements.
package gamification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateGameState(ctx context.Context, id uuid.UUID, s domain.UserGameState) error
}

type activityRepo interface {
	Increment(ctx context.Context, userID uuid.UUID, day time.Time, kind domain.ActivityKind, amount int) error
}

type achievementRepo interface {
	ListUnlocked(ctx context.Context, userID uuid.UUID) (map[string]time.Time, error)
	Unlock(ctx context.Context, userID uuid.UUID, achievementID string, at time.Time) (bool, error)
}

type taskCounter interface {
	CountCompleted(ctx context.Context, userID uuid.UUID) (int, error)
}

type noteCounter interface {
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

type focusStatsReader interface {
	Stats(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (domain.FocusStats, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the gamification engine. Its mutators join the
// caller's transaction when ctx carries one.
type Service struct {
	log          *slog.Logger
	users        userRepo
	activity     activityRepo
	achievements achievementRepo
	tasks        taskCounter
	notes        noteCounter
	focus        focusStatsReader
	tx           txManager
	loc          *time.Location
	now          func() time.Time
}

// NewService creates a new gamification service.
func NewService(
	log *slog.Logger,
	users userRepo,
	activity activityRepo,
	achievements achievementRepo,
	tasks taskCounter,
	notes noteCounter,
	focus focusStatsReader,
	tx txManager,
	cfg config.GamificationConfig,
) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = domain.ParseTimezone(cfg.Timezone)
	}
	return &Service{
		log:          log.With("service", "gamification"),
		users:        users,
		activity:     activity,
		achievements: achievements,
		tasks:        tasks,
		notes:        notes,
		focus:        focus,
		tx:           tx,
		loc:          loc,
		now:          time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.Today(s.now(), s.loc)
}
