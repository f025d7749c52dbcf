// Package focus implements Pomodoro focus sessions.
package focus

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

const (
	maxPlannedMinutes = 240
	maxActualMinutes  = 1440
)

type sessionRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.FocusSession, error)
	Stats(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (domain.FocusStats, error)
	Create(ctx context.Context, s domain.FocusSession) (*domain.FocusSession, error)
	Complete(ctx context.Context, userID, id uuid.UUID, actual int, interrupted bool, at time.Time) (*domain.FocusSession, error)
}

type gamifier interface {
	AwardXP(ctx context.Context, userID uuid.UUID, amount int, reason string) error
	RecordActivity(ctx context.Context, userID uuid.UUID, kind domain.ActivityKind, amount int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements focus session operations.
type Service struct {
	log      *slog.Logger
	sessions sessionRepo
	game     gamifier
	tx       txManager
	xp       int
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a new focus service.
func NewService(log *slog.Logger, sessions sessionRepo, game gamifier, tx txManager, cfg config.GamificationConfig) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = domain.ParseTimezone(cfg.Timezone)
	}
	return &Service{
		log:      log.With("service", "focus"),
		sessions: sessions,
		game:     game,
		tx:       tx,
		xp:       cfg.FocusCompleteXP,
		loc:      loc,
		now:      time.Now,
	}
}

// StartInput starts a session of DurationPlanned minutes.
type StartInput struct {
	TaskID          *uuid.UUID
	DurationPlanned int
}

// Validate checks the planned duration.
func (i StartInput) Validate() error {
	if i.DurationPlanned < 1 || i.DurationPlanned > maxPlannedMinutes {
		return domain.NewValidationError("duration_planned", fmt.Sprintf("must be between 1 and %d", maxPlannedMinutes))
	}
	return nil
}

// CompleteInput finishes a running session.
type CompleteInput struct {
	SessionID      uuid.UUID
	DurationActual int
	Interrupted    bool
}

// Validate checks the actual duration.
func (i CompleteInput) Validate() error {
	if i.DurationActual < 0 || i.DurationActual > maxActualMinutes {
		return domain.NewValidationError("duration_actual", fmt.Sprintf("must be between 0 and %d", maxActualMinutes))
	}
	return nil
}

// Start opens a new session for the caller.
func (s *Service) Start(ctx context.Context, input StartInput) (*domain.FocusSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.Create(ctx, domain.FocusSession{
		UserID:          userID,
		TaskID:          input.TaskID,
		DurationPlanned: input.DurationPlanned,
		StartedAt:       s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("focus.Start: %w", err)
	}
	return session, nil
}

// Complete finishes a session. An uninterrupted session earns XP; the
// actual minutes count towards today's focus time either way.
func (s *Service) Complete(ctx context.Context, input CompleteInput) (*domain.FocusSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var session *domain.FocusSession
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		session, err = s.sessions.Complete(ctx, userID, input.SessionID, input.DurationActual, input.Interrupted, s.now().UTC())
		if err != nil {
			return err
		}
		if !input.Interrupted {
			if err := s.game.AwardXP(ctx, userID, s.xp, "focus_completed"); err != nil {
				return err
			}
		}
		if input.DurationActual > 0 {
			return s.game.RecordActivity(ctx, userID, domain.ActivityFocusTime, input.DurationActual)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("focus.Complete: %w", err)
	}

	s.log.InfoContext(ctx, "focus session completed",
		slog.String("user_id", userID.String()),
		slog.String("session_id", session.ID.String()),
		slog.Int("minutes", input.DurationActual),
		slog.Bool("interrupted", input.Interrupted))

	return session, nil
}

// Sessions returns the caller's recent sessions, newest first.
func (s *Service) Sessions(ctx context.Context) ([]*domain.FocusSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sessions, err := s.sessions.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("focus.Sessions: %w", err)
	}
	return sessions, nil
}

// Stats aggregates the caller's completed sessions. "Today" is the current
// day in the configured timezone.
func (s *Service) Stats(ctx context.Context) (domain.FocusStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.FocusStats{}, domain.ErrUnauthorized
	}

	start, end := domain.DayBounds(s.now(), s.loc)
	stats, err := s.sessions.Stats(ctx, userID, start, end)
	if err != nil {
		return domain.FocusStats{}, fmt.Errorf("focus.Stats: %w", err)
	}
	return stats, nil
}
