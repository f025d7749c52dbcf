package gamification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

// AwardXP adds amount XP to the user and recomputes the level. The user
// row is locked for the duration of the update.
func (s *Service) AwardXP(ctx context.Context, userID uuid.UUID, amount int, reason string) error {
	if amount == 0 {
		return nil
	}

	var before, after int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		state := user.GameState
		before = state.CurrentLevel
		if err := state.AwardXP(amount); err != nil {
			return err
		}
		after = state.CurrentLevel

		return s.users.UpdateGameState(ctx, userID, state)
	})
	if err != nil {
		return fmt.Errorf("gamification.AwardXP: %w", err)
	}

	s.log.InfoContext(ctx, "xp awarded",
		slog.String("user_id", userID.String()),
		slog.Int("amount", amount),
		slog.String("reason", reason))
	if after > before {
		s.log.InfoContext(ctx, "level up",
			slog.String("user_id", userID.String()),
			slog.Int("level", after))
	}
	return nil
}

// streakQualifies reports whether an event of kind counts towards the
// daily streak.
func streakQualifies(kind domain.ActivityKind, amount int) bool {
	if amount <= 0 {
		return false
	}
	return kind == domain.ActivityTasksCompleted || kind == domain.ActivityFocusTime
}

// RecordActivity adds amount to today's kind counter and, for completed
// tasks and focus time, advances the streak.
func (s *Service) RecordActivity(ctx context.Context, userID uuid.UUID, kind domain.ActivityKind, amount int) error {
	today := s.today()

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.activity.Increment(ctx, userID, today, kind, amount); err != nil {
			return fmt.Errorf("increment %s: %w", kind, err)
		}
		if !streakQualifies(kind, amount) {
			return nil
		}

		user, err := s.users.GetForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		state := user.GameState
		if !state.RecordActivity(today) {
			return nil
		}
		return s.users.UpdateGameState(ctx, userID, state)
	})
	if err != nil {
		return fmt.Errorf("gamification.RecordActivity: %w", err)
	}
	return nil
}

// LevelInfo returns the authenticated user's progression.
func (s *Service) LevelInfo(ctx context.Context) (domain.LevelInfo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.LevelInfo{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.LevelInfo{}, fmt.Errorf("gamification.LevelInfo: %w", err)
	}
	return user.GameState.LevelInfo(), nil
}
