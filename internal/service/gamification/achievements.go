package gamification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

func (s *Service) achievementStats(ctx context.Context, userID uuid.UUID) (domain.AchievementStats, error) {
	var st domain.AchievementStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		user, err := s.users.GetByID(gctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		st.LongestStreak = user.GameState.Streak.Longest
		return nil
	})
	g.Go(func() error {
		n, err := s.tasks.CountCompleted(gctx, userID)
		st.TasksCompleted = n
		return err
	})
	g.Go(func() error {
		n, err := s.notes.Count(gctx, userID)
		st.NotesCreated = n
		return err
	})
	g.Go(func() error {
		start, end := domain.DayBounds(s.now(), s.loc)
		fs, err := s.focus.Stats(gctx, userID, start, end)
		st.UninterruptedFocus = fs.CompletedSessions
		st.FocusMinutes = fs.TotalFocusTime
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.AchievementStats{}, err
	}
	return st, nil
}

// ListAchievements evaluates the catalog for the authenticated user.
// Achievements reached for the first time are persisted and their XP is
// awarded exactly once.
func (s *Service) ListAchievements(ctx context.Context) ([]domain.AchievementProgress, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.achievementStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("gamification.ListAchievements stats: %w", err)
	}

	var progress []domain.AchievementProgress
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		unlocked, err := s.achievements.ListUnlocked(ctx, userID)
		if err != nil {
			return err
		}

		progress = domain.EvaluateAchievements(stats, unlocked)
		now := s.now()
		for i := range progress {
			p := &progress[i]
			if !p.Unlocked || p.UnlockedAt != nil {
				continue
			}

			inserted, err := s.achievements.Unlock(ctx, userID, p.ID, now)
			if err != nil {
				return fmt.Errorf("unlock %s: %w", p.ID, err)
			}
			at := now
			p.UnlockedAt = &at
			if !inserted {
				continue
			}
			if err := s.AwardXP(ctx, userID, p.XPReward, "achievement:"+p.ID); err != nil {
				return err
			}
			s.log.InfoContext(ctx, "achievement unlocked",
				slog.String("user_id", userID.String()),
				slog.String("achievement", p.ID))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("gamification.ListAchievements: %w", err)
	}
	return progress, nil
}
