// Package dashboard serves the read-only productivity overview: headline
// stats, daily activity and the contribution calendar.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

const (
	DefaultDays = 365
	MaxDays     = 3660
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type taskStatsReader interface {
	Stats(ctx context.Context, userID uuid.UUID, today string, weekStart time.Time) (domain.TaskStats, error)
}

type focusStatsReader interface {
	Stats(ctx context.Context, userID uuid.UUID, dayStart, dayEnd time.Time) (domain.FocusStats, error)
}

type noteCounter interface {
	Count(ctx context.Context, userID uuid.UUID) (int, error)
}

type activityRepo interface {
	ListRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyActivity, error)
}

// Service implements the dashboard queries.
type Service struct {
	log      *slog.Logger
	users    userRepo
	tasks    taskStatsReader
	focus    focusStatsReader
	notes    noteCounter
	activity activityRepo
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a new dashboard service.
func NewService(
	log *slog.Logger,
	users userRepo,
	tasks taskStatsReader,
	focus focusStatsReader,
	notes noteCounter,
	activity activityRepo,
	cfg config.GamificationConfig,
) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = domain.ParseTimezone(cfg.Timezone)
	}
	return &Service{
		log:      log.With("service", "dashboard"),
		users:    users,
		tasks:    tasks,
		focus:    focus,
		notes:    notes,
		activity: activity,
		loc:      loc,
		now:      time.Now,
	}
}

// Stats gathers the dashboard counters. The queries are independent and
// run concurrently.
func (s *Service) Stats(ctx context.Context) (domain.DashboardStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.DashboardStats{}, domain.ErrUnauthorized
	}

	now := s.now()
	today := domain.DayString(domain.Today(now, s.loc))
	dayStart, dayEnd := domain.DayBounds(now, s.loc)
	weekStart := now.AddDate(0, 0, -7)

	var (
		user  *domain.User
		tasks domain.TaskStats
		focus domain.FocusStats
		notes int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.users.GetByID(gctx, userID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		tasks, err = s.tasks.Stats(gctx, userID, today, weekStart)
		if err != nil {
			return fmt.Errorf("task stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		focus, err = s.focus.Stats(gctx, userID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("focus stats: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		notes, err = s.notes.Count(gctx, userID)
		if err != nil {
			return fmt.Errorf("count notes: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.DashboardStats{}, fmt.Errorf("dashboard.Stats: %w", err)
	}

	gs := user.GameState
	return domain.DashboardStats{
		CurrentStreak:        gs.Streak.Current,
		LongestStreak:        gs.Streak.Longest,
		TotalXP:              gs.TotalXP,
		CurrentLevel:         domain.LevelForXP(gs.TotalXP),
		TasksCompletedToday:  tasks.CompletedToday,
		TasksTotalToday:      tasks.TotalToday,
		FocusTimeToday:       focus.TodayFocusTime,
		NotesCount:           notes,
		WeeklyCompletionRate: domain.CompletionRate(tasks.WeeklyCompleted, tasks.WeeklyCreated),
		TotalTasksCompleted:  tasks.TotalCompleted,
		TotalFocusTime:       focus.TotalFocusTime,
	}, nil
}

// window resolves a trailing window of days ending today.
func (s *Service) window(days int) (from, to time.Time, err error) {
	if days == 0 {
		days = DefaultDays
	}
	if days < 1 || days > MaxDays {
		return time.Time{}, time.Time{}, domain.NewValidationError("days", fmt.Sprintf("must be between 1 and %d", MaxDays))
	}
	to = domain.Today(s.now(), s.loc)
	return to.AddDate(0, 0, -(days - 1)), to, nil
}

// Activity returns the recorded days of the trailing window, oldest first.
// Zero days selects the default window.
func (s *Service) Activity(ctx context.Context, days int) ([]domain.DailyActivity, error) {
	from, to, err := s.window(days)
	if err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	out, err := s.activity.ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Activity: %w", err)
	}
	return out, nil
}

// Calendar lays out the trailing window as a contribution calendar.
func (s *Service) Calendar(ctx context.Context, days int) (domain.ContributionCalendar, error) {
	from, to, err := s.window(days)
	if err != nil {
		return domain.ContributionCalendar{}, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ContributionCalendar{}, domain.ErrUnauthorized
	}

	records, err := s.activity.ListRange(ctx, userID, from, to)
	if err != nil {
		return domain.ContributionCalendar{}, fmt.Errorf("dashboard.Calendar: %w", err)
	}
	return domain.NewContributionCalendar(records, from, to), nil
}
