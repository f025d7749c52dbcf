// Package habit implements daily habits with per-habit streaks.
package habit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

const (
	maxTitleLength = 200
	maxIconLength  = 16
)

type habitRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Habit, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Habit, error)
	MaxPosition(ctx context.Context, userID uuid.UUID) (int, error)
	Create(ctx context.Context, h domain.Habit) (*domain.Habit, error)
	Save(ctx context.Context, h domain.Habit) (*domain.Habit, error)
	ResetStale(ctx context.Context, userID uuid.UUID, today time.Time) (int64, error)
	Reorder(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements habit operations.
type Service struct {
	log    *slog.Logger
	habits habitRepo
	tx     txManager
	loc    *time.Location
	now    func() time.Time
}

// NewService creates a new habit service. Habit days follow the
// gamification timezone.
func NewService(log *slog.Logger, habits habitRepo, tx txManager, cfg config.GamificationConfig) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = domain.ParseTimezone(cfg.Timezone)
	}
	return &Service{
		log:    log.With("service", "habit"),
		habits: habits,
		tx:     tx,
		loc:    loc,
		now:    time.Now,
	}
}

func (s *Service) today() time.Time {
	return domain.Today(s.now(), s.loc)
}

// CreateInput holds a new habit. A nil Position appends the habit.
type CreateInput struct {
	Title    string
	Icon     string
	Position *int
}

// UpdateInput holds a partial habit update. IsCompleted toggles today's
// check-off.
type UpdateInput struct {
	ID          uuid.UUID
	Title       *string
	Icon        *string
	Position    *int
	IsCompleted *bool
}

func validateFields(title, icon *string, position *int) error {
	var errs []domain.FieldError
	if title != nil {
		switch {
		case *title == "":
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		case utf8.RuneCountInString(*title) > maxTitleLength:
			errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
		}
	}
	if icon != nil && utf8.RuneCountInString(*icon) > maxIconLength {
		errs = append(errs, domain.FieldError{Field: "icon", Message: "too long"})
	}
	if position != nil && *position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// List returns the caller's habits by position. Habits not checked off
// today are reset to not completed first.
func (s *Service) List(ctx context.Context) ([]*domain.Habit, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	reset, err := s.habits.ResetStale(ctx, userID, s.today())
	if err != nil {
		return nil, fmt.Errorf("habit.List: %w", err)
	}
	if reset > 0 {
		s.log.DebugContext(ctx, "habits reset",
			slog.String("user_id", userID.String()),
			slog.Int64("count", reset))
	}

	habits, err := s.habits.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("habit.List: %w", err)
	}
	return habits, nil
}

// Create adds a habit.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Habit, error) {
	title := strings.TrimSpace(input.Title)
	icon := strings.TrimSpace(input.Icon)
	if err := validateFields(&title, &icon, input.Position); err != nil {
		return nil, err
	}
	if icon == "" {
		icon = domain.DefaultHabitIcon
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var created *domain.Habit
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		position := 0
		if input.Position != nil {
			position = *input.Position
		} else {
			last, err := s.habits.MaxPosition(ctx, userID)
			if err != nil {
				return err
			}
			position = last + 1
		}

		var err error
		created, err = s.habits.Create(ctx, domain.Habit{
			UserID:   userID,
			Title:    title,
			Icon:     icon,
			Position: position,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("habit.Create: %w", err)
	}
	return created, nil
}

// Update applies a partial update. Checking a habit off advances its
// streak with the same day rule as the user streak; unchecking only clears
// the flag.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Habit, error) {
	var title, icon *string
	if input.Title != nil {
		t := strings.TrimSpace(*input.Title)
		title = &t
	}
	if input.Icon != nil {
		i := strings.TrimSpace(*input.Icon)
		icon = &i
	}
	if err := validateFields(title, icon, input.Position); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var saved *domain.Habit
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		h, err := s.habits.GetByID(ctx, userID, input.ID)
		if err != nil {
			return err
		}

		if title != nil {
			h.Title = *title
		}
		if icon != nil {
			h.Icon = *icon
			if h.Icon == "" {
				h.Icon = domain.DefaultHabitIcon
			}
		}
		if input.Position != nil {
			h.Position = *input.Position
		}
		if input.IsCompleted != nil {
			today := s.today()
			switch {
			case *input.IsCompleted && h.CompletedOn(today):
				h.IsCompleted = true
			case *input.IsCompleted:
				h.Complete(today)
			default:
				h.IsCompleted = false
			}
		}

		saved, err = s.habits.Save(ctx, *h)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("habit.Update: %w", err)
	}
	return saved, nil
}

// Reorder assigns positions by the order of ids. Every id must be one of
// the caller's habits.
func (s *Service) Reorder(ctx context.Context, ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return domain.NewValidationError("habit_ids", "contains duplicates")
		}
		seen[id] = struct{}{}
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.habits.Reorder(ctx, userID, ids)
	})
	if err != nil {
		return fmt.Errorf("habit.Reorder: %w", err)
	}
	return nil
}

// Delete removes a habit.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.habits.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("habit.Delete: %w", err)
	}
	return nil
}
