package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

// List returns the caller's tasks, newest first.
func (s *Service) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown category")
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	tasks, err := s.tasks.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("task.List: %w", err)
	}
	return tasks, nil
}

// Get returns one task.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("task.Get: %w", err)
	}
	return t, nil
}

// Create adds a pending task and awards the creation XP.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Task, error) {
	input = input.withDefaults()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var created *domain.Task
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.tasks.Create(ctx, domain.Task{
			UserID:        userID,
			Title:         input.Title,
			Description:   input.Description,
			Category:      input.Category,
			Priority:      input.Priority,
			Status:        domain.TaskStatusPending,
			EstimatedTime: input.EstimatedTime,
			DueDate:       input.DueDate,
			Tags:          input.Tags,
		})
		if err != nil {
			return err
		}
		return s.game.AwardXP(ctx, userID, s.xp.TaskCreateXP, "task_created")
	})
	if err != nil {
		return nil, fmt.Errorf("task.Create: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("user_id", userID.String()),
		slog.String("task_id", created.ID.String()))

	return created, nil
}

// Update changes the supplied fields. It awards nothing; completion goes
// through Complete.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	t, err := s.tasks.Update(ctx, userID, input.ID, input.params())
	if err != nil {
		return nil, fmt.Errorf("task.Update: %w", err)
	}
	return t, nil
}

// Complete marks a task as completed, awards XP scaled by priority and
// records the completion for today's activity and streak. Completing an
// already completed task returns it unchanged and awards nothing.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		task    *domain.Task
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		task, changed, err = s.tasks.MarkCompleted(ctx, userID, id, s.now())
		if err != nil || !changed {
			return err
		}
		if err := s.game.AwardXP(ctx, userID, s.xp.TaskCompletionXP(task.Priority), "task_completed"); err != nil {
			return err
		}
		return s.game.RecordActivity(ctx, userID, domain.ActivityTasksCompleted, 1)
	})
	if err != nil {
		return nil, fmt.Errorf("task.Complete: %w", err)
	}

	if changed {
		s.log.InfoContext(ctx, "task completed",
			slog.String("user_id", userID.String()),
			slog.String("task_id", id.String()))
	}
	return task, nil
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tasks.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("task.Delete: %w", err)
	}
	return nil
}
