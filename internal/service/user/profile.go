package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

// Me returns the authenticated user's profile and game state.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}
	return user, nil
}

// UpdateLabels replaces the user's custom note labels.
func (s *Service) UpdateLabels(ctx context.Context, input UpdateLabelsInput) (*domain.User, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.UpdateLabels(ctx, userID, input.Labels)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateLabels: %w", err)
	}

	s.log.InfoContext(ctx, "note labels updated",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(input.Labels)))

	return user, nil
}

// SetInitialBalance stores the budget's starting balance. It can be set
// only once; later calls return domain.ErrAlreadySet.
func (s *Service) SetInitialBalance(ctx context.Context, input SetInitialBalanceInput) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.SetInitialBalance: %w", err)
	}

	state := current.GameState
	if err := state.SetInitialBalance(input.Amount); err != nil {
		if errors.Is(err, domain.ErrAlreadySet) {
			return nil, fmt.Errorf("user.SetInitialBalance: %w", err)
		}
		return nil, err
	}

	// The conditional update still guards against a concurrent first set.
	user, err := s.users.SetInitialBalance(ctx, userID, state.InitialBalance)
	if err != nil {
		return nil, fmt.Errorf("user.SetInitialBalance: %w", err)
	}

	s.log.InfoContext(ctx, "initial balance set",
		slog.String("user_id", userID.String()),
		slog.String("amount", state.InitialBalance.String()))

	return user, nil
}
