package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

// ListTransactions returns the caller's legacy transactions, newest first.
func (s *Service) ListTransactions(ctx context.Context) ([]*domain.Transaction, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	txs, err := s.transactions.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger.ListTransactions: %w", err)
	}
	return txs, nil
}

// CreateTransaction records a legacy transaction. Expenses count towards
// the day's expenses_logged activity.
func (s *Service) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	section := strings.TrimSpace(input.Section)
	if section == "" {
		section = domain.DefaultSection
	}

	var created *domain.Transaction
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.transactions.Create(ctx, domain.Transaction{
			UserID:      userID,
			Type:        input.Type,
			Amount:      input.Amount.Round(2),
			Category:    input.Category,
			Section:     section,
			Description: input.Description,
			Date:        strings.TrimSpace(input.Date),
			IsRecurring: input.IsRecurring,
		})
		if err != nil {
			return err
		}
		if input.Type != domain.TransactionExpense {
			return nil
		}
		return s.activity.RecordActivity(ctx, userID, domain.ActivityExpensesLogged, 1)
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.CreateTransaction: %w", err)
	}

	s.log.InfoContext(ctx, "transaction created",
		slog.String("user_id", userID.String()),
		slog.String("type", created.Type.String()))

	return created, nil
}

// UpdateTransaction changes the supplied fields of a transaction. The
// category is checked against the resulting type.
func (s *Service) UpdateTransaction(ctx context.Context, input UpdateTransactionInput) (*domain.Transaction, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Transaction
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.transactions.GetByID(ctx, userID, input.ID)
		if err != nil {
			return err
		}
		if err := input.validateAgainst(current); err != nil {
			return err
		}
		updated, err = s.transactions.Update(ctx, userID, input.ID, input.params())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.UpdateTransaction: %w", err)
	}
	return updated, nil
}

// DeleteTransaction removes a legacy transaction.
func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.transactions.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("ledger.DeleteTransaction: %w", err)
	}
	return nil
}

// Summary computes income, expenses and balance over all legacy
// transactions of the caller.
func (s *Service) Summary(ctx context.Context) (domain.BudgetSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.BudgetSummary{}, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("ledger.Summary: %w", err)
	}

	buckets, err := s.transactions.Buckets(ctx, userID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("ledger.Summary: %w", err)
	}

	gs := user.GameState
	return domain.NewBudgetSummary(buckets, gs.InitialBalance, gs.IsInitialBalanceSet), nil
}
