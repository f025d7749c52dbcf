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

// ListSheets returns the caller's sheets in display order.
func (s *Service) ListSheets(ctx context.Context) ([]*domain.Sheet, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sheets, err := s.sheets.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("ledger.ListSheets: %w", err)
	}
	return sheets, nil
}

// GetSheet returns one of the caller's sheets.
func (s *Service) GetSheet(ctx context.Context, sheetID uuid.UUID) (*domain.Sheet, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sheet, err := s.sheets.GetByID(ctx, userID, sheetID)
	if err != nil {
		return nil, fmt.Errorf("ledger.GetSheet: %w", err)
	}
	return sheet, nil
}

// CreateSheet appends a new sheet to the caller's list.
func (s *Service) CreateSheet(ctx context.Context, input CreateSheetInput) (*domain.Sheet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sheet, err := s.sheets.Create(ctx, userID, strings.TrimSpace(input.Name))
	if err != nil {
		return nil, fmt.Errorf("ledger.CreateSheet: %w", err)
	}

	s.log.InfoContext(ctx, "sheet created",
		slog.String("user_id", userID.String()),
		slog.String("sheet_id", sheet.ID.String()))

	return sheet, nil
}

// UpdateSheet renames and/or reorders a sheet.
func (s *Service) UpdateSheet(ctx context.Context, input UpdateSheetInput) (*domain.Sheet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	params := domain.SheetUpdateParams{Position: input.Position}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}

	sheet, err := s.sheets.Update(ctx, userID, input.SheetID, params)
	if err != nil {
		return nil, fmt.Errorf("ledger.UpdateSheet: %w", err)
	}
	return sheet, nil
}

// DeleteSheet removes a sheet together with all of its rows.
func (s *Service) DeleteSheet(ctx context.Context, sheetID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var removed int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.rows.DeleteBySheet(ctx, userID, sheetID)
		if err != nil {
			return fmt.Errorf("delete rows: %w", err)
		}
		removed = n
		return s.sheets.Delete(ctx, userID, sheetID)
	})
	if err != nil {
		return fmt.Errorf("ledger.DeleteSheet: %w", err)
	}

	s.log.InfoContext(ctx, "sheet deleted",
		slog.String("user_id", userID.String()),
		slog.String("sheet_id", sheetID.String()),
		slog.Int64("rows", removed))

	return nil
}
