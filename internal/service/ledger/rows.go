package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

// ListRows returns the rows of a sheet, in store order unless a sort key
// is given.
func (s *Service) ListRows(ctx context.Context, input ListRowsInput) ([]*domain.Row, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.sheets.GetByID(ctx, userID, input.SheetID); err != nil {
		return nil, fmt.Errorf("ledger.ListRows: %w", err)
	}

	rows, err := s.rows.ListBySheet(ctx, userID, input.SheetID)
	if err != nil {
		return nil, fmt.Errorf("ledger.ListRows: %w", err)
	}

	SortRows(rows, input.SortKey, input.Descending)
	return rows, nil
}

// AddRow appends a row to a sheet.
func (s *Service) AddRow(ctx context.Context, input AddRowInput) (*domain.Row, error) {
	p := amountParser{strict: s.strict}
	credit := p.parse("credit", input.Credit)
	debit := p.parse("debit", input.Debit)
	if err := p.err(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.sheets.GetByID(ctx, userID, input.SheetID); err != nil {
		return nil, fmt.Errorf("ledger.AddRow: %w", err)
	}

	row, err := s.rows.Create(ctx, domain.Row{
		SheetID:     input.SheetID,
		UserID:      userID,
		Date:        input.Date,
		Description: input.Description,
		Credit:      credit,
		Debit:       debit,
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.AddRow: %w", err)
	}
	return row, nil
}

// UpdateRow changes only the supplied fields of a row.
func (s *Service) UpdateRow(ctx context.Context, input UpdateRowInput) (*domain.Row, error) {
	params := domain.RowUpdateParams{
		Date:        input.Date,
		Description: input.Description,
		Position:    input.Position,
	}

	p := amountParser{strict: s.strict}
	if input.Credit != nil {
		v := p.parse("credit", *input.Credit)
		params.Credit = &v
	}
	if input.Debit != nil {
		v := p.parse("debit", *input.Debit)
		params.Debit = &v
	}
	if input.Position != nil && *input.Position < 0 {
		p.errs = append(p.errs, domain.FieldError{Field: "order", Message: "must not be negative"})
	}
	if err := p.err(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	row, err := s.rows.Update(ctx, userID, input.RowID, params)
	if err != nil {
		return nil, fmt.Errorf("ledger.UpdateRow: %w", err)
	}
	return row, nil
}

// DeleteRow removes a single row.
func (s *Service) DeleteRow(ctx context.Context, rowID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.rows.Delete(ctx, userID, rowID); err != nil {
		return fmt.Errorf("ledger.DeleteRow: %w", err)
	}
	return nil
}

// Totals returns the credit and debit sums of a sheet.
func (s *Service) Totals(ctx context.Context, sheetID uuid.UUID) (domain.Totals, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Totals{}, domain.ErrUnauthorized
	}

	if _, err := s.sheets.GetByID(ctx, userID, sheetID); err != nil {
		return domain.Totals{}, fmt.Errorf("ledger.Totals: %w", err)
	}

	totals, err := s.rows.Totals(ctx, userID, sheetID)
	if err != nil {
		return domain.Totals{}, fmt.Errorf("ledger.Totals: %w", err)
	}
	return totals, nil
}
