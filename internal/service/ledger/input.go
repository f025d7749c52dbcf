package ledger

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

const maxSheetNameLength = 200

// ---------------------------------------------------------------------------
// Sheets
// ---------------------------------------------------------------------------

// CreateSheetInput holds the parameters for creating a sheet.
type CreateSheetInput struct {
	Name string
}

// Validate validates the input.
func (i CreateSheetInput) Validate() error {
	if errs := validateSheetName(i.Name); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSheetInput renames and/or moves a sheet. Nil fields are unchanged.
type UpdateSheetInput struct {
	SheetID  uuid.UUID
	Name     *string
	Position *int
}

// Validate validates the input.
func (i UpdateSheetInput) Validate() error {
	var errs []domain.FieldError
	if i.SheetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "sheet_id", Message: "required"})
	}
	if i.Name != nil {
		errs = append(errs, validateSheetName(*i.Name)...)
	}
	if i.Position != nil && *i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must not be negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateSheetName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case utf8.RuneCountInString(name) > maxSheetNameLength:
		return []domain.FieldError{{Field: "name", Message: "too long"}}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

// AddRowInput holds a new row. Credit and Debit are raw user input and are
// coerced with domain.CoerceAmount.
type AddRowInput struct {
	SheetID     uuid.UUID
	Date        string
	Description string
	Credit      string
	Debit       string
}

// UpdateRowInput holds a partial row update. Nil fields are unchanged.
type UpdateRowInput struct {
	RowID       uuid.UUID
	Date        *string
	Description *string
	Credit      *string
	Debit       *string
	Position    *int
}

// ListRowsInput selects the sheet and the display order of its rows.
type ListRowsInput struct {
	SheetID    uuid.UUID
	SortKey    domain.RowSortKey
	Descending bool
}

// amountParser collects field errors while coercing amount fields.
type amountParser struct {
	strict bool
	errs   []domain.FieldError
}

func (p *amountParser) parse(field, raw string) decimal.Decimal {
	d, err := domain.CoerceAmount(raw, p.strict)
	switch {
	case errors.Is(err, domain.ErrAmountOutOfRange):
		p.errs = append(p.errs, domain.FieldError{Field: field, Message: "out of range"})
		return decimal.Zero
	case err != nil:
		p.errs = append(p.errs, domain.FieldError{Field: field, Message: "must be a number"})
		return decimal.Zero
	}
	if p.strict && d.IsNegative() {
		p.errs = append(p.errs, domain.FieldError{Field: field, Message: "must not be negative"})
	}
	return d
}

func (p *amountParser) err() error {
	if len(p.errs) > 0 {
		return &domain.ValidationError{Errors: p.errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Legacy transactions
// ---------------------------------------------------------------------------

// CreateTransactionInput holds a new legacy transaction.
type CreateTransactionInput struct {
	Type        domain.TransactionType
	Amount      decimal.Decimal
	Category    string
	Section     string
	Description string
	Date        string
	IsRecurring bool
}

// Validate validates the input.
func (i CreateTransactionInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be income or expense"})
	} else if !i.Type.IsValidCategory(i.Category) {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid for " + i.Type.String()})
	}
	errs = append(errs, validateTransactionAmount(i.Amount)...)
	if strings.TrimSpace(i.Date) == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTransactionInput holds a partial transaction update.
type UpdateTransactionInput struct {
	ID          uuid.UUID
	Type        *domain.TransactionType
	Amount      *decimal.Decimal
	Category    *string
	Section     *string
	Description *string
	Date        *string
	IsRecurring *bool
}

// validateAgainst checks the update applied to current.
func (i UpdateTransactionInput) validateAgainst(current *domain.Transaction) error {
	var errs []domain.FieldError

	typ := current.Type
	if i.Type != nil {
		typ = *i.Type
	}
	category := current.Category
	if i.Category != nil {
		category = *i.Category
	}

	if !typ.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be income or expense"})
	} else if (i.Type != nil || i.Category != nil) && !typ.IsValidCategory(category) {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid for " + typ.String()})
	}
	if i.Amount != nil {
		errs = append(errs, validateTransactionAmount(*i.Amount)...)
	}
	if i.Date != nil && strings.TrimSpace(*i.Date) == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validateTransactionAmount checks amount after rounding to cents, the
// precision it is stored with.
func validateTransactionAmount(amount decimal.Decimal) []domain.FieldError {
	n, err := domain.NormalizeAmount(amount)
	switch {
	case err != nil:
		return []domain.FieldError{{Field: "amount", Message: "out of range"}}
	case !n.IsPositive():
		return []domain.FieldError{{Field: "amount", Message: "must be positive"}}
	}
	return nil
}

func (i UpdateTransactionInput) params() domain.TransactionUpdateParams {
	var amount *decimal.Decimal
	if i.Amount != nil {
		n := i.Amount.Round(2)
		amount = &n
	}
	return domain.TransactionUpdateParams{
		Type:        i.Type,
		Amount:      amount,
		Category:    i.Category,
		Section:     i.Section,
		Description: i.Description,
		Date:        i.Date,
		IsRecurring: i.IsRecurring,
	}
}
