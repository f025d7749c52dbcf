package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sheet is a named, user-owned ledger that holds rows.
type Sheet struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Position  int
	CreatedAt time.Time
}

// SheetUpdateParams holds optional fields for a partial sheet update.
type SheetUpdateParams struct {
	Name     *string
	Position *int
}

// Row is one ledger entry of a sheet. Credit and Debit are independent and
// may both be non-zero.
type Row struct {
	ID          uuid.UUID
	SheetID     uuid.UUID
	UserID      uuid.UUID
	Date        string
	Description string
	Credit      decimal.Decimal
	Debit       decimal.Decimal
	Position    int
	CreatedAt   time.Time
}

// RowUpdateParams holds optional fields for a partial row update.
// A nil field is left unchanged.
type RowUpdateParams struct {
	Date        *string
	Description *string
	Credit      *decimal.Decimal
	Debit       *decimal.Decimal
	Position    *int
}

// IsEmpty reports whether no field is set.
func (p RowUpdateParams) IsEmpty() bool {
	return p.Date == nil && p.Description == nil && p.Credit == nil && p.Debit == nil && p.Position == nil
}

// IsBlank reports whether the row carries no data at all.
func (r Row) IsBlank() bool {
	return strings.TrimSpace(r.Date) == "" &&
		strings.TrimSpace(r.Description) == "" &&
		r.Credit.IsZero() && r.Debit.IsZero()
}

// Totals holds the credit and debit sums of a sheet.
type Totals struct {
	Credit decimal.Decimal
	Debit  decimal.Decimal
}

// Net returns credit minus debit.
func (t Totals) Net() decimal.Decimal {
	return t.Credit.Sub(t.Debit)
}

// SumRows returns the credit and debit totals over rows.
func SumRows(rows []Row) Totals {
	t := Totals{Credit: decimal.Zero, Debit: decimal.Zero}
	for _, r := range rows {
		t.Credit = t.Credit.Add(r.Credit)
		t.Debit = t.Debit.Add(r.Debit)
	}
	return t
}

// RowSortKey names a column rows can be sorted by.
type RowSortKey string

const (
	RowSortNone        RowSortKey = ""
	RowSortDate        RowSortKey = "date"
	RowSortDescription RowSortKey = "description"
	RowSortCredit      RowSortKey = "credit"
	RowSortDebit       RowSortKey = "debit"
)

func (k RowSortKey) String() string { return string(k) }

func (k RowSortKey) IsValid() bool {
	switch k {
	case RowSortDate, RowSortDescription, RowSortCredit, RowSortDebit:
		return true
	}
	return false
}

// IsNumeric reports whether the key compares numerically.
func (k RowSortKey) IsNumeric() bool {
	return k == RowSortCredit || k == RowSortDebit
}

// ---------------------------------------------------------------------------
// Amount parsing
// ---------------------------------------------------------------------------

// ErrAmountOutOfRange is returned for amounts outside the storable range.
var ErrAmountOutOfRange = errors.New("amount out of range")

// maxAmount is the exclusive magnitude bound of numeric(14,2) columns.
var maxAmount = decimal.New(1, 12)

// NormalizeAmount rounds d to cents, half away from zero like PostgreSQL
// numeric casts, and rejects values whose magnitude reaches 10^12.
func NormalizeAmount(d decimal.Decimal) (decimal.Decimal, error) {
	d = d.Round(2)
	if d.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, ErrAmountOutOfRange
	}
	return d, nil
}

var amountReplacer = strings.NewReplacer(
	",", "", " ", "", "\u00a0", "", "$", "", "€", "", "£", "", "¥", "", "₽", "", "₹", "",
)

// ParseAmount parses a user-entered money amount. Thousands separators,
// currency symbols and whitespace are ignored, and accounting notation
// "(12.50)" is read as -12.50. An empty string parses as zero. The result
// is normalized with NormalizeAmount.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := amountReplacer.Replace(strings.TrimSpace(raw))
	if s == "" {
		return decimal.Zero, nil
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.TrimPrefix(s, "+")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", raw)
	}
	if negative {
		d = d.Neg()
	}
	n, err := NormalizeAmount(d)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q: %w", raw, err)
	}
	return n, nil
}

// CoerceAmount parses raw like ParseAmount. In lenient mode an unparseable
// value becomes zero; in strict mode it is returned as an error. An amount
// out of range is an error in both modes.
func CoerceAmount(raw string, strict bool) (decimal.Decimal, error) {
	d, err := ParseAmount(raw)
	if err != nil {
		if strict || errors.Is(err, ErrAmountOutOfRange) {
			return decimal.Zero, err
		}
		return decimal.Zero, nil
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// Legacy transactions
// ---------------------------------------------------------------------------

// TransactionType distinguishes income from expense transactions.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) String() string { return string(t) }

func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// DefaultSection is the grouping tag given to transactions without one.
const DefaultSection = "Personal"

var transactionCategories = map[TransactionType][]string{
	TransactionIncome:  {"salary", "freelance", "investment", "gift", "savings", "other"},
	TransactionExpense: {"food", "transport", "shopping", "entertainment", "bills", "healthcare", "education", "other"},
}

// IsValidCategory reports whether category is allowed for the transaction type.
func (t TransactionType) IsValidCategory(category string) bool {
	for _, c := range transactionCategories[t] {
		if c == category {
			return true
		}
	}
	return false
}

// Transaction is the legacy single-amount ledger entry.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        TransactionType
	Amount      decimal.Decimal
	Category    string
	Section     string
	Description string
	Date        string
	IsRecurring bool
	CreatedAt   time.Time
}

// TransactionUpdateParams holds optional fields for a partial transaction update.
type TransactionUpdateParams struct {
	Type        *TransactionType
	Amount      *decimal.Decimal
	Category    *string
	Section     *string
	Description *string
	Date        *string
	IsRecurring *bool
}

// MonthlyTotal aggregates income and expenses of one calendar month ("2024-01").
type MonthlyTotal struct {
	Month    string
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// BudgetSummary is the computed view served by the legacy summary endpoint.
type BudgetSummary struct {
	TotalIncome         decimal.Decimal
	TotalExpenses       decimal.Decimal
	Balance             decimal.Decimal
	InitialBalance      decimal.Decimal
	IsInitialBalanceSet bool
	ExpenseByCategory   map[string]decimal.Decimal
	MonthlyData         []MonthlyTotal
}

// TransactionBucket is the total of transactions sharing a type, category
// and month.
type TransactionBucket struct {
	Type     TransactionType
	Category string
	Month    string
	Total    decimal.Decimal
}

// NewBudgetSummary folds transaction buckets into the summary view.
// Balance is the initial balance plus income minus expenses. Months are
// returned in ascending order; buckets without a month are left out of
// MonthlyData but still count towards the totals.
func NewBudgetSummary(buckets []TransactionBucket, initial decimal.Decimal, initialSet bool) BudgetSummary {
	s := BudgetSummary{
		TotalIncome:         decimal.Zero,
		TotalExpenses:       decimal.Zero,
		InitialBalance:      initial,
		IsInitialBalanceSet: initialSet,
		ExpenseByCategory:   map[string]decimal.Decimal{},
		MonthlyData:         []MonthlyTotal{},
	}

	monthIdx := map[string]int{}
	for _, b := range buckets {
		var m *MonthlyTotal
		if b.Month != "" {
			i, ok := monthIdx[b.Month]
			if !ok {
				i = len(s.MonthlyData)
				monthIdx[b.Month] = i
				s.MonthlyData = append(s.MonthlyData, MonthlyTotal{Month: b.Month, Income: decimal.Zero, Expenses: decimal.Zero})
			}
			m = &s.MonthlyData[i]
		}

		switch b.Type {
		case TransactionIncome:
			s.TotalIncome = s.TotalIncome.Add(b.Total)
			if m != nil {
				m.Income = m.Income.Add(b.Total)
			}
		case TransactionExpense:
			s.TotalExpenses = s.TotalExpenses.Add(b.Total)
			s.ExpenseByCategory[b.Category] = s.ExpenseByCategory[b.Category].Add(b.Total)
			if m != nil {
				m.Expenses = m.Expenses.Add(b.Total)
			}
		}
	}

	slices.SortFunc(s.MonthlyData, func(a, b MonthlyTotal) int { return strings.Compare(a.Month, b.Month) })
	s.Balance = initial.Add(s.TotalIncome).Sub(s.TotalExpenses)
	return s
}
