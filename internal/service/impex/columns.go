package impex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

type column int

const (
	colNone column = iota
	colDate
	colDescription
	colCredit
	colDebit
	colAmount
)

var headerSynonyms = map[string]column{
	"date":        colDate,
	"description": colDescription,
	"source":      colDescription,
	"memo":        colDescription,
	"details":     colDescription,
	"payee":       colDescription,
	"narrative":   colDescription,
	"credit":      colCredit,
	"income":      colCredit,
	"deposit":     colCredit,
	"in":          colCredit,
	"debit":       colDebit,
	"expense":     colDebit,
	"withdrawal":  colDebit,
	"out":         colDebit,
	"amount":      colAmount,
	"value":       colAmount,
	"sum":         colAmount,
}

// layout maps logical columns to field indexes. -1 means absent.
type layout struct {
	date, description, credit, debit, amount int
	width                                    int
}

// parseHeader builds the layout from a header record. The first column
// matching a synonym wins.
func parseHeader(fields []string) (layout, error) {
	l := layout{date: -1, description: -1, credit: -1, debit: -1, amount: -1, width: len(fields)}
	set := func(dst *int, i int) {
		if *dst < 0 {
			*dst = i
		}
	}

	for i, f := range fields {
		switch headerSynonyms[strings.ToLower(strings.TrimSpace(f))] {
		case colDate:
			set(&l.date, i)
		case colDescription:
			set(&l.description, i)
		case colCredit:
			set(&l.credit, i)
		case colDebit:
			set(&l.debit, i)
		case colAmount:
			set(&l.amount, i)
		}
	}

	if l.credit >= 0 || l.debit >= 0 {
		l.amount = -1
	}
	if l.date < 0 && l.description < 0 && l.credit < 0 && l.debit < 0 && l.amount < 0 {
		return layout{}, domain.NewImportError("no recognised columns")
	}
	return l, nil
}

func isBlankRecord(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// parseRow converts a data record into a row. The returned reason is
// non-empty when the record is rejected.
func (l layout) parseRow(fields []string, strict bool) (domain.Row, string) {
	for i := l.width; i < len(fields); i++ {
		if strings.TrimSpace(fields[i]) != "" {
			return domain.Row{}, "more columns than the header"
		}
	}

	row := domain.Row{
		Date:        field(fields, l.date),
		Description: field(fields, l.description),
		Credit:      decimal.Zero,
		Debit:       decimal.Zero,
	}

	amount := func(name string, idx int) (decimal.Decimal, string) {
		raw := field(fields, idx)
		d, err := domain.CoerceAmount(raw, strict)
		switch {
		case errors.Is(err, domain.ErrAmountOutOfRange):
			return decimal.Zero, fmt.Sprintf("%s %q out of range", name, raw)
		case err != nil:
			return decimal.Zero, fmt.Sprintf("invalid %s %q", name, raw)
		}
		return d, ""
	}

	if l.amount >= 0 {
		d, reason := amount("amount", l.amount)
		if reason != "" {
			return domain.Row{}, reason
		}
		if d.IsNegative() {
			row.Debit = d.Abs()
		} else {
			row.Credit = d
		}
		return row, ""
	}

	var reason string
	if row.Credit, reason = amount("credit", l.credit); reason != "" {
		return domain.Row{}, reason
	}
	if row.Debit, reason = amount("debit", l.debit); reason != "" {
		return domain.Row{}, reason
	}
	if strict && (row.Credit.IsNegative() || row.Debit.IsNegative()) {
		return domain.Row{}, "negative amount"
	}
	return row, ""
}
