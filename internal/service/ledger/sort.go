package ledger

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

// SortRows orders rows in place by key. Text columns use locale-aware
// collation and amounts compare numerically. Ties keep store order. An
// unknown key leaves rows untouched.
func SortRows(rows []*domain.Row, key domain.RowSortKey, desc bool) {
	if !key.IsValid() {
		return
	}

	var cmp func(a, b *domain.Row) int
	switch key {
	case domain.RowSortCredit:
		cmp = func(a, b *domain.Row) int { return a.Credit.Cmp(b.Credit) }
	case domain.RowSortDebit:
		cmp = func(a, b *domain.Row) int { return a.Debit.Cmp(b.Debit) }
	default:
		// A Collator keeps internal buffers and is not safe for concurrent use.
		c := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
		text := func(r *domain.Row) string {
			if key == domain.RowSortDate {
				return r.Date
			}
			return r.Description
		}
		cmp = func(a, b *domain.Row) int { return c.CompareString(text(a), text(b)) }
	}

	if desc {
		asc := cmp
		cmp = func(a, b *domain.Row) int { return asc(b, a) }
	}
	slices.SortStableFunc(rows, cmp)
}
