package user

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

const (
	maxLabels      = 50
	maxLabelLength = 50
)

// UpdateLabelsInput holds the replacement set of custom note labels.
type UpdateLabelsInput struct {
	Labels []string
}

// Normalize trims labels, drops empty ones and removes duplicates while
// keeping first-seen order.
func (i UpdateLabelsInput) Normalize() UpdateLabelsInput {
	seen := make(map[string]struct{}, len(i.Labels))
	out := make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return UpdateLabelsInput{Labels: out}
}

// Validate validates the normalized input.
func (i UpdateLabelsInput) Validate() error {
	var errs []domain.FieldError

	if len(i.Labels) > maxLabels {
		errs = append(errs, domain.FieldError{Field: "labels", Message: fmt.Sprintf("at most %d labels", maxLabels)})
	}
	for idx, l := range i.Labels {
		if utf8.RuneCountInString(l) > maxLabelLength {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("labels[%d]", idx), Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetInitialBalanceInput holds the starting balance of the budget.
type SetInitialBalanceInput struct {
	Amount decimal.Decimal
}
