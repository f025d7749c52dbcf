package task

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

const (
	maxTitleLength = 200
	maxTags        = 20
)

// CreateInput holds a new task. Zero Category and Priority take defaults.
type CreateInput struct {
	Title         string
	Description   string
	Category      domain.TaskCategory
	Priority      int
	EstimatedTime *int
	DueDate       *string
	Tags          []string
}

func (i CreateInput) withDefaults() CreateInput {
	i.Title = strings.TrimSpace(i.Title)
	if i.Category == "" {
		i.Category = domain.TaskCategoryDaily
	}
	if i.Priority == 0 {
		i.Priority = domain.MinTaskPriority
	}
	i.Tags = normalizeTags(i.Tags)
	return i
}

// Validate validates the input after defaults are applied.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validateCommon(&i.Category, &i.Priority, i.EstimatedTime, i.Tags)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial task update.
type UpdateInput struct {
	ID            uuid.UUID
	Title         *string
	Description   *string
	Category      *domain.TaskCategory
	Priority      *int
	Status        *domain.TaskStatus
	EstimatedTime *int
	DueDate       *string
	Tags          []string
}

// Validate validates the input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.Title != nil {
		errs = append(errs, validateTitle(strings.TrimSpace(*i.Title))...)
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, in_progress or completed"})
	}
	errs = append(errs, validateCommon(i.Category, i.Priority, i.EstimatedTime, i.Tags)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateInput) params() domain.TaskUpdateParams {
	p := domain.TaskUpdateParams{
		Description:   i.Description,
		Category:      i.Category,
		Priority:      i.Priority,
		Status:        i.Status,
		EstimatedTime: i.EstimatedTime,
		DueDate:       i.DueDate,
	}
	if i.Title != nil {
		t := strings.TrimSpace(*i.Title)
		p.Title = &t
	}
	if i.Tags != nil {
		p.Tags = normalizeTags(i.Tags)
	}
	return p
}

func validateTitle(title string) []domain.FieldError {
	switch {
	case title == "":
		return []domain.FieldError{{Field: "title", Message: "required"}}
	case utf8.RuneCountInString(title) > maxTitleLength:
		return []domain.FieldError{{Field: "title", Message: "too long"}}
	}
	return nil
}

func validateCommon(category *domain.TaskCategory, priority, estimated *int, tags []string) []domain.FieldError {
	var errs []domain.FieldError
	if category != nil && !category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be daily, weekly or high_priority"})
	}
	if priority != nil && (*priority < domain.MinTaskPriority || *priority > domain.MaxTaskPriority) {
		errs = append(errs, domain.FieldError{
			Field:   "priority",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinTaskPriority, domain.MaxTaskPriority),
		})
	}
	if estimated != nil && *estimated < 0 {
		errs = append(errs, domain.FieldError{Field: "estimated_time", Message: "must not be negative"})
	}
	if len(tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: fmt.Sprintf("at most %d tags", maxTags)})
	}
	return errs
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
