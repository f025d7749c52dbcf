// Package note implements the user's notes.
package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/pkg/ctxutil"
)

const maxTitleLength = 200

type noteRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, userID uuid.UUID, category string) ([]*domain.Note, error)
	Create(ctx context.Context, n domain.Note) (*domain.Note, error)
	Update(ctx context.Context, userID, id uuid.UUID, params domain.NoteUpdateParams) (*domain.Note, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type gamifier interface {
	AwardXP(ctx context.Context, userID uuid.UUID, amount int, reason string) error
	RecordActivity(ctx context.Context, userID uuid.UUID, kind domain.ActivityKind, amount int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements note operations.
type Service struct {
	log   *slog.Logger
	notes noteRepo
	game  gamifier
	tx    txManager
	xp    config.GamificationConfig
}

// NewService creates a new note service.
func NewService(log *slog.Logger, notes noteRepo, game gamifier, tx txManager, xp config.GamificationConfig) *Service {
	return &Service{
		log:   log.With("service", "note"),
		notes: notes,
		game:  game,
		tx:    tx,
		xp:    xp,
	}
}

// CreateInput holds a new note. Empty Categories defaults to general.
type CreateInput struct {
	Title      string
	Content    string
	Categories []string
	IsFavorite bool
}

// UpdateInput holds a partial note update.
type UpdateInput struct {
	ID         uuid.UUID
	Title      *string
	Content    *string
	Categories []string
	IsFavorite *bool
}

func validateTitle(title string) error {
	switch {
	case title == "":
		return domain.NewValidationError("title", "required")
	case utf8.RuneCountInString(title) > maxTitleLength:
		return domain.NewValidationError("title", "too long")
	}
	return nil
}

func normalizeCategories(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// List returns the caller's notes, most recently updated first. A
// non-empty category narrows the result.
func (s *Service) List(ctx context.Context, category string) ([]*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	notes, err := s.notes.List(ctx, userID, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("note.List: %w", err)
	}
	return notes, nil
}

// Get returns one note.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notes.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("note.Get: %w", err)
	}
	return n, nil
}

// Create stores a note, awards XP and counts it in today's activity.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Note, error) {
	title := strings.TrimSpace(input.Title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	categories := normalizeCategories(input.Categories)
	if len(categories) == 0 {
		categories = []string{domain.DefaultNoteCategory}
	}

	var created *domain.Note
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.notes.Create(ctx, domain.Note{
			UserID:     userID,
			Title:      title,
			Content:    input.Content,
			Categories: categories,
			IsFavorite: input.IsFavorite,
		})
		if err != nil {
			return err
		}
		if err := s.game.AwardXP(ctx, userID, s.xp.NoteCreateXP, "note_created"); err != nil {
			return err
		}
		return s.game.RecordActivity(ctx, userID, domain.ActivityNotesCreated, 1)
	})
	if err != nil {
		return nil, fmt.Errorf("note.Create: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", created.ID.String()))

	return created, nil
}

// Update changes the supplied fields of a note.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Note, error) {
	params := domain.NoteUpdateParams{Content: input.Content, IsFavorite: input.IsFavorite}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
		params.Title = &title
	}
	if input.Categories != nil {
		params.Categories = normalizeCategories(input.Categories)
		if len(params.Categories) == 0 {
			params.Categories = []string{domain.DefaultNoteCategory}
		}
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.notes.Update(ctx, userID, input.ID, params)
	if err != nil {
		return nil, fmt.Errorf("note.Update: %w", err)
	}
	return n, nil
}

// Delete removes a note.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.notes.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("note.Delete: %w", err)
	}
	return nil
}
