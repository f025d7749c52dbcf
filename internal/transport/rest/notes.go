package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/internal/service/note"
)

type noteService interface {
	List(ctx context.Context, category string) ([]*domain.Note, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	Create(ctx context.Context, input note.CreateInput) (*domain.Note, error)
	Update(ctx context.Context, input note.UpdateInput) (*domain.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NoteHandler serves /notes.
type NoteHandler struct {
	notes noteService
	log   *slog.Logger
}

// NewNoteHandler creates a NoteHandler.
func NewNoteHandler(notes noteService, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{notes: notes, log: logger.With("handler", "notes")}
}

type noteRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Categories *[]string `json:"categories"`
	IsFavorite *bool     `json:"is_favorite"`
}

// List handles GET /notes?category=.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.notes.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(notes, toNoteResponse))
}

// Get handles GET /notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	n, err := h.notes.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Create handles POST /notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	n, err := h.notes.Create(r.Context(), note.CreateInput{
		Title:      deref(req.Title),
		Content:    deref(req.Content),
		Categories: deref(req.Categories),
		IsFavorite: deref(req.IsFavorite),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNoteResponse(n))
}

// Update handles PUT /notes/{id}. Categories are replaced when present.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req noteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := note.UpdateInput{
		ID:         id,
		Title:      req.Title,
		Content:    req.Content,
		IsFavorite: req.IsFavorite,
	}
	if req.Categories != nil {
		input.Categories = append([]string{}, (*req.Categories)...)
	}

	n, err := h.notes.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteResponse(n))
}

// Delete handles DELETE /notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.notes.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Note deleted"})
}
