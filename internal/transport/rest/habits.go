package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/internal/service/habit"
)

type habitService interface {
	List(ctx context.Context) ([]*domain.Habit, error)
	Create(ctx context.Context, input habit.CreateInput) (*domain.Habit, error)
	Update(ctx context.Context, input habit.UpdateInput) (*domain.Habit, error)
	Reorder(ctx context.Context, ids []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// HabitHandler serves /habits.
type HabitHandler struct {
	habits habitService
	log    *slog.Logger
}

// NewHabitHandler creates a HabitHandler.
func NewHabitHandler(habits habitService, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{habits: habits, log: logger.With("handler", "habits")}
}

type habitRequest struct {
	Title       *string `json:"title"`
	Icon        *string `json:"icon"`
	Order       *int    `json:"order"`
	IsCompleted *bool   `json:"is_completed"`
}

type reorderRequest struct {
	HabitIDs []uuid.UUID `json:"habit_ids"`
}

// List handles GET /habits.
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	habits, err := h.habits.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(habits, toHabitResponse))
}

// Create handles POST /habits.
func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req habitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.habits.Create(r.Context(), habit.CreateInput{
		Title:    deref(req.Title),
		Icon:     deref(req.Icon),
		Position: req.Order,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHabitResponse(created))
}

// Update handles PUT /habits/{id}.
func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req habitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.habits.Update(r.Context(), habit.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Icon:        req.Icon,
		Position:    req.Order,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHabitResponse(updated))
}

// Reorder handles PUT /habits/reorder.
func (h *HabitHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.habits.Reorder(r.Context(), req.HabitIDs); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Habits reordered"})
}

// Delete handles DELETE /habits/{id}.
func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.habits.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Habit deleted"})
}
