package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/internal/service/focus"
)

type focusService interface {
	Start(ctx context.Context, input focus.StartInput) (*domain.FocusSession, error)
	Complete(ctx context.Context, input focus.CompleteInput) (*domain.FocusSession, error)
	Sessions(ctx context.Context) ([]*domain.FocusSession, error)
	Stats(ctx context.Context) (domain.FocusStats, error)
}

// FocusHandler serves /focus.
type FocusHandler struct {
	focus focusService
	log   *slog.Logger
}

// NewFocusHandler creates a FocusHandler.
func NewFocusHandler(focus focusService, logger *slog.Logger) *FocusHandler {
	return &FocusHandler{focus: focus, log: logger.With("handler", "focus")}
}

type startFocusRequest struct {
	TaskID          *string `json:"task_id"`
	DurationPlanned int     `json:"duration_planned"`
}

type completeFocusRequest struct {
	DurationActual int  `json:"duration_actual"`
	Interrupted    bool `json:"interrupted"`
}

// Start handles POST /focus/start.
func (h *FocusHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req startFocusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := focus.StartInput{DurationPlanned: req.DurationPlanned}
	if req.TaskID != nil && *req.TaskID != "" {
		id, err := uuid.Parse(*req.TaskID)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("task_id", "invalid id"))
			return
		}
		input.TaskID = &id
	}

	session, err := h.focus.Start(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFocusSessionResponse(session))
}

// Complete handles PATCH /focus/{id}/complete.
func (h *FocusHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req completeFocusRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	session, err := h.focus.Complete(r.Context(), focus.CompleteInput{
		SessionID:      id,
		DurationActual: req.DurationActual,
		Interrupted:    req.Interrupted,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFocusSessionResponse(session))
}

// Sessions handles GET /focus/sessions.
func (h *FocusHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.focus.Sessions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(sessions, toFocusSessionResponse))
}

// Stats handles GET /focus/stats.
func (h *FocusHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.focus.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFocusStatsResponse(stats))
}
