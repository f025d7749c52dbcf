package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/domain"
	"github.com/lifeos/lifeos-backend/internal/service/task"
)

type taskService interface {
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, input task.CreateInput) (*domain.Task, error)
	Update(ctx context.Context, input task.UpdateInput) (*domain.Task, error)
	Complete(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskHandler serves /tasks.
type TaskHandler struct {
	tasks taskService
	log   *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(tasks taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{tasks: tasks, log: logger.With("handler", "tasks")}
}

type taskRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Category      *string   `json:"category"`
	Priority      *int      `json:"priority"`
	Status        *string   `json:"status"`
	EstimatedTime *int      `json:"estimated_time"`
	DueDate       *string   `json:"due_date"`
	Tags          *[]string `json:"tags"`
}

func (req taskRequest) tags() []string {
	if req.Tags == nil {
		return nil
	}
	if *req.Tags == nil {
		return []string{}
	}
	return *req.Tags
}

// List handles GET /tasks?category=&status=.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter domain.TaskFilter
	q := r.URL.Query()
	if v := q.Get("category"); v != "" {
		c := domain.TaskCategory(v)
		filter.Category = &c
	}
	if v := q.Get("status"); v != "" {
		s := domain.TaskStatus(v)
		filter.Status = &s
	}

	tasks, err := h.tasks.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(tasks, toTaskResponse))
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.tasks.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.tasks.Create(r.Context(), task.CreateInput{
		Title:         deref(req.Title),
		Description:   deref(req.Description),
		Category:      domain.TaskCategory(deref(req.Category)),
		Priority:      deref(req.Priority),
		EstimatedTime: req.EstimatedTime,
		DueDate:       req.DueDate,
		Tags:          req.tags(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(t))
}

// Update handles PUT /tasks/{id}.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req taskRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := task.UpdateInput{
		ID:            id,
		Title:         req.Title,
		Description:   req.Description,
		Priority:      req.Priority,
		EstimatedTime: req.EstimatedTime,
		DueDate:       req.DueDate,
		Tags:          req.tags(),
	}
	if req.Category != nil {
		c := domain.TaskCategory(*req.Category)
		input.Category = &c
	}
	if req.Status != nil {
		s := domain.TaskStatus(*req.Status)
		input.Status = &s
	}

	t, err := h.tasks.Update(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// Complete handles PATCH /tasks/{id}/complete.
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	t, err := h.tasks.Complete(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.tasks.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Task deleted"})
}
