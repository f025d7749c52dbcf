package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/lifeos/lifeos-backend/internal/domain"
)

type dashboardService interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	Activity(ctx context.Context, days int) ([]domain.DailyActivity, error)
	Calendar(ctx context.Context, days int) (domain.ContributionCalendar, error)
}

type gamificationService interface {
	LevelInfo(ctx context.Context) (domain.LevelInfo, error)
	ListAchievements(ctx context.Context) ([]domain.AchievementProgress, error)
}

// DashboardHandler serves the dashboard, level and achievement endpoints.
type DashboardHandler struct {
	dashboard dashboardService
	game      gamificationService
	log       *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboard dashboardService, game gamificationService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		game:      game,
		log:       logger.With("handler", "dashboard"),
	}
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboard.Stats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardStatsResponse(stats))
}

// Activity handles GET /dashboard/activity?days=N.
func (h *DashboardHandler) Activity(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	activity, err := h.dashboard.Activity(r.Context(), days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(activity, toActivityResponse))
}

// Calendar handles GET /dashboard/calendar?days=N.
func (h *DashboardHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cal, err := h.dashboard.Calendar(r.Context(), days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCalendarResponse(cal))
}

// LevelInfo handles GET /gamification.
func (h *DashboardHandler) LevelInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.game.LevelInfo(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLevelInfoResponse(info))
}

// Achievements handles GET /achievements.
func (h *DashboardHandler) Achievements(w http.ResponseWriter, r *http.Request) {
	list, err := h.game.ListAchievements(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toAchievementResponse))
}
