package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/config"
	"github.com/lifeos/lifeos-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Budget    *BudgetHandler
	Dashboard *DashboardHandler
	Tasks     *TaskHandler
	Notes     *NoteHandler
	Focus     *FocusHandler
	Habits    *HabitHandler
}

// RouterConfig holds the cross-cutting dependencies of the router.
type RouterConfig struct {
	Logger    *slog.Logger
	Tokens    tokenValidator
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	// Limiter may be nil, which disables rate limiting.
	Limiter *middleware.RateLimiter
}

func (c RouterConfig) limit(scope string, perMinute int) middleware.Middleware {
	if c.Limiter == nil || perMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return c.Limiter.Limit(scope, perMinute)
}

// NewRouter builds the HTTP API.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	// Recovery sits outside RequestID so a recovered 500 still carries the
	// request ID; Auth runs last so the access log sees the user.
	r.Use(
		chimw.RealIP,
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(cfg.Tokens),
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(cfg.limit("auth", cfg.RateLimit.AuthPerMinute))
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)
		})
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth, cfg.limit("api", cfg.RateLimit.APIPerMinute))
			r.Get("/me", h.Auth.Me)
			r.Put("/labels", h.Auth.UpdateLabels)
			r.Put("/balance", h.Auth.SetInitialBalance)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth, cfg.limit("api", cfg.RateLimit.APIPerMinute))

		r.Route("/budget", func(r chi.Router) {
			r.Get("/sheets", h.Budget.ListSheets)
			r.Post("/sheets", h.Budget.CreateSheet)
			r.Put("/sheets/{id}", h.Budget.UpdateSheet)
			r.Delete("/sheets/{id}", h.Budget.DeleteSheet)
			r.Get("/sheets/{id}/rows", h.Budget.ListRows)
			r.Post("/sheets/{id}/rows", h.Budget.AddRow)
			r.Get("/sheets/{id}/totals", h.Budget.Totals)
			r.Post("/sheets/{id}/import", h.Budget.Import)
			r.Get("/sheets/{id}/export", h.Budget.Export)
			r.Put("/rows/{id}", h.Budget.UpdateRow)
			r.Delete("/rows/{id}", h.Budget.DeleteRow)

			r.Get("/transactions", h.Budget.ListTransactions)
			r.Post("/transactions", h.Budget.CreateTransaction)
			r.Put("/transactions/{id}", h.Budget.UpdateTransaction)
			r.Delete("/transactions/{id}", h.Budget.DeleteTransaction)
			r.Get("/summary", h.Budget.Summary)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/stats", h.Dashboard.Stats)
			r.Get("/activity", h.Dashboard.Activity)
			r.Get("/calendar", h.Dashboard.Calendar)
		})
		r.Get("/gamification", h.Dashboard.LevelInfo)
		r.Get("/achievements", h.Dashboard.Achievements)

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.Tasks.List)
			r.Post("/", h.Tasks.Create)
			r.Get("/{id}", h.Tasks.Get)
			r.Put("/{id}", h.Tasks.Update)
			r.Delete("/{id}", h.Tasks.Delete)
			r.Patch("/{id}/complete", h.Tasks.Complete)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.Notes.List)
			r.Post("/", h.Notes.Create)
			r.Get("/{id}", h.Notes.Get)
			r.Put("/{id}", h.Notes.Update)
			r.Delete("/{id}", h.Notes.Delete)
		})

		r.Route("/focus", func(r chi.Router) {
			r.Post("/start", h.Focus.Start)
			r.Patch("/{id}/complete", h.Focus.Complete)
			r.Get("/sessions", h.Focus.Sessions)
			r.Get("/stats", h.Focus.Stats)
		})

		r.Route("/habits", func(r chi.Router) {
			r.Get("/", h.Habits.List)
			r.Post("/", h.Habits.Create)
			r.Put("/reorder", h.Habits.Reorder)
			r.Put("/{id}", h.Habits.Update)
			r.Delete("/{id}", h.Habits.Delete)
		})
	})

	return r
}
