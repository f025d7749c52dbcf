package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lifeos/lifeos-backend/internal/adapter/postgres"
	achievementrepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/achievement"
	activityrepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/activity"
	focusrepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/focus"
	habitrepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/habit"
	noterepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/note"
	rowrepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/row"
	sheetrepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/sheet"
	taskrepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/task"
	transactionrepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/transaction"
	userrepo "github.com/lifeos/lifeos-backend/internal/adapter/postgres/user"
	"github.com/lifeos/lifeos-backend/internal/auth"
	"github.com/lifeos/lifeos-backend/internal/config"
	authsvc "github.com/lifeos/lifeos-backend/internal/service/auth"
	"github.com/lifeos/lifeos-backend/internal/service/dashboard"
	"github.com/lifeos/lifeos-backend/internal/service/focus"
	"github.com/lifeos/lifeos-backend/internal/service/gamification"
	"github.com/lifeos/lifeos-backend/internal/service/habit"
	"github.com/lifeos/lifeos-backend/internal/service/impex"
	"github.com/lifeos/lifeos-backend/internal/service/ledger"
	"github.com/lifeos/lifeos-backend/internal/service/note"
	"github.com/lifeos/lifeos-backend/internal/service/task"
	"github.com/lifeos/lifeos-backend/internal/service/user"
)

// Services holds every application service, wired to PostgreSQL.
type Services struct {
	Auth         *authsvc.Service
	User         *user.Service
	Ledger       *ledger.Service
	Impex        *impex.Service
	Gamification *gamification.Service
	Dashboard    *dashboard.Service
	Task         *task.Service
	Note         *note.Service
	Focus        *focus.Service
	Habit        *habit.Service
}

// NewServices builds the repositories and services over pool.
func NewServices(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Services {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	sheets := sheetrepo.New(pool)
	rows := rowrepo.New(pool)
	transactions := transactionrepo.New(pool)
	activity := activityrepo.New(pool)
	achievements := achievementrepo.New(pool)
	tasks := taskrepo.New(pool)
	notes := noterepo.New(pool)
	sessions := focusrepo.New(pool)
	habits := habitrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	game := gamification.NewService(logger, users, activity, achievements, tasks, notes, sessions, txm, cfg.Gamification)

	return &Services{
		Auth:         authsvc.NewService(logger, users, jwtManager, cfg.Auth),
		User:         user.NewService(logger, users),
		Ledger:       ledger.NewService(logger, sheets, rows, transactions, users, game, txm, cfg.Budget),
		Impex:        impex.NewService(logger, sheets, rows, txm, cfg.Budget),
		Gamification: game,
		Dashboard:    dashboard.NewService(logger, users, tasks, sessions, notes, activity, cfg.Gamification),
		Task:         task.NewService(logger, tasks, game, txm, cfg.Gamification),
		Note:         note.NewService(logger, notes, game, txm, cfg.Gamification),
		Focus:        focus.NewService(logger, sessions, game, txm, cfg.Gamification),
		Habit:        habit.NewService(logger, habits, txm, cfg.Gamification),
	}
}
