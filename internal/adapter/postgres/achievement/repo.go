// Package achievement stores which achievements a user has unlocked.
package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/lifeos/lifeos-backend/internal/adapter/postgres"
)

const table = "user_achievements"

type unlockRow struct {
	AchievementID string    `db:"achievement_id"`
	UnlockedAt    time.Time `db:"unlocked_at"`
}

// Repo provides unlocked achievement persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new achievement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListUnlocked returns the unlock time of every achievement the user holds,
// keyed by achievement id.
func (r *Repo) ListUnlocked(ctx context.Context, userID uuid.UUID) (map[string]time.Time, error) {
	query, args, err := postgres.Builder().
		Select("achievement_id", "unlocked_at").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []unlockRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}

	out := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		out[row.AchievementID] = row.UnlockedAt
	}
	return out, nil
}

// Unlock records an achievement for the user. It reports false when the
// achievement was already unlocked, leaving the original time in place.
func (r *Repo) Unlock(ctx context.Context, userID uuid.UUID, achievementID string, at time.Time) (bool, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "achievement_id", "unlocked_at").
		Values(userID, achievementID, at).
		Suffix("ON CONFLICT (user_id, achievement_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "user", userID)
	}
	return tag.RowsAffected() == 1, nil
}
