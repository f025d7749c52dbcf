package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.Enabled && (c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.APIPerMinute <= 0) {
		return fmt.Errorf("rate_limit: per-minute limits must be > 0")
	}

	if err := c.Budget.validate(); err != nil {
		return fmt.Errorf("budget: %w", err)
	}

	if err := c.Gamification.validate(); err != nil {
		return fmt.Errorf("gamification: %w", err)
	}

	return nil
}

func (b *BudgetConfig) validate() error {
	if b.ImportMaxBytes <= 0 {
		return fmt.Errorf("import_max_bytes must be > 0 (got %d)", b.ImportMaxBytes)
	}
	if b.ImportChunkSize < 1 || b.ImportChunkSize > 1000 {
		return fmt.Errorf("import_chunk_size must be in [1, 1000] (got %d)", b.ImportChunkSize)
	}
	if b.ExportMaxRows <= 0 {
		return fmt.Errorf("export_max_rows must be > 0 (got %d)", b.ExportMaxRows)
	}

	b.ImportPolicy = strings.ToLower(strings.TrimSpace(b.ImportPolicy))
	if b.ImportPolicy != ImportPolicySkip && b.ImportPolicy != ImportPolicyAtomic {
		return fmt.Errorf("import_policy must be %q or %q (got %q)", ImportPolicySkip, ImportPolicyAtomic, b.ImportPolicy)
	}
	return nil
}

func (g *GamificationConfig) validate() error {
	for name, v := range map[string]int{
		"task_create_xp":    g.TaskCreateXP,
		"task_complete_xp":  g.TaskCompleteXP,
		"task_priority_xp":  g.TaskPriorityXP,
		"note_create_xp":    g.NoteCreateXP,
		"focus_complete_xp": g.FocusCompleteXP,
	} {
		if v < 0 {
			return fmt.Errorf("%s must be >= 0 (got %d)", name, v)
		}
	}

	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	g.Location = loc
	return nil
}
