package config

import (
	"net"
	"strconv"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	RateLimit    RateLimitConfig    `yaml:"rate_limit"`
	Budget       BudgetConfig       `yaml:"budget"`
	Gamification GamificationConfig `yaml:"gamification"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// AuthConfig holds token and password hashing settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"lifeos"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE"  env-default:"10"`
	APIPerMinute    int           `yaml:"api_per_minute"   env:"RATE_LIMIT_API_PER_MINUTE"   env-default:"300"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// Import policies.
const (
	ImportPolicySkip   = "skip"
	ImportPolicyAtomic = "atomic"
)

// BudgetConfig holds ledger and import/export settings.
type BudgetConfig struct {
	ImportMaxBytes  int64  `yaml:"import_max_bytes"  env:"BUDGET_IMPORT_MAX_BYTES"  env-default:"5242880"`
	ImportChunkSize int    `yaml:"import_chunk_size" env:"BUDGET_IMPORT_CHUNK_SIZE" env-default:"100"`
	ImportPolicy    string `yaml:"import_policy"     env:"BUDGET_IMPORT_POLICY"     env-default:"skip"`
	StrictNumbers   bool   `yaml:"strict_numbers"    env:"BUDGET_STRICT_NUMBERS"    env-default:"false"`
	ExportMaxRows   int    `yaml:"export_max_rows"   env:"BUDGET_EXPORT_MAX_ROWS"   env-default:"50000"`
}

// GamificationConfig holds XP rewards and the day boundary timezone.
type GamificationConfig struct {
	Timezone        string `yaml:"timezone"          env:"GAMIFICATION_TIMEZONE"          env-default:"UTC"`
	TaskCreateXP    int    `yaml:"task_create_xp"    env:"GAMIFICATION_TASK_CREATE_XP"    env-default:"5"`
	TaskCompleteXP  int    `yaml:"task_complete_xp"  env:"GAMIFICATION_TASK_COMPLETE_XP"  env-default:"10"`
	TaskPriorityXP  int    `yaml:"task_priority_xp"  env:"GAMIFICATION_TASK_PRIORITY_XP"  env-default:"10"`
	NoteCreateXP    int    `yaml:"note_create_xp"    env:"GAMIFICATION_NOTE_CREATE_XP"    env-default:"5"`
	FocusCompleteXP int    `yaml:"focus_complete_xp" env:"GAMIFICATION_FOCUS_COMPLETE_XP" env-default:"25"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// TaskCompletionXP returns the XP awarded for completing a task of priority.
func (g GamificationConfig) TaskCompletionXP(priority int) int {
	return g.TaskCompleteXP + priority*g.TaskPriorityXP
}

// SplitList splits a comma-separated setting into trimmed, non-empty items.
func SplitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
