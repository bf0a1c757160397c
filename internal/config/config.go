package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Admin     AdminConfig
	Recommend RecommendConfig
}

type AppConfig struct {
	AppName       string
	Environment   string
	HTTPPort      string
	MigrationsDir string
	RunMigrations bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

// AdminConfig protects the operator endpoints. Admin routes stay
// unregistered while PasswordHash or JWTSecret is empty.
type AdminConfig struct {
	PasswordHash   string
	JWTSecret      string
	TokenExpiresIn time.Duration
}

type RecommendConfig struct {
	TopN              int
	AggregateCacheTTL time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:       req("APP_NAME"),
		Environment:   req("APP_ENV"),
		HTTPPort:      req("HTTP_PORT"),
		MigrationsDir: opt("MIGRATIONS_DIR"),
		RunMigrations: optBool("RUN_MIGRATIONS", false),
	}

	cfg.Database = LoadDatabase()

	cfg.Admin = AdminConfig{
		PasswordHash:   os.Getenv("ADMIN_PASSWORD_HASH"),
		JWTSecret:      opt("ADMIN_JWT_SECRET"),
		TokenExpiresIn: optDuration("ADMIN_TOKEN_EXPIRES_IN", 30*time.Minute),
	}

	cfg.Recommend = RecommendConfig{
		TopN:              optInt("RECOMMEND_TOP_N", 5),
		AggregateCacheTTL: optDuration("AGGREGATE_CACHE_TTL", 10*time.Minute),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LoadDatabase reads only the database section. The loader binary uses this
// so it can run without the HTTP server's required keys.
func LoadDatabase() DatabaseConfig {
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	return DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 0),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}
}

// Enabled reports whether the operator endpoints can be served.
func (c AdminConfig) Enabled() bool {
	return c.PasswordHash != "" && c.JWTSecret != ""
}

func optInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func optBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

// optDuration accepts Go duration strings ("45s", "10m") and bare integers
// meaning seconds.
func optDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}
