package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type StoreBackend string

const (
	StoreBackendRedis    StoreBackend = "redis"
	StoreBackendPostgres StoreBackend = "postgres"
	StoreBackendMemory   StoreBackend = "memory"
)

func (sb StoreBackend) IsValid() bool {
	switch sb {
	case StoreBackendRedis, StoreBackendPostgres, StoreBackendMemory:
		return true
	default:
		return false
	}
}

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// storage
	StoreBackend     StoreBackend `toml:"store_backend"`
	StoreCacheSizeMB int          `toml:"store_cache_size_mb"`
	RedisHost        string       `toml:"redis_host"`
	RedisPort        string       `toml:"redis_port"`
	PostgresHost     string       `toml:"postgres_host"`
	PostgresPort     string       `toml:"postgres_port"`
	PostgresDBName   string       `toml:"postgres_db_name"`
	PostgresUser     string       `toml:"postgres_user"`
	PostgresMaxConns int32        `toml:"postgres_max_conns"`
	// http
	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
	// auth
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config section for env [%s] missing", env)
	}

	return cfg, nil
}

// Load reads the TOML file and returns the section for the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	cfg.Environment = strings.ToLower(env)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return errors.New("port must be positive")
	}
	if c.StoreBackend == "" {
		c.StoreBackend = StoreBackendMemory
	}
	if !c.StoreBackend.IsValid() {
		return fmt.Errorf("unknown store backend: %s", c.StoreBackend)
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	return nil
}

// Secrets are never kept in the config file.
type Secrets struct {
	AdminUsername     string `env:"FITTRACK_ADMIN_USERNAME"`
	AdminPasswordHash string `env:"FITTRACK_ADMIN_PASSWORD_HASH"`
	RedisPassword     string `env:"FITTRACK_REDIS_PASS"`
	PostgresPassword  string `env:"FITTRACK_POSTGRES_PASS"`
	SentryDSN         string `env:"SENTRY_DSN"`
	HoneycombEnabled  bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey   string `env:"HONEYCOMB_API_KEY"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	return LoadSecretsFrom(ctx, envconfig.OsLookuper())
}

func LoadSecretsFrom(ctx context.Context, lookuper envconfig.Lookuper) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &s, nil
}
