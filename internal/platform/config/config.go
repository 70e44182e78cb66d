package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string

	// PostgresDSN switches the verification registry to the postgres
	// adapter when set; empty keeps the in-memory store.
	PostgresDSN string

	// RedisURL switches the permission cache to redis when set.
	RedisURL string

	// SQLitePath switches the notification hub to the embedded sqlite
	// store when set.
	SQLitePath string

	// ExpirySweepInterval is how often the worker runs the deadline sweep.
	ExpirySweepInterval time.Duration
}

func Load() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("service_name", "crewdesk")
	v.SetDefault("http_port", "8080")
	v.SetDefault("postgres_dsn", "")
	v.SetDefault("redis_url", "")
	v.SetDefault("sqlite_path", "")
	v.SetDefault("expiry_sweep_interval", time.Minute)

	cfg := Config{
		ServiceName:         v.GetString("service_name"),
		HTTPPort:            v.GetString("http_port"),
		PostgresDSN:         v.GetString("postgres_dsn"),
		RedisURL:            v.GetString("redis_url"),
		SQLitePath:          v.GetString("sqlite_path"),
		ExpirySweepInterval: v.GetDuration("expiry_sweep_interval"),
	}
	if cfg.ExpirySweepInterval <= 0 {
		cfg.ExpirySweepInterval = time.Minute
	}
	return cfg, nil
}
