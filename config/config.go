package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds runtime settings for the journal client.
//
// Fields:
//   - BaseURL: scheme://host[:port] of the journal API; a trailing slash
//     is tolerated.
//   - RequestTimeout: per-request deadline enforced by the transport.
//   - ResourceTimeout: idle-connection reuse window of the transport.
//   - TokenLease: lifetime stamped on freshly received tokens.
//   - LogLevel: minimum level for the logging backend.
//
// RequestTimeout and ResourceTimeout are transport knobs, not dispatcher
// logic; how exactly they interact is the transport's concern.
type Config struct {
	BaseURL         string        `env:"TRIPKEEPER_BASE_URL, default=http://localhost:8000"`
	RequestTimeout  time.Duration `env:"TRIPKEEPER_REQUEST_TIMEOUT, default=30s"`
	ResourceTimeout time.Duration `env:"TRIPKEEPER_RESOURCE_TIMEOUT, default=60s"`
	TokenLease      time.Duration `env:"TRIPKEEPER_TOKEN_LEASE, default=30m"`
	LogLevel        string        `env:"TRIPKEEPER_LOG_LEVEL, default=info"`
}

// Default returns the built-in defaults without consulting the
// environment.
func Default() *Config {
	return &Config{
		BaseURL:         "http://localhost:8000",
		RequestTimeout:  30 * time.Second,
		ResourceTimeout: 60 * time.Second,
		TokenLease:      30 * time.Minute,
		LogLevel:        "info",
	}
}

// Load constructs a Config from environment variables, falling back to the
// defaults above for anything unset.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
