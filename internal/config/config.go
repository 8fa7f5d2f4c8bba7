// Package config loads server and client settings from CHECKERS_*
// environment variables. Command-line flags take these values as their
// defaults, so a flag always wins over the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig configures cmd/checkers-server.
type ServerConfig struct {
	APIHost     string        `env:"CHECKERS_API_HOST"      envDefault:"localhost"`
	APIPort     int           `env:"CHECKERS_API_PORT"      envDefault:"8080"`
	Dev         bool          `env:"CHECKERS_DEV"           envDefault:"false"`
	StoragePath string        `env:"CHECKERS_STORAGE_PATH"`
	TokenSecret string        `env:"CHECKERS_TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"CHECKERS_TOKEN_TTL"     envDefault:"24h"`
	IdleTimeout time.Duration `env:"CHECKERS_IDLE_TIMEOUT"  envDefault:"30m"`
}

// ClientConfig configures the console binaries.
type ClientConfig struct {
	APIURL      string `env:"CHECKERS_API_URL"      envDefault:"http://localhost:8080"`
	HistoryFile string `env:"CHECKERS_HISTORY_FILE" envDefault:"/tmp/checkers_history"`
	Color       bool   `env:"CHECKERS_COLOR"        envDefault:"true"`
}

// Addr is the listen address of the API server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

// LoadServer parses ServerConfig from the environment.
func LoadServer() (ServerConfig, error) {
	var cfg ServerConfig
	if err := parse(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return ServerConfig{}, fmt.Errorf("parse env: CHECKERS_API_PORT %d out of range", cfg.APIPort)
	}
	return cfg, nil
}

// LoadClient parses ClientConfig from the environment.
func LoadClient() (ClientConfig, error) {
	var cfg ClientConfig
	if err := parse(&cfg); err != nil {
		return ClientConfig{}, err
	}
	return cfg, nil
}

func parse(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
