// Package config reads settings from the environment, after loading a
// .env file if there is one. Everything has a default, and Validate
// fails fast on nonsense.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all settings for the commands.
type Config struct {
	Logging LoggingConfig
	Server  ServerConfig
	Workers int // CIF_WORKERS, goroutines for mapping chains. 1 is serial
}

type LoggingConfig struct {
	Level  string // CIF_LOG_LEVEL, default info
	Format string // CIF_LOG_FORMAT, text or json
}

// ServerConfig is only used by cifserve.
type ServerConfig struct {
	Addr            string        // CIFSERVE_ADDR, default :8080
	MaxBody         int64         // CIFSERVE_MAX_BODY bytes, default 64 MB
	Timeout         time.Duration // CIFSERVE_TIMEOUT per request, default 60s
	ShutdownTimeout time.Duration // CIFSERVE_SHUTDOWN_TIMEOUT, default 10s
}

// Load reads .env files (default ".env") if they exist, then the
// environment. Values already in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: loading %v: %w", f, err)
		}
	}
	var err error
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  getenv("CIF_LOG_LEVEL", "info"),
			Format: getenv("CIF_LOG_FORMAT", "text"),
		},
		Server: ServerConfig{Addr: getenv("CIFSERVE_ADDR", ":8080")},
	}
	intEnv := func(key string, dflt int64) int64 {
		s := getenv(key, "")
		if s == "" || err != nil {
			return dflt
		}
		i, e := strconv.ParseInt(s, 10, 64)
		if e != nil {
			err = fmt.Errorf("config: %s=%q: %w", key, s, e)
		}
		return i
	}
	durEnv := func(key string, dflt time.Duration) time.Duration {
		s := getenv(key, "")
		if s == "" || err != nil {
			return dflt
		}
		d, e := time.ParseDuration(s)
		if e != nil {
			err = fmt.Errorf("config: %s=%q: %w", key, s, e)
		}
		return d
	}
	cfg.Workers = int(intEnv("CIF_WORKERS", 1))
	cfg.Server.MaxBody = intEnv("CIFSERVE_MAX_BODY", 64<<20)
	cfg.Server.Timeout = durEnv("CIFSERVE_TIMEOUT", 60*time.Second)
	cfg.Server.ShutdownTimeout = durEnv("CIFSERVE_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getenv(key, dflt string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return dflt
}

// Validate checks the values make sense.
func (c *Config) Validate() error {
	var errs []error
	switch c.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("CIF_LOG_FORMAT must be text or json, not %q", c.Logging.Format))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("CIF_WORKERS must be at least 1, not %d", c.Workers))
	}
	if c.Server.MaxBody < 1 {
		errs = append(errs, fmt.Errorf("CIFSERVE_MAX_BODY must be positive, not %d", c.Server.MaxBody))
	}
	if c.Server.Timeout <= 0 {
		errs = append(errs, errors.New("CIFSERVE_TIMEOUT must be positive"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}
