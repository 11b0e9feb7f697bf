package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/anagraph/anagraph/pkg/pipeline"
)

// redisEnvVar overrides the configured redis address when set.
const redisEnvVar = "ANAGRAPH_REDIS"

// Config holds user preferences loaded from the config file
// (~/.config/anagraph/config.toml by default). All fields are optional;
// zero values fall back to pipeline defaults.
type Config struct {
	// Budget is the per-component search budget as a duration string
	// (e.g., "10s", "500ms").
	Budget string `toml:"budget"`

	// Dict is the default dictionary path for the scan command.
	Dict string `toml:"dict"`

	// Ordering is the default solver vertex ordering.
	Ordering string `toml:"ordering"`

	// Redis configures the shared cache backend.
	Redis RedisConfig `toml:"redis"`
}

// RedisConfig configures the optional redis cache backend.
type RedisConfig struct {
	Addr string `toml:"addr"`
}

// ConfigPath returns the path of the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadConfigOrDefault loads the config file from the standard location,
// returning an empty config if the file does not exist or cannot be read.
// A broken config file should not take the whole CLI down; commands that
// need a specific value will surface the problem when they use it.
func LoadConfigOrDefault() *Config {
	path, err := ConfigPath()
	if err != nil {
		return &Config{}
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return &Config{}
	}
	return cfg
}

// validate checks that set fields parse.
func (c *Config) validate() error {
	if c.Budget != "" {
		if _, err := time.ParseDuration(c.Budget); err != nil {
			return fmt.Errorf("invalid budget %q: %w", c.Budget, err)
		}
	}
	if c.Ordering != "" {
		if err := pipeline.ValidateOrdering(c.Ordering); err != nil {
			return err
		}
	}
	return nil
}

// BudgetDuration returns the configured budget, or fallback when unset.
func (c *Config) BudgetDuration(fallback time.Duration) time.Duration {
	if c.Budget == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.Budget)
	if err != nil {
		return fallback
	}
	return d
}

// RedisAddr returns the redis cache address, preferring the ANAGRAPH_REDIS
// environment variable over the config file.
func (c *Config) RedisAddr() string {
	if addr := os.Getenv(redisEnvVar); addr != "" {
		return addr
	}
	return c.Redis.Addr
}
