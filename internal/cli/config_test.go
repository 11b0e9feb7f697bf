package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
budget = "5s"
dict = "/usr/share/dict/words"
ordering = "insertion"

[redis]
addr = "localhost:6379"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if got := cfg.BudgetDuration(time.Minute); got != 5*time.Second {
		t.Errorf("BudgetDuration() = %v, want 5s", got)
	}
	if cfg.Dict != "/usr/share/dict/words" {
		t.Errorf("Dict = %q", cfg.Dict)
	}
	if cfg.Ordering != "insertion" {
		t.Errorf("Ordering = %q", cfg.Ordering)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis.Addr = %q", cfg.Redis.Addr)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad budget", content: `budget = "fast"`},
		{name: "bad ordering", content: `ordering = "magic"`},
		{name: "bad toml", content: `budget = `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Error("LoadConfig() should fail")
			}
		})
	}
}

func TestLoadConfigOrDefaultMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := LoadConfigOrDefault()
	if cfg == nil {
		t.Fatal("LoadConfigOrDefault() returned nil")
	}
	if cfg.Budget != "" || cfg.Dict != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestBudgetDurationFallback(t *testing.T) {
	cfg := &Config{}
	if got := cfg.BudgetDuration(10 * time.Second); got != 10*time.Second {
		t.Errorf("BudgetDuration() = %v, want fallback", got)
	}
}

func TestRedisAddrEnvOverride(t *testing.T) {
	cfg := &Config{Redis: RedisConfig{Addr: "config:6379"}}

	t.Setenv(redisEnvVar, "")
	os.Unsetenv(redisEnvVar)
	if got := cfg.RedisAddr(); got != "config:6379" {
		t.Errorf("RedisAddr() = %q, want config value", got)
	}

	t.Setenv(redisEnvVar, "env:6379")
	if got := cfg.RedisAddr(); got != "env:6379" {
		t.Errorf("RedisAddr() = %q, want env override", got)
	}
}
