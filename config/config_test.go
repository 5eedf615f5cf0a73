package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/luca-patrignani/tens/domain/tens"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvVariant, EnvSeed, EnvLogLevel, EnvGames} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules.Variant != tens.Standard {
		t.Errorf("expected standard rules, got %q", cfg.Rules.Variant)
	}
	if cfg.Seed != "" {
		t.Errorf("expected no seed, got %q", cfg.Seed)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.Games != DefaultGames {
		t.Errorf("expected %d games, got %d", DefaultGames, cfg.Games)
	}
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvVariant, "Legacy")
	t.Setenv(EnvSeed, "abc")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvGames, "25")
	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules.Variant != tens.Legacy {
		t.Errorf("expected legacy rules, got %q", cfg.Rules.Variant)
	}
	if cfg.Seed != "abc" {
		t.Errorf("expected seed abc, got %q", cfg.Seed)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.Games != 25 {
		t.Errorf("expected 25 games, got %d", cfg.Games)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvVariant, "elevens"},
		{EnvLogLevel, "loud"},
		{EnvGames, "many"},
		{EnvGames, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := FromEnv(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoadDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tens.env")
	if err := os.WriteFile(path, []byte("TENS_VARIANT=legacy\nTENS_GAMES=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvGames, "7")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rules.Variant != tens.Legacy {
		t.Errorf("expected legacy rules from file, got %q", cfg.Rules.Variant)
	}
	if cfg.Games != 7 {
		t.Errorf("expected environment to win over file, got %d games", cfg.Games)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatal(err)
	}
}
