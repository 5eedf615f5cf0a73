package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/luca-patrignani/tens/domain/tens"
)

// Environment variables read by Load.
const (
	EnvVariant  = "TENS_VARIANT"
	EnvSeed     = "TENS_SEED"
	EnvLogLevel = "TENS_LOG_LEVEL"
	EnvGames    = "TENS_GAMES"
)

// DefaultGames is the number of games simulated when TENS_GAMES is unset.
const DefaultGames = 1000

type Config struct {
	Rules    tens.Rules
	Seed     string // empty means a fresh random deal every game
	LogLevel slog.Level
	Games    int
}

// Load reads the given dotenv files, or ".env" when none is given, and then
// builds the configuration from the environment. Variables already set in
// the environment win over the files. A missing file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (Config, error) {
	variant, err := tens.ParseVariant(strings.ToLower(strings.TrimSpace(os.Getenv(EnvVariant))))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvVariant, err)
	}
	level, err := parseLevel(os.Getenv(EnvLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	games := DefaultGames
	if v := strings.TrimSpace(os.Getenv(EnvGames)); v != "" {
		games, err = strconv.Atoi(v)
		if err != nil || games <= 0 {
			return Config{}, fmt.Errorf("%s: invalid number of games %q", EnvGames, v)
		}
	}
	return Config{
		Rules:    tens.Rules{Variant: variant},
		Seed:     os.Getenv(EnvSeed),
		LogLevel: level,
		Games:    games,
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, err
	}
	return level, nil
}
