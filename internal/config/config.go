// Package config loads server settings.
//
// Precedence, lowest first: built-in defaults, the TOML file named by
// HINTS_CONFIG (if any), then environment variables (a .env file in the
// working directory is loaded first and never overrides real variables).
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable of the hint server.
type Config struct {
	Port     string `toml:"port"      env:"PORT"`
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`
	AppEnv   string `toml:"app_env"   env:"APP_ENV"`

	// Storage
	Store  string `toml:"store"   env:"STORE"` // "sqlite" or "memory"
	DBPath string `toml:"db_path" env:"DB_PATH"`

	// Dictionary
	WordsFile string `toml:"words_file" env:"WORDS_FILE"`

	// Auth
	JWTSecret      string `toml:"jwt_secret"       env:"JWT_SECRET"`
	JWTExpiresDays int    `toml:"jwt_expires_days" env:"JWT_EXPIRES_DAYS"`
	CookieName     string `toml:"cookie_name"      env:"COOKIE_NAME"`
	ClientOrigin   string `toml:"client_origin"    env:"CLIENT_ORIGIN"`

	// Hints
	PickSalt        string `toml:"pick_salt"        env:"PICK_SALT"`
	SuggestionLimit int    `toml:"suggestion_limit" env:"SUGGESTION_LIMIT"`
	TraceLimit      int    `toml:"trace_limit"      env:"TRACE_LIMIT"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:            "5175",
		LogLevel:        "info",
		AppEnv:          "development",
		Store:           "sqlite",
		DBPath:          "./data/hints.db",
		JWTSecret:       "dev_secret_change_me",
		JWTExpiresDays:  14,
		CookieName:      "wordle_token",
		ClientOrigin:    "http://localhost:5173",
		PickSalt:        "local_dev_salt",
		SuggestionLimit: 45,
		TraceLimit:      10,
	}
}

// Production reports whether the server runs with production cookies.
func (c Config) Production() bool { return c.AppEnv == "production" }

// Load builds the configuration from defaults, file and environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("HINTS_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("config: unknown store %q", c.Store)
	}
	if c.SuggestionLimit < 0 || c.TraceLimit < 0 {
		return fmt.Errorf("config: limits must not be negative")
	}
	return nil
}
