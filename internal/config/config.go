package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/paasword/paasword-go/internal/generator"
	"github.com/paasword/paasword-go/internal/preset"
)

var ErrMissingSecret = errors.New("JWT_SECRET must be set in production environment")

type Config struct {
	Port           string     `yaml:"port"`
	Env            string     `yaml:"env"`
	JWTSecret      string     `yaml:"jwt_secret"`
	RateLimitRPS   float64    `yaml:"rate_limit_rps"`
	RateLimitBurst int        `yaml:"rate_limit_burst"`
	DefaultPreset  preset.Key `yaml:"default_preset"`
	LogFile        string     `yaml:"log_file"`

	// Settings is an optional starting snapshot for the terminal front-end.
	// It is only read from the YAML file.
	Settings *generator.Settings `yaml:"settings"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:           "8080",
		Env:            "development",
		RateLimitRPS:   5,
		RateLimitBurst: 10,
		DefaultPreset:  preset.FullStrong,
	}
}

// Load builds the configuration from defaults, the YAML file named by
// PAASWORD_CONFIG (if any) and the environment. Invalid configuration is fatal.
func Load() Config {
	cfg, err := Parse(os.Getenv("PAASWORD_CONFIG"), os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	return cfg
}

// Parse layers the YAML file at path (skipped when empty) and the variables
// returned by getenv over the defaults.
func Parse(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg, getenv); err != nil {
		return Config{}, err
	}

	if _, err := preset.Parse(string(cfg.DefaultPreset)); err != nil {
		return Config{}, fmt.Errorf("default preset: %w", err)
	}
	if cfg.Settings != nil {
		if err := cfg.Settings.Validate(); err != nil {
			return Config{}, fmt.Errorf("settings: %w", err)
		}
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("rate limit must be positive, got %v/s burst %d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	return cfg, nil
}

// ValidateServer checks the settings only the HTTP API depends on.
func (c Config) ValidateServer() error {
	if c.Env == "production" && c.JWTSecret == "" {
		return ErrMissingSecret
	}
	return nil
}

// AuthEnabled reports whether API routes require a client token.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	setString(&cfg.Port, getenv("PORT"))
	setString(&cfg.Env, getenv("ENV"))
	setString(&cfg.JWTSecret, getenv("JWT_SECRET"))
	setString(&cfg.LogFile, getenv("LOG_FILE"))
	if v := getenv("DEFAULT_PRESET"); v != "" {
		cfg.DefaultPreset = preset.Key(v)
	}

	if v := getenv("RATE_LIMIT_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
		cfg.RateLimitRPS = rps
	}
	if v := getenv("RATE_LIMIT_BURST"); v != "" {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_BURST: %w", err)
		}
		cfg.RateLimitBurst = burst
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
