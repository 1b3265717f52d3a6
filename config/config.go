package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfigPath = "LIBRARY_CONFIG"
	EnvSeedFile   = "LIBRARY_SEED_FILE"
	EnvNoClear    = "LIBRARY_NO_CLEAR"
	EnvLogLevel   = "LIBRARY_LOG_LEVEL"
	EnvLogFormat  = "LIBRARY_LOG_FORMAT"
)

// Config holds runtime settings for the catalog CLI.
type Config struct {
	SeedFile    string `yaml:"seedFile"`
	ClearScreen bool   `yaml:"clearScreen"`
	LogLevel    string `yaml:"logLevel"`
	LogFormat   string `yaml:"logFormat"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ClearScreen: true,
		LogLevel:    "warn",
		LogFormat:   "text",
	}
}

// LoadEnvFiles loads .env and .env.local into the process environment if
// present. Variables already set are not overridden.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load starts from Default, applies the YAML file at path (skipped when path
// is empty) and then environment overrides. The result is not validated, so
// callers can layer flag overrides on top before calling Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv(EnvSeedFile); v != "" {
		cfg.SeedFile = v
	}
	if v := os.Getenv(EnvNoClear); v != "" {
		noClear, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvNoClear, err)
		}
		cfg.ClearScreen = !noClear
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}

	return cfg, nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}
