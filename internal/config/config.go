package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "MSGDECODE_"

type Config struct {
	Logging LoggingConfig `koanf:"logging" validate:"required"`
	Output  OutputConfig  `koanf:"output" validate:"required"`
	Decode  DecodeConfig  `koanf:"decode"`
}

type LoggingConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"required,oneof=console json"`
}

type OutputConfig struct {
	Format string `koanf:"format" validate:"required,oneof=text json summary log"`
	Color  bool   `koanf:"color"`
	Levels string `koanf:"levels"` // comma-separated level filter, empty shows all
}

type DecodeConfig struct {
	FailFast bool `koanf:"fail_fast"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Output:  OutputConfig{Format: "text", Color: true},
	}
}

// envKey maps MSGDECODE_OUTPUT_FORMAT to output.format. Only the first
// underscore after the prefix nests, so MSGDECODE_DECODE_FAIL_FAST becomes
// decode.fail_fast.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// LoadConfig loads the configuration from an optional .env file and
// MSGDECODE_* environment variables, on top of Default.
func LoadConfig() (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	mainConfig := Default()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	mainConfig.Normalize()

	if err := mainConfig.Validate(); err != nil {
		return nil, err
	}
	return mainConfig, nil
}

// Normalize lower-cases the enumerated settings.
func (c *Config) Normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
}

// Validate checks the struct tags. It is exported so callers can re-check
// after applying command-line overrides.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
