// Package config loads service configuration from an optional YAML file
// with environment overrides, and validates it before the server starts.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/causify-ai/sentinel-kg/pkg/query"
)

// Duration wraps time.Duration so YAML values like "2.5s" parse directly.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the full service configuration.
type Config struct {
	// ListenAddr is the host:port the HTTP server binds.
	ListenAddr string `yaml:"listen_addr" validate:"required,hostname_port"`

	// CORSOrigins are the allowed cross-origin origins for the browser
	// frontend. "*" allows all.
	CORSOrigins []string `yaml:"cors_origins" validate:"min=1"`

	// RedirectURL is where a supported question navigates.
	RedirectURL string `yaml:"redirect_url" validate:"required,url"`

	// LoadingDelay is how long the loading stage lasts.
	LoadingDelay Duration `yaml:"loading_delay" validate:"min=0"`

	// InfoRotation is the interval between info panel rotations.
	InfoRotation Duration `yaml:"info_rotation" validate:"min=0"`

	// PreviewRotation is the interval between preview image rotations.
	PreviewRotation Duration `yaml:"preview_rotation" validate:"min=0"`

	// LogLevel selects the minimum log level.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no file is given. The
// timings mirror the original demo: 2.5s loading, 5s info rotation, 4s
// preview rotation.
func Default() Config {
	return Config{
		ListenAddr:      "0.0.0.0:8050",
		CORSOrigins:     []string{"*"},
		RedirectURL:     query.RedirectURL,
		LoadingDelay:    Duration(2500 * time.Millisecond),
		InfoRotation:    Duration(5 * time.Second),
		PreviewRotation: Duration(4 * time.Second),
		LogLevel:        "info",
	}
}

// Load reads the config file at path (skipped when empty), applies
// environment overrides, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv layers environment variables over the file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SENTINEL_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("SENTINEL_CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSOrigins = origins
	}
	if v := os.Getenv("SENTINEL_REDIRECT_URL"); v != "" {
		cfg.RedirectURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}

var validate = validator.New()

// Validate checks the configuration, reporting every invalid field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			msgs := make([]string, 0, len(errs))
			for _, fe := range errs {
				msgs = append(msgs, fmt.Sprintf("%s fails %q", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
