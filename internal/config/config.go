// Package config loads server settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
)

// LLM holds connection settings for the completion endpoint.
type LLM struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

// Config holds all server settings.
type Config struct {
	Port   string `yaml:"port"`
	DBPath string `yaml:"db_path"`

	// APIKey protects the HTTP API. Empty disables authentication.
	APIKey string `yaml:"api_key"`

	LLM LLM `yaml:"llm"`

	// PDFTimeout bounds a single print job.
	PDFTimeout time.Duration `yaml:"pdf_timeout"`

	// AutofillStepDelay paces the form-fill simulation.
	AutofillStepDelay time.Duration `yaml:"autofill_step_delay"`

	// MaxUploadBytes limits profile document uploads.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:   "8080",
		DBPath: "data/uniapply.db",
		LLM: LLM{
			BaseURL: "https://open.bigmodel.cn/api/paas/v4",
			Model:   "glm-4-plus",
			Timeout: 60 * time.Second,
		},
		PDFTimeout:        30 * time.Second,
		AutofillStepDelay: 500 * time.Millisecond,
		MaxUploadBytes:    10 << 20, // 10MB
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty or the file does not exist), then environment
// variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file.
		case err != nil:
			return Config{}, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.Strict()); err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.DBPath = envOr("DB_PATH", cfg.DBPath)
	cfg.APIKey = envOr("UNIAPPLY_API_KEY", cfg.APIKey)
	cfg.LLM.BaseURL = envOr("LLM_BASE_URL", cfg.LLM.BaseURL)
	cfg.LLM.APIKey = envOr("LLM_API_KEY", cfg.LLM.APIKey)
	cfg.LLM.Model = envOr("LLM_MODEL", cfg.LLM.Model)
	cfg.PDFTimeout = envDuration("PDF_TIMEOUT", cfg.PDFTimeout)
	cfg.AutofillStepDelay = envDuration("AUTOFILL_STEP_DELAY", cfg.AutofillStepDelay)
	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
