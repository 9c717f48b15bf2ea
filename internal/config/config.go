package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	WordPress   WordPressConfig `yaml:"wordpress"`
	Logging     LoggingConfig   `yaml:"logging"`
	Environment string          `yaml:"environment"`
}

type WordPressConfig struct {
	BaseURL            string        `yaml:"base_url"`
	Username           string        `yaml:"username"`
	AppPassword        string        `yaml:"app_password"`
	InsecureSkipVerify bool          `yaml:"insecure_skip_verify"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	RateLimitPerSec    float64       `yaml:"rate_limit_per_sec"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load builds configuration from an optional YAML file overlaid with
// environment variables. Environment variables win so deployments can
// override a checked-in file without editing it.
func Load(path string) (Config, error) {
	cfg := Config{
		WordPress: WordPressConfig{
			RequestTimeout:  30 * time.Second,
			RateLimitPerSec: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Environment: "development",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.WordPress.BaseURL = getEnv("WORDPRESS_BASE_URL", cfg.WordPress.BaseURL)
	cfg.WordPress.Username = getEnv("WORDPRESS_USERNAME", cfg.WordPress.Username)
	cfg.WordPress.AppPassword = getEnv("WORDPRESS_APP_PASSWORD", cfg.WordPress.AppPassword)
	cfg.WordPress.InsecureSkipVerify = getEnvBool("WORDPRESS_INSECURE_SKIP_VERIFY", cfg.WordPress.InsecureSkipVerify)
	cfg.WordPress.RequestTimeout = getEnvDuration("WORDPRESS_REQUEST_TIMEOUT", cfg.WordPress.RequestTimeout)
	cfg.WordPress.RateLimitPerSec = getEnvFloat("WORDPRESS_RATE_LIMIT_PER_SEC", cfg.WordPress.RateLimitPerSec)
	cfg.Logging.Level = getEnv("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)

	if cfg.WordPress.BaseURL == "" {
		return Config{}, fmt.Errorf("WORDPRESS_BASE_URL is required")
	}
	if cfg.WordPress.Username == "" {
		return Config{}, fmt.Errorf("WORDPRESS_USERNAME is required")
	}
	if cfg.WordPress.AppPassword == "" {
		return Config{}, fmt.Errorf("WORDPRESS_APP_PASSWORD is required")
	}
	return cfg, nil
}

// Redacted returns the WordPress settings with the credential blanked, for
// startup logging.
func (c WordPressConfig) Redacted() string {
	return fmt.Sprintf("base_url=%s username=%s app_password=<redacted> insecure_skip_verify=%t",
		c.BaseURL, c.Username, c.InsecureSkipVerify)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
