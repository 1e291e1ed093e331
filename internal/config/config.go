package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Backend   BackendConfig   `yaml:"backend"`
	Session   SessionConfig   `yaml:"session"`
	Email     EmailConfig     `yaml:"email"`
	Log       LogConfig       `yaml:"log"`
	Pager     PagerConfig     `yaml:"pager"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings for the console surface
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// BackendConfig contains settings for the external estate REST backend
type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries"`
	RetryBackoffMS int    `yaml:"retry_backoff_ms"`
}

// SessionConfig contains settings for the persisted login session
type SessionConfig struct {
	TokenFile  string `yaml:"token_file"`
	StorageKey string `yaml:"storage_key"`
}

// EmailConfig contains SendGrid settings for renewal alert notifications
type EmailConfig struct {
	SendGridAPIKey string `yaml:"sendgrid_api_key"`
	FromEmail      string `yaml:"from_email"`
	FromName       string `yaml:"from_name"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// PagerConfig contains list windowing settings
type PagerConfig struct {
	PageSize    int `yaml:"page_size"`
	LoadDelayMS int `yaml:"load_delay_ms"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RefreshPropertyCache string `yaml:"refresh_property_cache"`
	ScanRenewalAlerts    string `yaml:"scan_renewal_alerts"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Backend
	if val := os.Getenv("BACKEND_BASE_URL"); val != "" {
		c.Backend.BaseURL = val
	}
	if val := os.Getenv("BACKEND_TIMEOUT_SECONDS"); val != "" {
		fmt.Sscanf(val, "%d", &c.Backend.TimeoutSeconds)
	}
	if val := os.Getenv("BACKEND_MAX_RETRIES"); val != "" {
		fmt.Sscanf(val, "%d", &c.Backend.MaxRetries)
	}

	// Session
	if val := os.Getenv("SESSION_TOKEN_FILE"); val != "" {
		c.Session.TokenFile = val
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridAPIKey = val
	}
	if val := os.Getenv("EMAIL_FROM"); val != "" {
		c.Email.FromEmail = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Backend validation
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("backend base URL is required")
	}
	if c.Backend.TimeoutSeconds <= 0 {
		c.Backend.TimeoutSeconds = 10
	}
	if c.Backend.MaxRetries <= 0 {
		c.Backend.MaxRetries = 3
	}
	if c.Backend.RetryBackoffMS <= 0 {
		c.Backend.RetryBackoffMS = 500
	}

	// Session validation
	if c.Session.TokenFile == "" {
		return fmt.Errorf("session token file is required")
	}
	if c.Session.StorageKey == "" {
		c.Session.StorageKey = "estate_admin_token"
	}

	// Pager defaults
	if c.Pager.PageSize <= 0 {
		c.Pager.PageSize = 10
	}
	if c.Pager.LoadDelayMS < 0 {
		c.Pager.LoadDelayMS = 0
	} else if c.Pager.LoadDelayMS == 0 {
		c.Pager.LoadDelayMS = 300
	}

	// Scheduler defaults
	if c.Scheduler.RefreshPropertyCache == "" {
		c.Scheduler.RefreshPropertyCache = "0 */30 * * * *" // Every 30 minutes
	}
	if c.Scheduler.ScanRenewalAlerts == "" {
		c.Scheduler.ScanRenewalAlerts = "0 0 8 * * *" // 8 AM UTC daily
	}

	return nil
}

// GetServerAddress returns the console HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
