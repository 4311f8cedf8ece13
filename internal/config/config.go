package config

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"cloudpulse/partner-portal/partner-portal-backend/internal/cloudflare"
)

// Config represents the application configuration
type Config struct {
	Server     ServerConfig     `json:"server"`
	Cloudflare CloudflareConfig `json:"cloudflare"`
	Alerts     AlertsConfig     `json:"alerts"`
	Logging    LoggingConfig    `json:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `json:"host"`
	Port         int           `json:"port"`
	ReadTimeout  time.Duration `json:"read_timeout"`
	WriteTimeout time.Duration `json:"write_timeout"`
	IdleTimeout  time.Duration `json:"idle_timeout"`
}

// CloudflareConfig holds the Synopsis MSP tenant credentials and API root.
type CloudflareConfig struct {
	AuthEmail    string `json:"auth_email"`
	AuthKey      string `json:"auth_key"`
	TenantUnitID string `json:"tenant_unit_id"`
	BaseURL      string `json:"base_url"`
}

// AlertsConfig configures the usage-alert evaluator.
type AlertsConfig struct {
	Schedule          string  `json:"schedule"`
	WarningThreshold  float64 `json:"warning_threshold"`
	CriticalThreshold float64 `json:"critical_threshold"`
}

// LoggingConfig
type LoggingConfig struct {
	Level string `json:"level"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Default config
	config := &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Cloudflare: CloudflareConfig{
			BaseURL: cloudflare.DefaultBaseURL,
		},
		Alerts: AlertsConfig{
			Schedule:          "@every 15m",
			WarningThreshold:  0.8,
			CriticalThreshold: 0.95,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}

	// Load from file if exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			if err := json.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	// Override with environment variables
	overrideWithEnv(config)

	return config, nil
}

func overrideWithEnv(config *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if email := os.Getenv("SYNOPSIS_AUTH_EMAIL"); email != "" {
		config.Cloudflare.AuthEmail = email
	}
	if key := os.Getenv("SYNOPSIS_AUTH_KEY"); key != "" {
		config.Cloudflare.AuthKey = key
	}
	if unit := os.Getenv("SYNOPSIS_TENANT_UNIT_ID"); unit != "" {
		config.Cloudflare.TenantUnitID = unit
	}
	if base := os.Getenv("CLOUDFLARE_BASE_URL"); base != "" {
		config.Cloudflare.BaseURL = base
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// Credentials returns the Cloudflare credentials for client construction.
func (c *CloudflareConfig) Credentials() cloudflare.Credentials {
	return cloudflare.Credentials{
		AuthEmail:    c.AuthEmail,
		AuthKey:      c.AuthKey,
		TenantUnitID: c.TenantUnitID,
	}
}

// GetServerAddr returns the server address
func (c *ServerConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

var authEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Placeholder values shipped in .env.example; flag them instead of letting
// calls fail with opaque API errors.
const (
	placeholderAuthKey      = "your_global_api_key_here"
	placeholderTenantUnitID = "your_tenant_unit_id_here"
)

// ValidationResult carries configuration problems split into hard errors and
// advisory warnings.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks the Cloudflare credential configuration for missing values,
// malformed email, and placeholder leftovers.
func (c *CloudflareConfig) Validate() ValidationResult {
	result := ValidationResult{IsValid: true, Errors: []string{}, Warnings: []string{}}

	if c.AuthEmail == "" {
		result.Errors = append(result.Errors, "SYNOPSIS_AUTH_EMAIL is not configured")
	}
	if c.AuthKey == "" {
		result.Errors = append(result.Errors, "SYNOPSIS_AUTH_KEY is not configured")
	}
	if c.TenantUnitID == "" {
		result.Errors = append(result.Errors, "SYNOPSIS_TENANT_UNIT_ID is not configured")
	}

	if c.AuthEmail != "" && !authEmailPattern.MatchString(c.AuthEmail) {
		result.Errors = append(result.Errors, "Synopsis auth email format is invalid")
	}

	if c.AuthKey == placeholderAuthKey {
		result.Errors = append(result.Errors, "Using placeholder API key - replace with actual Synopsis MSP API key")
	}
	if c.TenantUnitID == placeholderTenantUnitID {
		result.Errors = append(result.Errors, "Using placeholder tenant unit ID - replace with actual Synopsis MSP tenant unit ID")
	}

	if c.AuthKey != "" && c.AuthKey != placeholderAuthKey && len(c.AuthKey) < 32 {
		result.Warnings = append(result.Warnings, "API key appears to be too short - verify it is the Global API Key")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
