package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/epidemiccare-server/internal/domain"
)

// Manager loads and validates the application configuration using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from file, environment and defaults
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/epidemiccare-server/")

	viper.SetEnvPrefix("EPIDEMICCARE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	// Session store defaults
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.ttl", "2h")

	// API rate limiting defaults
	viper.SetDefault("rate.enabled", true)
	viper.SetDefault("rate.requests_per_second", 5)
	viper.SetDefault("rate.burst", 10)

	// Risk scoring defaults: the canonical weight table and thresholds
	viper.SetDefault("risk.senior_age", 60)
	viper.SetDefault("risk.senior_age_points", 2)
	viper.SetDefault("risk.middle_age", 40)
	viper.SetDefault("risk.middle_age_points", 1)
	viper.SetDefault("risk.conditions_points", 2)
	viper.SetDefault("risk.symptom_weights.fever", 2)
	viper.SetDefault("risk.symptom_weights.cough_breathing", 3)
	viper.SetDefault("risk.symptom_weights.body_aches", 1)
	viper.SetDefault("risk.symptom_weights.loss_taste_smell", 2)
	viper.SetDefault("risk.symptom_weights.fatigue", 1)
	viper.SetDefault("risk.oxygen_critical_points", 5)
	viper.SetDefault("risk.oxygen_low_points", 4)
	viper.SetDefault("risk.oxygen_borderline_points", 2)
	viper.SetDefault("risk.high_threshold", 9)
	viper.SetDefault("risk.medium_threshold", 5)

	// Speech sink defaults (disabled unless a synthesizer is configured)
	viper.SetDefault("speech.enabled", false)
	viper.SetDefault("speech.base_url", "")
	viper.SetDefault("speech.voice", "en-US-standard")
	viper.SetDefault("speech.timeout", "10s")
	viper.SetDefault("speech.rate_limit", 3)
	viper.SetDefault("speech.max_requests", 3)
	viper.SetDefault("speech.interval", "10s")
	viper.SetDefault("speech.cb_timeout", "5s")
	viper.SetDefault("speech.failures", 5)
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetServerConfig returns server configuration
func (m *Manager) GetServerConfig() *domain.ServerConfig {
	return &m.config.Server
}

// GetRiskConfig returns the risk scoring configuration
func (m *Manager) GetRiskConfig() *domain.RiskConfig {
	return &m.config.Risk
}

// Reload reloads the configuration
func (m *Manager) Reload() error {
	return m.loadConfig()
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be positive")
	}
	if config.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}

	if config.Risk.HighThreshold <= config.Risk.MediumThreshold {
		return fmt.Errorf("risk.high_threshold (%d) must exceed risk.medium_threshold (%d)",
			config.Risk.HighThreshold, config.Risk.MediumThreshold)
	}
	for _, key := range []string{"fever", "cough_breathing", "body_aches", "loss_taste_smell", "fatigue"} {
		if _, ok := config.Risk.SymptomWeights[key]; !ok {
			return fmt.Errorf("risk.symptom_weights missing weight for %q", key)
		}
	}

	if config.Speech.Enabled && config.Speech.BaseURL == "" {
		return fmt.Errorf("speech.base_url is required when the speech sink is enabled")
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// IsProduction returns true if running in production mode
func (m *Manager) IsProduction() bool {
	return strings.ToLower(viper.GetString("environment")) == "production"
}

// IsDevelopment returns true if running in development mode
func (m *Manager) IsDevelopment() bool {
	env := strings.ToLower(viper.GetString("environment"))
	return env == "development" || env == "dev" || env == ""
}
