package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	cfg := manager.GetConfig()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	assert.Equal(t, 1000, cfg.Session.MaxSessions)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)

	assert.True(t, cfg.Rate.Enabled)
	assert.InDelta(t, 5.0, cfg.Rate.RequestsPerSecond, 0.001)
	assert.Equal(t, 10, cfg.Rate.Burst)

	assert.False(t, cfg.Speech.Enabled)
}

func TestRiskDefaults(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	risk := manager.GetRiskConfig()

	assert.Equal(t, 60, risk.SeniorAge)
	assert.Equal(t, 2, risk.SeniorAgePoints)
	assert.Equal(t, 40, risk.MiddleAge)
	assert.Equal(t, 1, risk.MiddleAgePoints)
	assert.Equal(t, 2, risk.ConditionsPoints)

	expectedWeights := map[string]int{
		"fever":            2,
		"cough_breathing":  3,
		"body_aches":       1,
		"loss_taste_smell": 2,
		"fatigue":          1,
	}
	assert.Equal(t, expectedWeights, risk.SymptomWeights)

	assert.Equal(t, 5, risk.OxygenCriticalPoints)
	assert.Equal(t, 4, risk.OxygenLowPoints)
	assert.Equal(t, 2, risk.OxygenBorderlinePoints)
	assert.Equal(t, 9, risk.HighThreshold)
	assert.Equal(t, 5, risk.MediumThreshold)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("EPIDEMICCARE_SERVER_PORT", "9191")
	t.Setenv("EPIDEMICCARE_LOGGING_LEVEL", "debug")

	manager, err := NewManager()
	require.NoError(t, err)

	cfg := manager.GetConfig()
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestValidateDefaults(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	assert.NoError(t, manager.Validate())
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"invalid port", "EPIDEMICCARE_SERVER_PORT", "-1"},
		{"invalid log level", "EPIDEMICCARE_LOGGING_LEVEL", "verbose"},
		{"inverted thresholds", "EPIDEMICCARE_RISK_HIGH_THRESHOLD", "3"},
		{"zero max sessions", "EPIDEMICCARE_SESSION_MAX_SESSIONS", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			manager, err := NewManager()
			require.NoError(t, err)

			assert.Error(t, manager.Validate())
		})
	}
}

func TestValidateSpeechRequiresBaseURL(t *testing.T) {
	t.Setenv("EPIDEMICCARE_SPEECH_ENABLED", "true")

	manager, err := NewManager()
	require.NoError(t, err)
	assert.Error(t, manager.Validate())

	t.Setenv("EPIDEMICCARE_SPEECH_BASE_URL", "http://localhost:5002")
	require.NoError(t, manager.Reload())
	assert.NoError(t, manager.Validate())
}
