package config

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load()

	assert.Nil(t, err)
	assert.Equal(t, "http://localhost:8000", settings.APIBaseURL)
	assert.Equal(t, 10*time.Second, settings.RequestTimeout)
	assert.Equal(t, time.Duration(0), settings.RefreshInterval)
	assert.Equal(t, "stst.log", settings.LogFile)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("apiBaseURL", "https://stst.example.com/")
	t.Setenv("requestTimeout", "90s")
	t.Setenv("refreshInterval", "1m30s")
	t.Setenv("telegramToken", "token123")
	t.Setenv("telegramChatId", "-100200300")

	settings, err := Load()

	assert.Nil(t, err)
	assert.Equal(t, "https://stst.example.com", settings.APIBaseURL)
	assert.Equal(t, 90*time.Second, settings.RequestTimeout)
	assert.Equal(t, 90*time.Second, settings.RefreshInterval)
	assert.Equal(t, "token123", settings.TelegramToken)
	assert.Equal(t, "-100200300", settings.TelegramChatID)
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	t.Setenv("requestTimeout", "soon")

	settings, err := Load()

	assert.Nil(t, settings)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "requestTimeout")
}

func TestLoadRejectsInvalidBaseURL(t *testing.T) {
	t.Setenv("apiBaseURL", "localhost:8000")

	settings, err := Load()

	assert.Nil(t, settings)
	assert.NotNil(t, err)
}
