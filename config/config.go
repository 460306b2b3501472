package config

import (
	"fmt"
	"github.com/joho/godotenv"
	str2duration "github.com/xhit/go-str2duration/v2"
	"net/url"
	"os"
	"strings"
	"time"
)

// Settings holds everything the dashboard and its companion commands read
// from conf.env / the environment.
type Settings struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	RefreshInterval time.Duration
	TelegramToken   string
	TelegramChatID  string
	EngineAPIKey    string
	LogFile         string
	LogLevel        string
}

// Load reads conf.env from the working directory, falling back to the plain
// environment when the file is absent.
func Load() (*Settings, error) {
	cwd, _ := os.Getwd()
	_ = godotenv.Load(cwd + "/conf.env")

	settings := &Settings{
		TelegramToken:  os.Getenv("telegramToken"),
		TelegramChatID: os.Getenv("telegramChatId"),
		EngineAPIKey:   os.Getenv("engineAPIKey"),
		LogFile:        getEnv("logFile", "stst.log"),
		LogLevel:       getEnv("logLevel", "info"),
	}

	baseURL, err := normalizeBaseURL(getEnv("apiBaseURL", "http://localhost:8000"))
	if err != nil {
		return nil, err
	}
	settings.APIBaseURL = baseURL

	settings.RequestTimeout, err = parseDuration("requestTimeout", "10s")
	if err != nil {
		return nil, err
	}

	settings.RefreshInterval, err = parseDuration("refreshInterval", "0s")
	if err != nil {
		return nil, err
	}

	return settings, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func parseDuration(key string, fallback string) (time.Duration, error) {
	duration, err := str2duration.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return duration, nil
}

func normalizeBaseURL(raw string) (string, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid apiBaseURL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return "", fmt.Errorf("invalid apiBaseURL %q: expected http(s)://host", raw)
	}
	return strings.TrimRight(raw, "/"), nil
}
