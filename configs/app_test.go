package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadAppConfigDefaults(t *testing.T) {
	for _, key := range []string{"APPLICATION_NAME", "PORT", "CONTEXT_PATH", "WEATHER_API_BASE_URL", "WEATHER_API_KEY",
		"WEATHER_API_CONNECTION_TIMEOUT", "WEATHER_API_READ_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadAppConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Name != "weather-relay" {
		t.Errorf("unexpected name %q", cfg.Name)
	}
	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.ContextPath != "" {
		t.Errorf("expected empty context path, got %q", cfg.ContextPath)
	}
	if cfg.WeatherAPI.BaseURL != "https://api.weatherapi.com/v1" {
		t.Errorf("unexpected base url %q", cfg.WeatherAPI.BaseURL)
	}
	if cfg.WeatherAPI.Key != "" {
		t.Errorf("expected empty key, got %q", cfg.WeatherAPI.Key)
	}
	if cfg.WeatherAPI.ReadTimeout != 10*time.Second || cfg.WeatherAPI.ConnectionTimeout != 5*time.Second {
		t.Errorf("unexpected timeouts %v %v", cfg.WeatherAPI.ConnectionTimeout, cfg.WeatherAPI.ReadTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
}

func TestLoadAppConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("CONTEXT_PATH", "/relay/")
	t.Setenv("WEATHER_API_KEY", "abc123")
	t.Setenv("WEATHER_API_READ_TIMEOUT", "3s")

	cfg, err := LoadAppConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8081" || cfg.ContextPath != "/relay" || cfg.WeatherAPI.Key != "abc123" {
		t.Errorf("environment not applied: %+v", cfg)
	}
	if cfg.WeatherAPI.ReadTimeout != 3*time.Second {
		t.Errorf("unexpected read timeout %v", cfg.WeatherAPI.ReadTimeout)
	}
}

func TestLoadAppConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"port":     "app:\n  name: x\n  server:\n    port: http\nweather:\n  api:\n    base-url: https://h\n    connection-timeout: 1s\n    read-timeout: 1s\n",
		"base url": "app:\n  name: x\n  server:\n    port: 1\nweather:\n  api:\n    base-url: not a url\n    connection-timeout: 1s\n    read-timeout: 1s\n",
		"timeout":  "app:\n  name: x\n  server:\n    port: 1\nweather:\n  api:\n    base-url: https://h\n    connection-timeout: 1s\n    read-timeout: 0s\n",
		"context":  "app:\n  name: x\n  server:\n    port: 1\n    context-path: relay\nweather:\n  api:\n    base-url: https://h\n    connection-timeout: 1s\n    read-timeout: 1s\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "application.yml")
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("write: %v", err)
			}

			_, err := LoadAppConfig(path)
			if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	if _, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("expected error for missing properties file")
	}
}

func TestLoadEnvReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("APPLICATION_NAME=from-dotenv\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("APPLICATION_NAME", "")
	os.Unsetenv("APPLICATION_NAME")

	env, err := LoadEnv(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.DotEnvLoaded || env.ApplicationName != "from-dotenv" {
		t.Errorf("unexpected env %+v", env)
	}
}

func TestLoadEnvWithoutDotEnv(t *testing.T) {
	env, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.DotEnvLoaded {
		t.Error("expected DotEnvLoaded to be false")
	}
}
