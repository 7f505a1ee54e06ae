package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid config",
			config: Config{
				APIBaseURL:  "http://localhost:8080",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "info",
				LogFile:     "financery.log",
			},
			wantErr: false,
		},
		{
			name: "https base URL",
			config: Config{
				APIBaseURL:  "https://financery.example.com",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "debug",
				LogFile:     "financery.log",
			},
			wantErr: false,
		},
		{
			name: "invalid URL scheme",
			config: Config{
				APIBaseURL:  "ftp://localhost:8080",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "info",
				LogFile:     "financery.log",
			},
			wantErr:     true,
			errorString: "invalid API base URL scheme 'ftp'",
		},
		{
			name: "missing host",
			config: Config{
				APIBaseURL:  "http://",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "info",
				LogFile:     "financery.log",
			},
			wantErr:     true,
			errorString: "missing host",
		},
		{
			name: "negative timeout",
			config: Config{
				APIBaseURL:  "http://localhost:8080",
				HTTPTimeout: -time.Second,
				LogLevel:    "info",
				LogFile:     "financery.log",
			},
			wantErr:     true,
			errorString: "must not be negative",
		},
		{
			name: "invalid log level",
			config: Config{
				APIBaseURL:  "http://localhost:8080",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "verbose",
				LogFile:     "financery.log",
			},
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
		{
			name: "empty log file",
			config: Config{
				APIBaseURL:  "http://localhost:8080",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "info",
				LogFile:     "",
			},
			wantErr:     true,
			errorString: "log file path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("FINANCERY_API_URL")
	os.Unsetenv("HTTP_TIMEOUT")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FILE")

	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Errorf("expected default base URL, got %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("expected default timeout 15s, got %v", cfg.HTTPTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FINANCERY_API_URL", "https://api.example.com")
	t.Setenv("HTTP_TIMEOUT", "30s")

	cfg := Load()
	if cfg.APIBaseURL != "https://api.example.com" {
		t.Errorf("expected env base URL, got %q", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.HTTPTimeout)
	}
}

func TestGetEnvDurationInvalid(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "banana")
	cfg := Load()
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("invalid duration should fall back to default, got %v", cfg.HTTPTimeout)
	}
}
