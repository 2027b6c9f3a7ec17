package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.Gemini.Model != "gemini-1.5-pro" {
		t.Errorf("Gemini.Model = %q, want gemini-1.5-pro", cfg.Gemini.Model)
	}
	if cfg.Scrape.PageTimeout != 10*time.Second {
		t.Errorf("Scrape.PageTimeout = %v, want 10s", cfg.Scrape.PageTimeout)
	}
	if cfg.RateLimit.Enabled {
		t.Error("RateLimit.Enabled = true, want disabled by default")
	}
	if !cfg.CORS.Enabled {
		t.Error("CORS.Enabled = false, want enabled by default")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-flash")
	t.Setenv("PAGE_FETCH_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("DEBUG", "true")

	cfg := LoadConfig()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.Gemini.Model != "gemini-1.5-flash" {
		t.Errorf("Gemini.Model = %q, want gemini-1.5-flash", cfg.Gemini.Model)
	}
	if cfg.Scrape.PageTimeout != 3*time.Second {
		t.Errorf("Scrape.PageTimeout = %v, want 3s", cfg.Scrape.PageTimeout)
	}
	if !cfg.RateLimit.Enabled {
		t.Error("RateLimit.Enabled = false, want enabled")
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoadConfigInvalidValuesFallBack(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "not-a-duration")
	t.Setenv("RATE_LIMIT_RPM", "not-a-number")
	t.Setenv("CORS_ENABLED", "not-a-bool")

	cfg := LoadConfig()

	if cfg.ReadTimeout != 30*time.Second {
		t.Errorf("ReadTimeout = %v, want default 30s", cfg.ReadTimeout)
	}
	if cfg.RateLimit.RequestsPerMinute != 60 {
		t.Errorf("RequestsPerMinute = %d, want default 60", cfg.RateLimit.RequestsPerMinute)
	}
	if !cfg.CORS.Enabled {
		t.Error("CORS.Enabled = false, want default true")
	}
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			ServerPort:   "8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
			Gemini:       GeminiConfig{APIKey: "key", Model: "gemini-1.5-pro"},
			Scrape:       ScrapeConfig{PageTimeout: 10 * time.Second},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.ServerPort = "" },
			wantErr: true,
		},
		{
			name:    "missing API key",
			mutate:  func(c *Config) { c.Gemini.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "missing model",
			mutate:  func(c *Config) { c.Gemini.Model = "" },
			wantErr: true,
		},
		{
			name:    "zero page timeout",
			mutate:  func(c *Config) { c.Scrape.PageTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "zero read timeout",
			mutate:  func(c *Config) { c.ReadTimeout = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr && err == nil {
				t.Error("ValidateConfig() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateConfig() = %v, want nil", err)
			}
		})
	}
}
