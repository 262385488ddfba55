package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("EMPTY_COMMENTS_NOT_FOUND", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("Expected default DB host, got %q", cfg.Database.Host)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("Expected /api base path, got %q", cfg.API.BasePath)
	}
	if !cfg.API.EmptyCommentsNotFound {
		t.Error("Empty comment lists should be reported as not found by default")
	}
	if cfg.CORS.AllowedOrigins != nil {
		t.Errorf("Expected no CORS origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("EMPTY_COMMENTS_NOT_FOUND", "false")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("Expected port 7070, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("Expected 3s read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.API.EmptyCommentsNotFound {
		t.Error("Expected EmptyCommentsNotFound=false")
	}
	if cfg.RateLimit.RPS != 2.5 {
		t.Errorf("Expected 2.5 rps, got %v", cfg.RateLimit.RPS)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("Expected 2 origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing host", func(c *Config) { c.Database.Host = "" }, true},
		{"missing name", func(c *Config) { c.Database.Name = "" }, true},
		{"zero rps with limiter", func(c *Config) { c.RateLimit.RPS = 0 }, true},
		{"zero rps without limiter", func(c *Config) { c.RateLimit.Enabled = false; c.RateLimit.RPS = 0 }, false},
		{"bad sample ratio", func(c *Config) { c.OTEL.SampleRatio = 1.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Database:  DatabaseConfig{Host: "localhost", Name: "nc_news"},
				RateLimit: RateLimitConfig{Enabled: true, RPS: 10, Burst: 10},
				OTEL:      OTELConfig{SampleRatio: 1},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetDSN(t *testing.T) {
	c := &DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	want := "host=db port=5432 user=u password=p dbname=n sslmode=disable"
	if got := c.GetDSN(); got != want {
		t.Errorf("GetDSN() = %q, want %q", got, want)
	}
}
