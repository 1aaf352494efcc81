package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Server.Env)
	}
	if cfg.Database.Namespace != "daypact" {
		t.Errorf("expected default namespace daypact, got %s", cfg.Database.Namespace)
	}
	if cfg.JWT.ExpirationMins != 60 {
		t.Errorf("expected default expiration 60, got %d", cfg.JWT.ExpirationMins)
	}
	if cfg.JWT.Issuer != "api.daypact.dev" {
		t.Errorf("expected default issuer api.daypact.dev, got %s", cfg.JWT.Issuer)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("DB_NAMESPACE", "staging")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("JWT_EXPIRATION_MINS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("expected port 9999, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("expected read timeout 30s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Database.Namespace != "staging" {
		t.Errorf("expected namespace staging, got %s", cfg.Database.Namespace)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("expected 2 origins, got %v", cfg.Server.AllowedOrigins)
	}
	if cfg.JWT.ExpirationMins != 5 {
		t.Errorf("expected expiration 5, got %d", cfg.JWT.ExpirationMins)
	}
}

func TestLoad_MalformedValues_FallBackToDefaults(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINS", "not-a-number")
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.JWT.ExpirationMins != 60 {
		t.Errorf("expected default 60 for malformed int, got %d", cfg.JWT.ExpirationMins)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("expected default 15s for malformed duration, got %v", cfg.Server.ReadTimeout)
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid default config, got %v", err)
	}
}

func TestValidate_ReportsAllFailures(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{
			Port: "",
			Env:  "staging",
		},
		Database: DatabaseConfig{},
		JWT:      JWTConfig{ExpirationMins: 0},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors, got nil")
	}

	msg := err.Error()
	for _, want := range []string{
		"SERVER_PORT is required",
		"SERVER_ENV must be",
		"CORS_ALLOWED_ORIGINS must have at least one origin",
		"DB_HOST is required",
		"DB_NAMESPACE is required",
		"JWT_EXPIRATION_MINS must be positive",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in validation error, got: %s", want, msg)
		}
	}
}

func TestValidate_ProductionRequiresKeyPaths(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	cfg.Server.Env = "production"
	cfg.JWT.PrivateKeyPath = ""
	cfg.JWT.PublicKeyPath = ""

	verr := cfg.Validate()
	if verr == nil {
		t.Fatal("expected validation error, got nil")
	}
	if !strings.Contains(verr.Error(), "JWT_PRIVATE_KEY_PATH is required in production") {
		t.Errorf("expected private key requirement, got: %v", verr)
	}
}

func TestIsDevelopmentAndProduction(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Env: "development"}}
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("expected development mode")
	}

	cfg.Server.Env = "production"
	if cfg.IsDevelopment() || !cfg.IsProduction() {
		t.Error("expected production mode")
	}
}
