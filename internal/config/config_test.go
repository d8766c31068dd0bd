package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("EMAIL_USER", "sender@example.com")
	t.Setenv("EMAIL_PASS", "app-password")
	t.Setenv("TO_EMAIL", "inbox@example.com")
	t.Setenv("PORT", "6001")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.Database != "flyAmbitionDB" {
		t.Fatalf("default database = %q", cfg.MongoDB.Database)
	}
	if cfg.MongoDB.Timeout != 10*time.Second {
		t.Fatalf("default mongo timeout = %v", cfg.MongoDB.Timeout)
	}
	if cfg.Addr() != "0.0.0.0:6001" {
		t.Fatalf("Addr() = %q", cfg.Addr())
	}
	if cfg.Email.Username != "sender@example.com" || cfg.Email.Recipient != "inbox@example.com" {
		t.Fatalf("unexpected email config: %+v", cfg.Email)
	}
	if cfg.Email.Host != "smtp.gmail.com" || cfg.Email.Port != 587 || !cfg.Email.Enabled {
		t.Fatalf("unexpected smtp defaults: %+v", cfg.Email)
	}
	if cfg.Uploads.Dir != "uploads" || cfg.Uploads.MaxUploadMB != 10 {
		t.Fatalf("unexpected upload defaults: %+v", cfg.Uploads)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
}

func TestLoadConfigRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	_, err := LoadConfig()
	if !errors.Is(err, ErrMissingMongoURI) {
		t.Fatalf("expected ErrMissingMongoURI, got %v", err)
	}
}

func TestLoadConfigDisablesEmail(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("EMAIL_ENABLED", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Email.Enabled {
		t.Fatalf("expected email to be disabled")
	}
}
