package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DB", "")
	t.Setenv("PORT", "")
	t.Setenv("MENU_CACHE_TTL", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("AWS_REGION", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mongo.Database != "myBlog" {
		t.Fatalf("expected default database myBlog, got %s", cfg.Mongo.Database)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Cache.MenuTTL != 60*time.Second {
		t.Fatalf("expected 60s cache ttl, got %s", cfg.Cache.MenuTTL)
	}
	if cfg.AWS.Region != "us-east-1" {
		t.Fatalf("expected default region us-east-1, got %s", cfg.AWS.Region)
	}
	if cfg.Uploads.Dir != "public/uploads" || cfg.Uploads.URLPrefix != "/uploads" {
		t.Fatalf("unexpected upload defaults: %+v", cfg.Uploads)
	}
}

func TestLoad_MissingMongoURI(t *testing.T) {
	t.Setenv("MONGODB_URI", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingMongoURI) {
		t.Fatalf("expected ErrMissingMongoURI, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	t.Setenv("MENU_CACHE_TTL", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad MENU_CACHE_TTL")
	}

	t.Setenv("MENU_CACHE_TTL", "5m")
	t.Setenv("TELEGRAM_CHAT_ID", "kitchen")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad TELEGRAM_CHAT_ID")
	}

	t.Setenv("TELEGRAM_CHAT_ID", "-100123")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Telegram.ChatID != -100123 || cfg.Cache.MenuTTL != 5*time.Minute {
		t.Fatalf("unexpected parsed values: %+v %+v", cfg.Telegram, cfg.Cache)
	}
}
