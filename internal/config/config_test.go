package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ROOT_DOMAIN", "starchart.com.")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RootDomain != "starchart.com" {
		t.Errorf("expected trimmed root domain, got %q", cfg.RootDomain)
	}
	if cfg.HTTPAddr != ":8080" || cfg.JobsPrefix != "bull" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.RedisDB != 2 {
		t.Errorf("expected REDIS_DB 2, got %d", cfg.RedisDB)
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	t.Setenv("ROOT_DOMAIN", "")
	os.Unsetenv("ROOT_DOMAIN")

	path := filepath.Join(t.TempDir(), ".env")
	content := "ROOT_DOMAIN=example.org\nLOG_LEVEL=debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RootDomain != "example.org" || cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_MissingRootDomain(t *testing.T) {
	t.Setenv("ROOT_DOMAIN", "")

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.env"))
	if err == nil || !strings.Contains(err.Error(), "RootDomain") {
		t.Errorf("expected RootDomain validation error, got %v", err)
	}
}

func TestLoad_BadLogLevel(t *testing.T) {
	t.Setenv("ROOT_DOMAIN", "starchart.com")
	t.Setenv("LOG_LEVEL", "chatty")

	if _, err := Load(""); err == nil {
		t.Errorf("expected invalid log level to be rejected")
	}
}
