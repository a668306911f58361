package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Server.Addr != ":4000" {
		t.Errorf("addr = %q, want :4000", cfg.Server.Addr)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("cache ttl = %s, want 5m", cfg.Cache.TTL)
	}
	if cfg.Grid.Size != 15 {
		t.Errorf("grid size = %d, want 15", cfg.Grid.Size)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9999"
grid:
  size: 20
cache:
  ttl: 1m
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":9999" {
		t.Errorf("addr = %q, want :9999", cfg.Server.Addr)
	}
	if cfg.Grid.Size != 20 {
		t.Errorf("grid size = %d, want 20", cfg.Grid.Size)
	}
	if cfg.Cache.TTL != time.Minute {
		t.Errorf("cache ttl = %s, want 1m", cfg.Cache.TTL)
	}
	// Untouched fields keep defaults.
	if cfg.OpenAI.Timeout != 8*time.Second {
		t.Errorf("openai timeout = %s, want default 8s", cfg.OpenAI.Timeout)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/config.yaml")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("error = %v, want ErrConfigParse", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":7777")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("CACHE_MAX_ENTRIES", "32")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":7777" {
		t.Errorf("addr = %q, want env override :7777", cfg.Server.Addr)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if cfg.Cache.MaxEntries != 32 {
		t.Errorf("max entries = %d, want 32", cfg.Cache.MaxEntries)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Server.Addr = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty addr should fail validation")
	}

	cfg = Default()
	cfg.Grid.Size = -1
	if err := cfg.Validate(); err == nil {
		t.Error("negative grid size should fail validation")
	}

	cfg = Default()
	cfg.Contact.SMTPPort = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("out-of-range SMTP port should fail validation")
	}
}

func TestContactConfigured(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.ContactConfigured() {
		t.Error("default config should not report a configured relay")
	}

	cfg.Contact.SMTPHost = "smtp.example.com"
	cfg.Contact.From = "noreply@example.com"
	cfg.Contact.To = "owner@example.com"
	if !cfg.ContactConfigured() {
		t.Error("fully set relay should report configured")
	}
}
