package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Endpoint:        "https://newsapi.org/v2/top-headlines",
		Country:         "eg",
		PageSize:        5,
		DefaultCategory: "general",
		Categories:      []string{"general", "sports"},
		SearchDebounce:  "500ms",
		RequestTimeout:  "15s",
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if len(cfg.Categories) == 0 {
		t.Error("expected at least one default category")
	}
	if cfg.DefaultCategory != "general" {
		t.Errorf("expected default category general, got %q", cfg.DefaultCategory)
	}
	if cfg.PageSize != 5 {
		t.Errorf("expected default page_size 5, got %d", cfg.PageSize)
	}
	if err := validate(cfg); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestDebounceDuration(t *testing.T) {
	cfg := &Config{SearchDebounce: "250ms"}
	if d := cfg.DebounceDuration(); d != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", d)
	}

	cfg.SearchDebounce = "invalid"
	if d := cfg.DebounceDuration(); d != 500*time.Millisecond {
		t.Errorf("expected 500ms default for invalid value, got %v", d)
	}
}

func TestTimeoutDuration(t *testing.T) {
	cfg := &Config{RequestTimeout: "3s"}
	if d := cfg.TimeoutDuration(); d != 3*time.Second {
		t.Errorf("expected 3s, got %v", d)
	}

	cfg.RequestTimeout = ""
	if d := cfg.TimeoutDuration(); d != 15*time.Second {
		t.Errorf("expected 15s default, got %v", d)
	}
}

func TestGetPageSize(t *testing.T) {
	if got := (&Config{}).GetPageSize(); got != 5 {
		t.Errorf("expected default page size 5, got %d", got)
	}
	if got := (&Config{PageSize: 20}).GetPageSize(); got != 20 {
		t.Errorf("expected page size 20, got %d", got)
	}
}

func TestResolveAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "from-env")

	cfg := &Config{}
	if got := cfg.ResolveAPIKey(); got != "from-env" {
		t.Errorf("expected key from env, got %q", got)
	}

	cfg.APIKey = "from-file"
	if got := cfg.ResolveAPIKey(); got != "from-file" {
		t.Errorf("expected config key to win, got %q", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `country: us
page_size: 10
default_category: sports
categories:
  - sports
  - science
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Country != "us" {
		t.Errorf("expected country us, got %s", cfg.Country)
	}
	if cfg.PageSize != 10 {
		t.Errorf("expected page size 10, got %d", cfg.PageSize)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[0] != "sports" {
		t.Errorf("expected user categories to replace defaults, got %v", cfg.Categories)
	}
	// Keys missing from the file keep embedded defaults
	if cfg.Endpoint != "https://newsapi.org/v2/top-headlines" {
		t.Errorf("expected default endpoint, got %s", cfg.Endpoint)
	}
	if cfg.SearchDebounce != "500ms" {
		t.Errorf("expected default debounce, got %s", cfg.SearchDebounce)
	}
}

func TestLoadNonexistentWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Categories) == 0 {
		t.Error("expected default categories when config doesn't exist")
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Errorf("expected defaults written to %s: %v", cfgPath, err)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("page_size: 500\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(cfgPath); err == nil {
		t.Error("expected error for out-of-range page_size")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"http endpoint", func(c *Config) { c.Endpoint = "http://localhost:8080/v2/top-headlines" }, false},
		{"file endpoint", func(c *Config) { c.Endpoint = "file:///etc/passwd" }, true},
		{"zero page size", func(c *Config) { c.PageSize = 0 }, true},
		{"page size too large", func(c *Config) { c.PageSize = 101 }, true},
		{"no categories", func(c *Config) { c.Categories = nil }, true},
		{"empty category", func(c *Config) { c.Categories = []string{"general", ""} }, true},
		{"unknown default", func(c *Config) { c.DefaultCategory = "weather" }, true},
		{"bad debounce", func(c *Config) { c.SearchDebounce = "soon" }, true},
		{"bad timeout", func(c *Config) { c.RequestTimeout = "" }, true},
	}
	for _, tt := range tests {
		cfg := validConfig()
		tt.mutate(cfg)
		err := validate(cfg)
		if tt.wantErr && err == nil {
			t.Errorf("%s: expected error, got nil", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.name, err)
		}
	}
}

func TestHasCategory(t *testing.T) {
	cfg := validConfig()
	if !cfg.HasCategory("sports") {
		t.Error("expected sports to be a category")
	}
	if cfg.HasCategory("weather") {
		t.Error("did not expect weather to be a category")
	}
}
