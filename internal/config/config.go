package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// APIKeyEnv is consulted when the config file carries no api_key.
const APIKeyEnv = "NEWS_API_KEY"

const maxPageSize = 100

type Config struct {
	Endpoint        string   `yaml:"endpoint"`
	Country         string   `yaml:"country"`
	PageSize        int      `yaml:"page_size"`
	DefaultCategory string   `yaml:"default_category"`
	Categories      []string `yaml:"categories"`
	SearchDebounce  string   `yaml:"search_debounce"`
	RequestTimeout  string   `yaml:"request_timeout"`
	APIKey          string   `yaml:"api_key,omitempty"`
	LogLevel        string   `yaml:"log_level,omitempty"`
}

// ResolveAPIKey returns the configured key, falling back to the environment.
// A .env file in the working directory is loaded first; variables already
// present in the environment win over it.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	_ = godotenv.Load()
	return os.Getenv(APIKeyEnv)
}

func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.SearchDebounce)
	if err != nil || d <= 0 {
		return 500 * time.Millisecond
	}
	return d
}

func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// GetPageSize returns the page size, defaulting to 5.
func (c *Config) GetPageSize() int {
	if c.PageSize <= 0 {
		return 5
	}
	return c.PageSize
}

// HasCategory reports whether name is one of the configured categories.
func (c *Config) HasCategory(name string) bool {
	return slices.Contains(c.Categories, name)
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "headlines", "config.yaml")
}

func LogPath() string {
	return filepath.Join(xdg.StateHome, "headlines", "headlines.log")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config at path (or the default location). Keys missing from
// the file keep their embedded default values.
func Load(path string) (*Config, error) {
	cfg, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Non-fatal: the embedded defaults still apply
			_ = writeDefaults(path)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("endpoint: invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint: url scheme must be http or https, got %q", u.Scheme)
	}
	if cfg.PageSize < 1 || cfg.PageSize > maxPageSize {
		return fmt.Errorf("page_size must be between 1 and %d, got %d", maxPageSize, cfg.PageSize)
	}
	if len(cfg.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	for i, c := range cfg.Categories {
		if c == "" {
			return fmt.Errorf("category %d: name is required", i)
		}
	}
	if !cfg.HasCategory(cfg.DefaultCategory) {
		return fmt.Errorf("default_category %q is not in categories", cfg.DefaultCategory)
	}
	if _, err := time.ParseDuration(cfg.SearchDebounce); err != nil {
		return fmt.Errorf("search_debounce: %w", err)
	}
	if _, err := time.ParseDuration(cfg.RequestTimeout); err != nil {
		return fmt.Errorf("request_timeout: %w", err)
	}
	return nil
}
