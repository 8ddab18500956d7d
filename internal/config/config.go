package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pankajredekar/prodcat/internal/search"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name looked up when no --config is given.
const DefaultConfigFile = "prodcat.yml"

const (
	sqliteScheme   = "sqlite://"
	postgresScheme = "postgres://"
	postgresqlURL  = "postgresql://"
	memoryDSN      = ":memory:"
)

type Config struct {
	DatabaseURL string `yaml:"database_url"`
	SearchMode  string `yaml:"search_mode"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"` // auto, console or json
	Output      string `yaml:"output,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.setDefaults()

	// Resolve a relative sqlite file against the config file location
	if path, ok := cfg.SQLitePath(); ok && path != memoryDSN && !filepath.IsAbs(path) {
		cfg.DatabaseURL = sqliteScheme + filepath.Join(filepath.Dir(configPath), path)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = sqliteScheme + "products.db"
	}
	if c.SearchMode == "" {
		c.SearchMode = "code"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "auto"
	}
}

// ApplyEnv overrides file values with PRODCAT_DATABASE_URL, LOG_LEVEL and
// LOG_FORMAT when they are set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PRODCAT_DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
}

// SQLitePath returns the file path of a sqlite:// database URL.
func (c *Config) SQLitePath() (string, bool) {
	if !strings.HasPrefix(c.DatabaseURL, sqliteScheme) {
		return "", false
	}
	return strings.TrimPrefix(c.DatabaseURL, sqliteScheme), true
}

// IsPostgres reports whether the database URL targets PostgreSQL.
func (c *Config) IsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, postgresScheme) || strings.HasPrefix(c.DatabaseURL, postgresqlURL)
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("database_url is required")
	}
	if path, ok := c.SQLitePath(); ok {
		if path == "" {
			return fmt.Errorf("database_url has an empty sqlite path")
		}
	} else if !c.IsPostgres() {
		return fmt.Errorf("unsupported database URL: %s", c.DatabaseURL)
	}
	mode, err := search.ParseMode(c.SearchMode)
	if err != nil {
		return fmt.Errorf("search_mode must be one of code, name, format (got %q)", c.SearchMode)
	}
	c.SearchMode = string(mode)
	switch c.LogFormat {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("log_format must be one of auto, console, json (got %q)", c.LogFormat)
	}
	return nil
}

// Write stores the configuration as YAML at path.
func (c *Config) Write(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
