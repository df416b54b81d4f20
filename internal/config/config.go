package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the Satellite connection and cache settings.
// Stored in ~/.config/satellite-inventory/config.yaml by default.
type Config struct {
	Host         string `yaml:"host"`          // e.g. https://satellite.example.com
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Organization string `yaml:"organization"`
	CacheDir     string `yaml:"cache_dir"`
	CacheMaxAge  int    `yaml:"cache_max_age"` // seconds
	Insecure     bool   `yaml:"insecure"`      // skip TLS verification
}

// DefaultPath returns ~/.config/satellite-inventory/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "satellite-inventory", "config.yaml"), nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", path, err)
	}

	// Env var overrides file password
	if p := os.Getenv("SATELLITE_PASSWORD"); p != "" {
		cfg.Password = p
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("%s: 'host' is required", path)
	}
	if !strings.HasPrefix(cfg.Host, "http://") && !strings.HasPrefix(cfg.Host, "https://") {
		return nil, fmt.Errorf("%s: 'host' must start with http:// or https://", path)
	}
	if cfg.Username == "" {
		return nil, fmt.Errorf("%s: 'username' is required", path)
	}
	if cfg.Password == "" {
		return nil, fmt.Errorf("%s: 'password' is required (or set SATELLITE_PASSWORD)", path)
	}
	if cfg.Organization == "" {
		return nil, fmt.Errorf("%s: 'organization' is required", path)
	}
	if cfg.CacheDir == "" {
		return nil, fmt.Errorf("%s: 'cache_dir' is required", path)
	}
	if cfg.CacheMaxAge <= 0 {
		return nil, fmt.Errorf("%s: 'cache_max_age' must be a positive number of seconds", path)
	}

	return &cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
// The file carries 0600 perms since it holds credentials.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
