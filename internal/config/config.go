package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the persisted tool state
type Config struct {
	Deployment *Deployment `yaml:"deployment,omitempty"`
}

// configDir is the default config directory
const configDir = ".config/tribenest"
const configFile = "config.yaml"

// New creates an empty Config
func New() *Config {
	return &Config{}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// ConfigPath returns the config file path
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// Load reads the config from disk
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Exposed for tests.
func LoadFrom(path string) (*Config, error) {
	// If config doesn't exist, return empty config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(dir, path)
}

// SaveTo writes the config to an explicit directory and path. Exposed for tests.
func (c *Config) SaveTo(dir, path string) error {
	// Create config directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// SetDeployment records the deployment, replacing any previous record
func (c *Config) SetDeployment(d *Deployment) {
	c.Deployment = d
}

// ClearDeployment removes the deployment record
func (c *Config) ClearDeployment() {
	c.Deployment = nil
}
