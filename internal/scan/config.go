package scan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultExemptFiles lists base names that are expected alongside PKI
// artifacts (inventories, serial counters, passphrase files) and are never
// warned about when they fail classification.
var DefaultExemptFiles = []string{"inventory.txt", "ca.pass", "serial"}

// Config holds scanner settings, loaded from an optional YAML file.
type Config struct {
	// ExemptFiles replaces the built-in allow-list of non-artifact file
	// names when non-empty.
	ExemptFiles []string `yaml:"exempt_files"`

	Serve ServeConfig `yaml:"serve"`
}

// ServeConfig holds settings for the HTTP inventory API.
type ServeConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{ExemptFiles: append([]string(nil), DefaultExemptFiles...)}
}

// LoadConfig loads a configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes loads a configuration from YAML bytes. An absent
// exempt_files list falls back to the built-in allow-list.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(cfg.ExemptFiles) == 0 {
		cfg.ExemptFiles = append([]string(nil), DefaultExemptFiles...)
	}
	return cfg, nil
}

// exemptSet returns the allow-list as a lookup set.
func (c *Config) exemptSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.ExemptFiles))
	for _, name := range c.ExemptFiles {
		set[name] = struct{}{}
	}
	return set
}
