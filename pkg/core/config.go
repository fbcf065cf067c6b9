// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/pkgtools/apt-world/pkg/status"
)

// Config holds apt-world configuration
type Config struct {
	StatusFile         string   `yaml:"status_file"`
	ExtendedStatesFile string   `yaml:"extended_states_file"`
	NoColor            bool     `yaml:"no_color"`
	BasePriorities     []string `yaml:"base_priorities"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		StatusFile:         status.DefaultStatusPath,
		ExtendedStatesFile: status.DefaultExtendedStatesPath,
	}
}

// DefaultConfigPath is where LoadConfig looks when no path is given
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "apt-world", "config.yaml")
}

// LoadConfig loads configuration from file. A missing file is not an
// error, the defaults apply; a file that exists but does not parse is.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Unset fields fall back to the defaults
	if cfg.StatusFile == "" {
		cfg.StatusFile = status.DefaultStatusPath
	}
	if cfg.ExtendedStatesFile == "" {
		cfg.ExtendedStatesFile = status.DefaultExtendedStatesPath
	}

	return cfg, nil
}

// BasePrioritySet converts the configured base priorities into typed
// values for the classifier. Empty means the classifier's defaults.
func (c *Config) BasePrioritySet() []status.Priority {
	if len(c.BasePriorities) == 0 {
		return nil
	}
	priorities := make([]status.Priority, 0, len(c.BasePriorities))
	for _, p := range c.BasePriorities {
		priorities = append(priorities, status.ParsePriority(p))
	}
	return priorities
}
