package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the optional config file inside the system dir.
const ConfigFileName = "config.yaml"

// FileConfig is the on-disk vault configuration. Zero values mean default.
// Explicit options passed to Open take precedence over it.
type FileConfig struct {
	Key         string `yaml:"key,omitempty"`
	Format      string `yaml:"format,omitempty"`
	EventBuffer int    `yaml:"event_buffer,omitempty"`
}

// LoadConfig reads dataDir/config.yaml. A missing file yields a zero config.
func LoadConfig(dataDir string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(filepath.Join(dataDir, ConfigFileName))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", ConfigFileName, err)
	}
	return cfg, nil
}

// WriteConfig writes cfg to dataDir/config.yaml, creating dataDir if needed.
func WriteConfig(dataDir string, cfg FileConfig) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir, ConfigFileName), data, 0644)
}

// apply fills options left unset by the caller from the file config.
func (c FileConfig) apply(o *options) {
	if _, ok := o.config["key"]; !ok && c.Key != "" {
		o.config["key"] = c.Key
	}
	if _, ok := o.config["format"]; !ok && c.Format != "" {
		o.config["format"] = c.Format
	}
	if _, ok := o.config["event_buffer"]; !ok && c.EventBuffer > 0 {
		o.config["event_buffer"] = c.EventBuffer
	}
}
