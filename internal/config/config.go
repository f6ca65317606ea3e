package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds optional defaults loaded from ~/.config/hwc-report/config.yaml.
type Config struct {
	OutputDir    string `yaml:"output_dir"`
	LogLevel     string `yaml:"log_level"`
	HTTPTimeout  int    `yaml:"http_timeout"` // seconds, 0 keeps the SDK default
	RawAccessKey bool   `yaml:"raw_access_key"`
}

// Load reads the config file. Returns zero-value Config if the file doesn't exist.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFile(filepath.Join(home, ".config", "hwc-report", "config.yaml"))
}

// LoadFile reads a config file at path. A missing file yields a zero-value Config.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Merge applies CLI flag overrides. Flags take precedence over config defaults.
func (c *Config) Merge(outputDir, logLevel string) (string, string) {
	o := c.OutputDir
	if outputDir != "" {
		o = outputDir
	}
	if o == "" {
		o = "."
	}
	l := c.LogLevel
	if logLevel != "" {
		l = logLevel
	}
	if l == "" {
		l = "info"
	}
	return o, l
}

// Timeout returns the configured HTTP timeout, or zero when unset.
func (c *Config) Timeout() time.Duration {
	if c.HTTPTimeout <= 0 {
		return 0
	}
	return time.Duration(c.HTTPTimeout) * time.Second
}
