// Package config resolves webhook settings from flags, environment
// variables, and an optional config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config holds file-level defaults. Flags and environment variables take
// precedence over it.
type Config struct {
	WebhookURL string `yaml:"webhook_url"`
	Secret     string `yaml:"secret"`
}

// MissingError reports a required setting absent from every source.
type MissingError struct {
	EnvVar string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing %s environment variable or command argument", e.EnvVar)
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "lark-notifier", "config.yaml")
}

// Load reads the config file at path, falling back to DefaultConfigPath
// when path is empty. A missing default file yields an empty config, not an
// error; an explicitly given path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve returns the first non-empty value of flag > environment > config
// file, or a MissingError naming the environment variable.
func Resolve(flagValue, envName, fileValue string) (string, error) {
	if v := ResolveOptional(flagValue, envName, fileValue); v != "" {
		return v, nil
	}
	return "", &MissingError{EnvVar: envName}
}

// ResolveOptional is Resolve for settings that may legitimately be absent;
// it returns the empty string when no source supplies a value.
func ResolveOptional(flagValue, envName, fileValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(envName); v != "" {
		return v
	}
	return fileValue
}
