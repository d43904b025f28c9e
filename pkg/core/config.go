package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// InstallPathEnv overrides the configured installation path
const InstallPathEnv = "VCENV_INSTALL_PATH"

// Config holds vcenv configuration
type Config struct {
	Installation      Installation `yaml:"installation" toml:"installation"`
	Arch              string       `yaml:"arch,omitempty" toml:"arch"`
	PlatformType      string       `yaml:"platform_type,omitempty" toml:"platform_type"`
	WindowsSDKVersion string       `yaml:"windows_sdk_version,omitempty" toml:"windows_sdk_version"`
	VCVersion         string       `yaml:"vc_version,omitempty" toml:"vc_version"`
	Spectre           bool         `yaml:"spectre,omitempty" toml:"spectre"`
	TempDir           string       `yaml:"temp_dir,omitempty" toml:"temp_dir"`
	Debug             bool         `yaml:"debug" toml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Installation: Installation{InstallationPath: os.Getenv(InstallPathEnv)},
		TempDir:      os.TempDir(),
		Debug:        false,
	}
}

// DefaultPath returns ~/.config/vcenv/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vcenv", "config.yaml"), nil
}

// LoadConfig loads configuration from file. Files ending in .toml are read as
// TOML, anything else as YAML. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if p := os.Getenv(InstallPathEnv); p != "" {
		cfg.Installation.InstallationPath = p
	}
	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var data []byte
	if isTOML(path) {
		var sb strings.Builder
		if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		data = []byte(sb.String())
	} else {
		var err error
		data, err = yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
