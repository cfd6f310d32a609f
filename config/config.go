package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/k1LoW/expand"
)

const appName = "dunoslide"

var (
	homePath       string
	configHomePath string
	stateHomePath  string
)

type Config struct {
	// Theme used when the document does not set one
	Theme string `yaml:"theme,omitempty" json:"theme,omitempty"`
	// Additional themes stored on disk
	Themes []ThemeConfig `yaml:"themes,omitempty" json:"themes,omitempty"`
	// Conditions for slide defaults
	Defaults []DefaultCondition `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	// Default listen settings for host and sample
	Server ServerConfig `yaml:"server,omitempty" json:"server,omitempty"`
	// Path to the Chrome/Chromium executable used by export
	Browser string `yaml:"browser,omitempty" json:"browser,omitempty"`
}

type ThemeConfig struct {
	Name      string `yaml:"name" json:"name"`
	Templates string `yaml:"templates" json:"templates"`
	Static    string `yaml:"static" json:"static"`
}

type DefaultCondition struct {
	If            string `yaml:"if" json:"if"`                                           // CEL condition to check
	Background    string `yaml:"background,omitempty" json:"background,omitempty"`         // background applied when missing
	VerticalAlign string `yaml:"verticalAlign,omitempty" json:"verticalAlign,omitempty"` // vertical_align applied when missing
}

type ServerConfig struct {
	Port int    `yaml:"port,omitempty" json:"port,omitempty"`
	Bind string `yaml:"bind,omitempty" json:"bind,omitempty"`
}

func init() {
	var err error
	homePath, err = os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}
}

// Load loads the configuration from the config file.
// It searches for config files in the following order:
// 1. $XDG_CONFIG_HOME/dunoslide/config-{profile}.yml
// 2. $XDG_CONFIG_HOME/dunoslide/config.yml
// If no config file is found, it returns an empty Config struct.
func Load(profile string) (*Config, error) {
	var configBasePaths []string
	if profile != "" {
		configBasePaths = append(configBasePaths, filepath.Join(configPath(), fmt.Sprintf("config-%s", profile)))
	}
	configBasePaths = append(configBasePaths, filepath.Join(configPath(), "config"))
	for _, basePath := range configBasePaths {
		for _, ext := range []string{".yml", ".yaml"} {
			p := basePath + ext
			b, err := os.ReadFile(p)
			if err != nil {
				continue
			}
			cfg, err := parse(b)
			if err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", p, err)
			}
			return cfg, nil
		}
	}
	// If no config file is found, return an empty config
	return &Config{}, nil
}

func parse(b []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(expand.ExpandenvYAMLBytes(b), cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	for i, t := range cfg.Themes {
		if t.Name == "" {
			return nil, fmt.Errorf("themes[%d]: name is required", i)
		}
		cfg.Themes[i].Templates = expandHome(t.Templates)
		cfg.Themes[i].Static = expandHome(t.Static)
	}
	return cfg, nil
}

func expandHome(p string) string {
	if p == "~" {
		return homePath
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(homePath, p[2:])
	}
	return p
}

// ConfigHomePath returns the path to the configuration directory.
func ConfigHomePath() string {
	return configPath()
}

func configPath() string {
	if configHomePath != "" {
		return configHomePath
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		configHomePath = filepath.Join(v, appName)
	} else {
		configHomePath = filepath.Join(homePath, ".config", appName)
	}
	return configHomePath
}

// StateHomePath returns the path to the state directory.
func StateHomePath() string {
	if stateHomePath != "" {
		return stateHomePath
	}
	if v := os.Getenv("XDG_STATE_HOME"); v != "" {
		stateHomePath = filepath.Join(v, appName)
	} else {
		stateHomePath = filepath.Join(homePath, ".local", "state", appName)
	}
	return stateHomePath
}
