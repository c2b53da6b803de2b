// Package config loads the optional enumrepr configuration file.
//
// The file may be YAML (enumrepr.yaml, enumrepr.yml) or TOML
// (enumrepr.toml). Every setting can also be given on the command line,
// which takes precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultOutput   = "enumrepr_gen.go"
	DefaultRuntime  = "enumrepr"
	DefaultLogLevel = "info"
)

// FileNames are the config file names looked up by Find, in order.
var FileNames = []string{"enumrepr.yaml", "enumrepr.yml", "enumrepr.toml"}

// ErrUnknownFormat is returned for config files with an unsupported extension.
var ErrUnknownFormat = errors.New("unknown config format")

// Config is the generator configuration.
type Config struct {
	// Types lists the enum type names to generate conversions for.
	Types []string `yaml:"types" toml:"types"`
	// Output is the generated file name, relative to each package directory.
	Output string `yaml:"output" toml:"output"`
	// Tags are build tags used when loading packages.
	Tags []string `yaml:"tags" toml:"tags"`
	// Tests includes test files when loading packages.
	Tests bool `yaml:"tests" toml:"tests"`
	// Runtime is the import path of the runtime support package.
	Runtime string `yaml:"runtime" toml:"runtime"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a config file, choosing the format from its
// extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, ext)
	}
}

// ParseYAML parses YAML data into a Config.
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// ParseTOML parses TOML data into a Config. Unknown keys are rejected.
func ParseTOML(data []byte) (*Config, error) {
	var cfg Config

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys: %v", undecoded)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// Find looks for a config file in dir. It returns an empty path and no error
// when there is none.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)

		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}

		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking config file %s: %w", path, err)
		}
	}

	return "", nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	if cfg.Runtime == "" {
		cfg.Runtime = DefaultRuntime
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
