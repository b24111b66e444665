package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the cparse tool.
type Config struct {
	Scan    ScanConfig    `yaml:"scan"`
	Compile CompileConfig `yaml:"compile"`
	Check   CheckConfig   `yaml:"check"`
}

// ScanConfig controls which files the indexer visits.
type ScanConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// CompileConfig controls the external compiler invocation.
type CompileConfig struct {
	Compiler       string   `yaml:"compiler"`
	Flags          []string `yaml:"flags"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

// CheckConfig controls the source convention check.
type CheckConfig struct {
	Entry         string `yaml:"entry"`          // entry function name
	RequiredFinal string `yaml:"required_final"` // required last body line
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Includes: []string{"**/*.c", "**/*.h"},
			Excludes: []string{"**/build/**", "**/.git/**", "**/.cparse/**"},
		},
		Compile: CompileConfig{
			Compiler:       "gcc",
			TimeoutSeconds: 30,
		},
		Check: CheckConfig{
			Entry:         "main",
			RequiredFinal: "return 0;",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults for
// missing keys and for a missing file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for cparse.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "cparse.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".cparse", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CatalogDBPath returns the path to the catalog database.
func CatalogDBPath(dir string) string {
	return filepath.Join(dir, ".cparse", "catalog.db")
}

// EnsureCparseDir ensures the .cparse directory exists.
func EnsureCparseDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".cparse"), 0755)
}
