// Package config provides configuration loading and management for anatspace.
// It handles loading named orientation conventions from YAML files and
// provides default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConventionSpec describes one named orientation convention in the
// configuration file.
type ConventionSpec struct {
	// Origin is the compact origin specification, e.g. "asl": one letter
	// per storage axis naming the direction index 0 points to.
	Origin string `yaml:"origin"`

	// Shape is the voxel extent of the space's bounding box per axis.
	// Zero entries mean the extent is unknown.
	Shape [3]int `yaml:"shape,omitempty"`

	// Resolution is the physical voxel spacing per axis in mm. Zero
	// entries default to 1.
	Resolution [3]float64 `yaml:"resolution,omitempty"`
}

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Conventions maps names to orientation conventions so callers can
	// refer to spaces like "allen" instead of spelling out letters.
	Conventions map[string]ConventionSpec `yaml:"conventions"`

	// Defaults selects the conventions used when the command line does not
	// name them explicitly.
	Defaults struct {
		// Source is the convention volumes are assumed to be stored in.
		Source string `yaml:"source"`

		// Target is the convention volumes are reoriented to.
		Target string `yaml:"target"`
	} `yaml:"defaults"`

	// Output parameters.
	Output struct {
		// Verbose controls the level of logging output.
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values: the common
// atlas conventions and an asl→psl default mapping.
func DefaultConfig() *Config {
	cfg := &Config{
		Conventions: map[string]ConventionSpec{
			// Allen Mouse Brain atlas at 25um.
			"allen": {
				Origin:     "asl",
				Shape:      [3]int{528, 320, 456},
				Resolution: [3]float64{0.025, 0.025, 0.025},
			},
			"asl": {Origin: "asl"},
			"psl": {Origin: "psl"},
			"ipl": {Origin: "ipl"},
		},
	}

	cfg.Defaults.Source = "asl"
	cfg.Defaults.Target = "psl"
	cfg.Output.Verbose = true

	return cfg
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Resolve looks up a convention by name, falling back to interpreting the
// name itself as an origin specification (e.g. "ipr") when it is not a
// configured convention.
func (cfg *Config) Resolve(name string) ConventionSpec {
	if spec, ok := cfg.Conventions[name]; ok {
		return spec
	}
	return ConventionSpec{Origin: name}
}
