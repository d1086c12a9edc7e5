package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadNeon loads the runner configuration.
// Search order: customPath -> ~/.neonrun/configs/neon.yaml -> ./configs/neon.yaml -> embedded default
// Files only need to set the fields they change; everything else keeps its default.
func LoadNeon(customPath string) (NeonConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("neon.yaml"); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := LoadFile(filepath.Join("configs", "neon.yaml")); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultNeonYAML)
	if err != nil {
		return DefaultNeonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads and parses a single YAML config file.
func LoadFile(path string) (NeonConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NeonConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return NeonConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hard-coded defaults.
func Parse(data []byte) (NeonConfig, error) {
	cfg := DefaultNeonConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NeonConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonrun", "configs", filename)
}
