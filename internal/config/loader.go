package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const configFile = "crazytype.yaml"

// Load loads the crazytype configuration.
// Search order: customPath -> ~/.crazytype/configs/crazytype.yaml ->
// ./configs/crazytype.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (CrazyTypeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultCrazyTypeConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DefaultCrazyTypeConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{filepath.Join("configs", configFile)}
	if userPath := userConfigPath(configFile); userPath != "" {
		candidates = append([]string{userPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(path, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := decode(configFile, defaultCrazyTypeYAML)
	if err != nil {
		return DefaultCrazyTypeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses YAML, or TOML when the path ends in .toml, on top of the defaults.
func decode(path string, data []byte) (CrazyTypeConfig, error) {
	cfg := DefaultCrazyTypeConfig()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crazytype", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
