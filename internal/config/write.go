package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the haven config directory path. Uses
// $XDG_CONFIG_HOME/haven if set, otherwise ~/.config/haven.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "haven")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "haven")
}

// WriteDefault writes a default config.toml pointing to dataPath.
// Returns the config file path. Skips if config.toml already exists.
func WriteDefault(dataPath string) (string, error) {
	dir := ConfigDir()
	path := filepath.Join(dir, "config.toml")

	if _, err := os.Stat(path); err == nil {
		return path, nil // already exists
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}

	portablePath := CompressHome(dataPath)

	content := fmt.Sprintf(`data_path = %q

[storage]
backend = "json"

[archive]
enabled = true

[privacy]
redact_pii = true
`, portablePath)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return path, nil
}

// CompressHome replaces the home directory prefix with ~ for a
// portable config value.
func CompressHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
