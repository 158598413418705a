package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all haven configuration.
type Config struct {
	DataPath string `toml:"data_path"`

	Storage StorageConfig `toml:"storage"`
	Archive ArchiveConfig `toml:"archive"`
	Privacy PrivacyConfig `toml:"privacy"`
}

type StorageConfig struct {
	Backend string `toml:"backend"` // "json" or "sqlite"
}

type ArchiveConfig struct {
	Enabled bool `toml:"enabled"`
}

type PrivacyConfig struct {
	RedactPII bool `toml:"redact_pii"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DataPath: "~/.local/share/haven",
		Storage: StorageConfig{
			Backend: "json",
		},
		Archive: ArchiveConfig{
			Enabled: true,
		},
		Privacy: PrivacyConfig{
			RedactPII: true,
		},
	}
}

// Load reads config from the standard path, falling back to defaults.
func Load() (Config, error) {
	cfg := DefaultConfig()

	paths := configPaths()
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		}
	}

	cfg.DataPath = expandHome(cfg.DataPath)

	if cfg.Storage.Backend != "json" && cfg.Storage.Backend != "sqlite" {
		return cfg, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "haven", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "haven", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// StateDir returns the directory holding the history file or the
// SQLite database.
func (c Config) StateDir() string {
	return filepath.Join(c.DataPath, "state")
}

// ArchiveDir returns the directory holding compressed session records.
func (c Config) ArchiveDir() string {
	return filepath.Join(c.DataPath, "archive")
}
