package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // no config file present

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Storage.Backend != "json" {
		t.Errorf("Backend = %q, want json", cfg.Storage.Backend)
	}
	if !cfg.Archive.Enabled {
		t.Error("Archive.Enabled = false, want true by default")
	}
	if !cfg.Privacy.RedactPII {
		t.Error("Privacy.RedactPII = false, want true by default")
	}
	if strings.HasPrefix(cfg.DataPath, "~") {
		t.Errorf("DataPath = %q, want home expanded", cfg.DataPath)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	content := `data_path = "/srv/haven"

[storage]
backend = "sqlite"

[privacy]
redact_pii = false
`
	cfgDir := filepath.Join(dir, "haven")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "/srv/haven" {
		t.Errorf("DataPath = %q, want /srv/haven", cfg.DataPath)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", cfg.Storage.Backend)
	}
	if cfg.Privacy.RedactPII {
		t.Error("RedactPII = true, want false from file")
	}
}

func TestLoad_BadBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "haven")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "[storage]\nbackend = \"postgres\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load with unknown backend succeeded, want error")
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := WriteDefault("/srv/haven")
	if err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if !strings.Contains(string(data), `data_path = "/srv/haven"`) {
		t.Errorf("written config missing data_path:\n%s", data)
	}

	// Second call must not clobber an existing file.
	if err := os.WriteFile(path, []byte("data_path = \"/custom\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteDefault("/other"); err != nil {
		t.Fatalf("second WriteDefault: %v", err)
	}
	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), "/custom") {
		t.Error("WriteDefault overwrote an existing config")
	}
}

func TestDirs(t *testing.T) {
	cfg := Config{DataPath: "/srv/haven"}
	if got := cfg.StateDir(); got != "/srv/haven/state" {
		t.Errorf("StateDir = %q", got)
	}
	if got := cfg.ArchiveDir(); got != "/srv/haven/archive" {
		t.Errorf("ArchiveDir = %q", got)
	}
}
