package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"tasklist/internal/config"
)

// unsetenv removes keys for the duration of the test.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // registers restore
		os.Unsetenv(k)
	}
}

func TestNew_Defaults(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)
	unsetenv(t, "TASKLIST_DATA_DIR", "TASKLIST_DB_FILE", "TASKLIST_LOG_FILE", "TASKLIST_DEBUG")

	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	wantDir := filepath.Join(xdg, "tasklist")
	if cfg.Dir != wantDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir, wantDir)
	}
	if got, want := cfg.DBPath(), filepath.Join(wantDir, "tasklist.db"); got != want {
		t.Errorf("DBPath = %q, want %q", got, want)
	}
	if got, want := cfg.LogPath(), filepath.Join(wantDir, "tasklist.log"); got != want {
		t.Errorf("LogPath = %q, want %q", got, want)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestNew_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "ui.log")
	t.Setenv("TASKLIST_DATA_DIR", dir)
	t.Setenv("TASKLIST_DB_FILE", "other.db")
	t.Setenv("TASKLIST_LOG_FILE", logPath)
	t.Setenv("TASKLIST_DEBUG", "true")

	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if cfg.Dir != dir {
		t.Errorf("Dir = %q, want %q", cfg.Dir, dir)
	}
	if got, want := cfg.DBPath(), filepath.Join(dir, "other.db"); got != want {
		t.Errorf("DBPath = %q, want %q", got, want)
	}
	if got := cfg.LogPath(); got != logPath {
		t.Errorf("LogPath = %q, want absolute %q", got, logPath)
	}
	if !cfg.Debug {
		t.Error("Debug should be enabled by TASKLIST_DEBUG")
	}
}

func TestNew_FlagBeatsEnv(t *testing.T) {
	unsetenv(t, "TASKLIST_DEBUG")
	t.Setenv("TASKLIST_DATA_DIR", t.TempDir())
	flagDir := t.TempDir()

	cfg, err := config.New(flagDir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if cfg.Dir != flagDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir, flagDir)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	cfg := &config.Config{Dir: dir}

	if err := cfg.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	// Zero-value file names fall back to defaults
	if got, want := cfg.DBPath(), filepath.Join(dir, "tasklist.db"); got != want {
		t.Errorf("DBPath = %q, want %q", got, want)
	}
}
