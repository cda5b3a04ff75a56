package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"todo/internal/config"
	"todo/internal/tasklist"
)

// clearEnv blanks overrides for the duration of the test.
// Empty variables are treated as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvBackend, config.EnvDefaultPriority, config.EnvEditPlacement, config.EnvDataFile} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Dir != dir {
		t.Errorf("expected dir %s, got %s", dir, cfg.Dir)
	}
	if cfg.Backend != config.BackendSQLite {
		t.Errorf("expected sqlite backend, got %s", cfg.Backend)
	}
	if cfg.DefaultPriority != tasklist.PriorityMedium {
		t.Errorf("expected medium priority, got %s", cfg.DefaultPriority)
	}
	if cfg.EditPlacement != tasklist.PlacementPreserve {
		t.Errorf("expected preserve placement, got %s", cfg.EditPlacement)
	}
	if cfg.DataPath() != filepath.Join(dir, "todo.db") {
		t.Errorf("unexpected data path %s", cfg.DataPath())
	}
}

func TestNew_XDGConfigHome(t *testing.T) {
	clearEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != filepath.Join(xdg, "todo") {
		t.Errorf("expected XDG dir, got %s", cfg.Dir)
	}
}

func TestNew_YAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, config.ConfigFile, "backend: bolt\ndefault_priority: high\nedit_placement: end\n")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Backend != config.BackendBolt {
		t.Errorf("expected bolt, got %s", cfg.Backend)
	}
	if cfg.DefaultPriority != tasklist.PriorityHigh {
		t.Errorf("expected high, got %s", cfg.DefaultPriority)
	}
	if cfg.EditPlacement != tasklist.PlacementEnd {
		t.Errorf("expected end, got %s", cfg.EditPlacement)
	}
	if cfg.DataPath() != filepath.Join(dir, "todo.bolt") {
		t.Errorf("unexpected data path %s", cfg.DataPath())
	}
}

func TestNew_EnvFileOverridesYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, config.ConfigFile, "default_priority: high\n")
	writeFile(t, dir, config.EnvFile, "TODO_DEFAULT_PRIORITY=low\nTODO_DATA_FILE=tasks/list.db\n")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DefaultPriority != tasklist.PriorityLow {
		t.Errorf("expected low from .env, got %s", cfg.DefaultPriority)
	}
	if cfg.DataPath() != filepath.Join(dir, "tasks", "list.db") {
		t.Errorf("expected relative data file resolved against dir, got %s", cfg.DataPath())
	}
	// .env must not leak into the process environment
	if os.Getenv(config.EnvDefaultPriority) != "" {
		t.Error("expected process environment untouched")
	}
}

func TestNew_ProcessEnvWins(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, config.EnvFile, "TODO_BACKEND=sqlite\n")
	t.Setenv(config.EnvBackend, "bolt")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend != config.BackendBolt {
		t.Errorf("expected bolt from process env, got %s", cfg.Backend)
	}
}

func TestNew_AbsoluteDataFile(t *testing.T) {
	clearEnv(t)
	abs := filepath.Join(t.TempDir(), "elsewhere.db")
	t.Setenv(config.EnvDataFile, abs)

	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataPath() != abs {
		t.Errorf("expected %s, got %s", abs, cfg.DataPath())
	}
}

func TestNew_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"backend", "backend: postgres\n"},
		{"priority", "default_priority: urgent\n"},
		{"placement", "edit_placement: middle\n"},
		{"syntax", "backend: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			writeFile(t, dir, config.ConfigFile, tt.yaml)

			if _, err := config.New(dir); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	cfg := config.Defaults(dir)
	cfg.DataFile = filepath.Join("data", "todo.db")

	if err := cfg.EnsureDir(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{dir, filepath.Join(dir, "data")} {
		info, err := os.Stat(want)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s to exist: %v", want, err)
		}
	}
}
