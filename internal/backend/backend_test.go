package backend_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"todo/internal/backend"
	"todo/internal/config"
)

func TestOpen_SelectsBackend(t *testing.T) {
	for _, name := range []string{config.BackendSQLite, config.BackendBolt} {
		t.Run(name, func(t *testing.T) {
			cfg := config.Defaults(t.TempDir())
			cfg.Backend = name

			b, err := backend.Open(context.Background(), cfg)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer b.Close()

			if _, err := os.Stat(cfg.DataPath()); err != nil {
				t.Errorf("expected data file at %s: %v", cfg.DataPath(), err)
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	cfg := config.Defaults(t.TempDir())
	cfg.Backend = "postgres"

	if _, err := backend.Open(context.Background(), cfg); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestOpen_CustomDataFile(t *testing.T) {
	cfg := config.Defaults(t.TempDir())
	cfg.DataFile = "custom.db"

	b, err := backend.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()

	if _, err := os.Stat(filepath.Join(cfg.Dir, "custom.db")); err != nil {
		t.Errorf("expected custom data file: %v", err)
	}
}

func TestOpen_CreatesDataDirectory(t *testing.T) {
	for _, name := range []string{config.BackendSQLite, config.BackendBolt} {
		t.Run(name, func(t *testing.T) {
			cfg := config.Defaults(filepath.Join(t.TempDir(), "config"))
			cfg.Backend = name
			cfg.DataFile = filepath.Join("nested", "dir", "tasks")

			b, err := backend.Open(context.Background(), cfg)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer b.Close()

			if _, err := os.Stat(filepath.Join(cfg.Dir, "nested", "dir", "tasks")); err != nil {
				t.Errorf("expected data file in nested directory: %v", err)
			}
		})
	}
}
