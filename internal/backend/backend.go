// Package backend opens the storage.Backend selected by configuration.
package backend

import (
	"context"
	"fmt"

	"todo/internal/backend/boltkv"
	"todo/internal/backend/sqlitekv"
	"todo/internal/config"
	"todo/internal/storage"
)

// Open creates the config and data directories and opens the backend
// named by cfg.Backend at cfg.DataPath().
func Open(ctx context.Context, cfg *config.Config) (storage.Backend, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.EnsureDir(); err != nil {
		return nil, err
	}

	// Avoid returning a typed nil inside the interface on failure.
	switch cfg.Backend {
	case config.BackendSQLite, "":
		s, err := sqlitekv.Open(cfg.DataPath())
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendBolt:
		s, err := boltkv.Open(cfg.DataPath())
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}
