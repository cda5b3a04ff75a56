package boltkv_test

import (
	"context"
	"path/filepath"
	"testing"

	"todo/internal/backend/boltkv"
	"todo/internal/storage"
	"todo/internal/testutil"
)

func TestBackendContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.bolt")

	testutil.RunBackendTests(t, func(t *testing.T) storage.Backend {
		s, err := boltkv.Open(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		return s
	})
}

func TestCancelledContext(t *testing.T) {
	s, err := boltkv.Open(filepath.Join(t.TempDir(), "todo.bolt"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Put(ctx, storage.Entry{Key: "k", Value: []byte("v")}); err == nil {
		t.Error("expected error for cancelled context")
	}
	if _, err := s.Get(ctx, "k"); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestOpen_LockedByAnotherHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.bolt")
	first, err := boltkv.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer first.Close()

	if _, err := boltkv.Open(path); err == nil {
		t.Error("expected second open to time out on the file lock")
	}
}
