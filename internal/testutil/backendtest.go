package testutil

import (
	"context"
	"errors"
	"testing"

	"todo/internal/storage"
)

// BackendOpener opens a backend at a fixed location. Calling it again after
// Close must reopen the same data.
type BackendOpener func(t *testing.T) storage.Backend

// RunBackendTests checks the storage.Backend contract against a real backend.
func RunBackendTests(t *testing.T, open BackendOpener) {
	t.Helper()
	ctx := context.Background()

	t.Run("MissingKey", func(t *testing.T) {
		b := open(t)
		defer b.Close()

		_, err := b.Get(ctx, "absent")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("PutOverwrites", func(t *testing.T) {
		b := open(t)
		defer b.Close()

		if err := b.Put(ctx, storage.Entry{Key: "k", Value: []byte("one")}); err != nil {
			t.Fatalf("put: %v", err)
		}
		if err := b.Put(ctx, storage.Entry{Key: "k", Value: []byte("two")}); err != nil {
			t.Fatalf("put: %v", err)
		}

		got, err := b.Get(ctx, "k")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if string(got) != "two" {
			t.Errorf("expected %q, got %q", "two", got)
		}
	})

	t.Run("PutMany", func(t *testing.T) {
		b := open(t)
		defer b.Close()

		err := b.Put(ctx,
			storage.Entry{Key: storage.TaskListKey, Value: []byte("[]")},
			storage.Entry{Key: storage.NextIDKey, Value: []byte("7")},
		)
		if err != nil {
			t.Fatalf("put: %v", err)
		}

		for key, want := range map[string]string{storage.TaskListKey: "[]", storage.NextIDKey: "7"} {
			got, err := b.Get(ctx, key)
			if err != nil {
				t.Fatalf("get %s: %v", key, err)
			}
			if string(got) != want {
				t.Errorf("%s: expected %q, got %q", key, want, got)
			}
		}
	})

	t.Run("SurvivesReopen", func(t *testing.T) {
		b := open(t)
		if err := b.Put(ctx, storage.Entry{Key: "persist", Value: []byte("yes")}); err != nil {
			t.Fatalf("put: %v", err)
		}
		if err := b.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}

		b = open(t)
		defer b.Close()
		got, err := b.Get(ctx, "persist")
		if err != nil {
			t.Fatalf("get after reopen: %v", err)
		}
		if string(got) != "yes" {
			t.Errorf("expected %q, got %q", "yes", got)
		}
	})
}
