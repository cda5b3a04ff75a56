// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todo/internal/storage"
)

// FakeBackend is an in-memory implementation of storage.Backend for testing.
type FakeBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
	puts   int
	closed bool

	// Error injection for testing
	GetErr   map[string]error // key -> error
	PutErr   error
	CloseErr error
}

// NewFakeBackend creates an empty FakeBackend.
func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		values: make(map[string][]byte),
		GetErr: make(map[string]error),
	}
}

// Set stores a raw value, bypassing error injection and the Put counter.
func (f *FakeBackend) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = []byte(value)
}

// Raw returns the stored value for key as a string.
func (f *FakeBackend) Raw(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return string(v), ok
}

// Puts returns the number of successful Put calls.
func (f *FakeBackend) Puts() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.puts
}

// Closed reports whether Close was called.
func (f *FakeBackend) Closed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

// Get implements storage.Backend.
func (f *FakeBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if err, ok := f.GetErr[key]; ok && err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := f.values[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put implements storage.Backend.
func (f *FakeBackend) Put(ctx context.Context, entries ...storage.Entry) error {
	if f.PutErr != nil {
		return f.PutErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range entries {
		v := make([]byte, len(e.Value))
		copy(v, e.Value)
		f.values[e.Key] = v
	}
	f.puts++
	return nil
}

// Close implements storage.Backend.
func (f *FakeBackend) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.CloseErr
}
