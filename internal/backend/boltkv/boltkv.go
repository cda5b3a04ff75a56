// Package boltkv implements the storage.Backend interface on a bbolt file.
package boltkv

import (
	"context"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"todo/internal/storage"
)

// bucketName is the single bucket holding all keys.
var bucketName = []byte("todo")

// LockTimeout bounds how long Open waits for another process holding the file.
const LockTimeout = time.Second

// Store implements storage.Backend using bbolt.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the bbolt file at path. The directory must exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: LockTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Get implements storage.Backend.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v == nil {
			return storage.ErrNotFound
		}
		// v is only valid inside the transaction
		value = make([]byte, len(v))
		copy(value, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Put implements storage.Backend. All entries are written in one transaction.
func (s *Store) Put(ctx context.Context, entries ...storage.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		for _, e := range entries {
			if err := b.Put([]byte(e.Key), e.Value); err != nil {
				return fmt.Errorf("failed to write %s: %w", e.Key, err)
			}
		}
		return nil
	})
}

// Close implements storage.Backend.
func (s *Store) Close() error {
	return s.db.Close()
}
