package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"
)

const syncBucket = "sync"

// BoltArea implements Area on a BoltDB file.
type BoltArea struct {
	db   *bbolt.DB
	path string
}

// NewBoltArea opens (or creates) the BoltDB file at path.
func NewBoltArea(path string) (*BoltArea, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(syncBucket)); err != nil {
			return fmt.Errorf("create sync bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltArea{db: db, path: cleanPath}, nil
}

// Path returns the database file path.
func (b *BoltArea) Path() string {
	return b.path
}

func (b *BoltArea) Get(keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket, err := b.bucket(tx)
		if err != nil {
			return err
		}
		for _, k := range keys {
			// Values are only valid inside the transaction.
			if v := bucket.Get([]byte(k)); v != nil {
				out[k] = append([]byte(nil), v...)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *BoltArea) Set(items map[string][]byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := b.bucket(tx)
		if err != nil {
			return err
		}
		for k, v := range items {
			if err := bucket.Put([]byte(k), v); err != nil {
				return fmt.Errorf("put %q: %w", k, err)
			}
		}
		return nil
	})
}

func (b *BoltArea) Remove(keys ...string) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := b.bucket(tx)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if err := bucket.Delete([]byte(k)); err != nil {
				return fmt.Errorf("delete %q: %w", k, err)
			}
		}
		return nil
	})
}

// BytesInUse reports the stored size of all items.
func (b *BoltArea) BytesInUse() (int, error) {
	total := 0
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket, err := b.bucket(tx)
		if err != nil {
			return err
		}
		return bucket.ForEach(func(k, v []byte) error {
			total += len(k) + len(v)
			return nil
		})
	})
	return total, err
}

// Close closes the underlying BoltDB database.
func (b *BoltArea) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

func (b *BoltArea) bucket(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	bucket := tx.Bucket([]byte(syncBucket))
	if bucket == nil {
		return nil, fmt.Errorf("sync bucket is missing")
	}
	return bucket, nil
}
