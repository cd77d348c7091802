package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/shelf/internal/model"
)

// Backend names accepted by Open.
const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Snapshot is a store together with the revision it was read at.
type Snapshot struct {
	Store    *model.Store
	Revision string // empty when nothing was saved yet
}

// Storage defines the interface for persisting the bookmark store.
type Storage interface {
	Load() (Snapshot, error)
	// Save persists the whole store and returns the new revision.
	Save(store *model.Store) (string, error)
	// Revision returns the revision of the last save by anyone.
	Revision() (string, error)
	Close() error
}

// Open opens the storage backend selected by cfg.
func Open(cfg Config) (*SyncStorage, error) {
	area, err := OpenArea(cfg.Backend, cfg.DataDir)
	if err != nil {
		return nil, err
	}
	quota, err := cfg.SyncQuota()
	if err != nil {
		area.Close()
		return nil, err
	}
	return NewSyncStorage(WithQuota(area, quota)), nil
}

// OpenArea opens the named backend inside dataDir.
func OpenArea(backend, dataDir string) (Area, error) {
	switch backend {
	case BackendBolt, "":
		return NewBoltArea(filepath.Join(dataDir, "sync.db"))
	case BackendSQLite:
		return NewSQLiteArea(filepath.Join(dataDir, "sync.sqlite"))
	case BackendJSON:
		return NewFileArea(filepath.Join(dataDir, "sync.json")), nil
	case BackendMemory:
		return NewMemoryArea(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// DefaultDataDir returns the default data directory: ~/.config/shelf
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "shelf"), nil
}
