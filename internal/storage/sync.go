package storage

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/nikbrunner/shelf/internal/model"
)

// Keys used in the sync area.
const (
	FoldersKey  = "folders"
	RevisionKey = "revision"
)

// SyncStorage persists the store as a single item of a sync area.
type SyncStorage struct {
	area Area
}

// NewSyncStorage creates a SyncStorage on top of area.
func NewSyncStorage(area Area) *SyncStorage {
	return &SyncStorage{area: area}
}

// Area returns the underlying sync area.
func (s *SyncStorage) Area() Area {
	return s.area
}

// Load reads the store and its revision in one read.
// Returns an empty store if nothing was saved yet.
func (s *SyncStorage) Load() (Snapshot, error) {
	items, err := s.area.Get(FoldersKey, RevisionKey)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read sync area: %w", err)
	}

	store := model.NewStore()
	if data, ok := items[FoldersKey]; ok {
		if err := json.Unmarshal(data, store); err != nil {
			return Snapshot{}, fmt.Errorf("decode %s: %w", FoldersKey, err)
		}
	}

	revision, err := decodeRevision(items)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Store: store, Revision: revision}, nil
}

// Save writes the store and a fresh revision in one write.
func (s *SyncStorage) Save(store *model.Store) (string, error) {
	folders, err := json.Marshal(store)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", FoldersKey, err)
	}

	revision := uuid.New().String()
	rev, err := json.Marshal(revision)
	if err != nil {
		return "", err
	}

	err = s.area.Set(map[string][]byte{
		FoldersKey:  folders,
		RevisionKey: rev,
	})
	if err != nil {
		return "", fmt.Errorf("write sync area: %w", err)
	}
	return revision, nil
}

// Revision returns the stored revision without decoding the store.
func (s *SyncStorage) Revision() (string, error) {
	items, err := s.area.Get(RevisionKey)
	if err != nil {
		return "", fmt.Errorf("read sync area: %w", err)
	}
	return decodeRevision(items)
}

// Close closes the underlying area.
func (s *SyncStorage) Close() error {
	return s.area.Close()
}

func decodeRevision(items map[string][]byte) (string, error) {
	data, ok := items[RevisionKey]
	if !ok {
		return "", nil
	}
	var revision string
	if err := json.Unmarshal(data, &revision); err != nil {
		return "", fmt.Errorf("decode %s: %w", RevisionKey, err)
	}
	return revision, nil
}
