package storage

import "errors"

var (
	// ErrQuotaExceeded is returned when a write would exceed the area's quota.
	ErrQuotaExceeded = errors.New("sync storage quota exceeded")
	// ErrClosed is returned by operations on a closed area.
	ErrClosed = errors.New("sync storage is closed")
)

// Area is a key-value synchronized storage service, modelled on the
// browser's storage.sync area. Values are JSON documents.
type Area interface {
	// Get returns the values stored under keys. Missing keys are omitted.
	Get(keys ...string) (map[string][]byte, error)
	// Set writes all items atomically.
	Set(items map[string][]byte) error
	// Remove deletes keys. Missing keys are ignored.
	Remove(keys ...string) error
	Close() error
}

// sizer is implemented by areas that can report the bytes they hold,
// counted as len(key)+len(value) per item.
type sizer interface {
	BytesInUse() (int, error)
}
