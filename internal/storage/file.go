package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileArea stores all items as one JSON object in a file.
type FileArea struct {
	mu   sync.Mutex
	path string
}

// NewFileArea creates a FileArea backed by the file at path.
// The file is created on first write.
func NewFileArea(path string) *FileArea {
	return &FileArea{path: path}
}

// Path returns the storage file path.
func (f *FileArea) Path() string {
	return f.path
}

func (f *FileArea) Get(keys ...string) (map[string][]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.read()
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := all[k]; ok {
			out[k] = []byte(v)
		}
	}
	return out, nil
}

func (f *FileArea) Set(items map[string][]byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.read()
	if err != nil {
		return err
	}
	for k, v := range items {
		if !json.Valid(v) {
			return fmt.Errorf("value for %q is not valid JSON", k)
		}
		all[k] = json.RawMessage(v)
	}
	return f.write(all)
}

func (f *FileArea) Remove(keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.read()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(all, k)
	}
	return f.write(all)
}

// BytesInUse reports the stored size of all items.
func (f *FileArea) BytesInUse() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	all, err := f.read()
	if err != nil {
		return 0, err
	}
	total := 0
	for k, v := range all {
		total += len(k) + len(v)
	}
	return total, nil
}

func (f *FileArea) Close() error {
	return nil
}

// read loads the file. A missing file is an empty area.
func (f *FileArea) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}

	all := map[string]json.RawMessage{}
	if len(data) == 0 {
		return all, nil
	}
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return all, nil
}

// write replaces the file through a temp file so readers never see a partial write.
func (f *FileArea) write(all map[string]json.RawMessage) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.Marshal(all)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}
