package storage

import "sync"

// MemoryArea keeps items in process memory.
type MemoryArea struct {
	mu     sync.Mutex
	items  map[string][]byte
	closed bool
}

// NewMemoryArea creates an empty MemoryArea.
func NewMemoryArea() *MemoryArea {
	return &MemoryArea{items: map[string][]byte{}}
}

func (m *MemoryArea) Get(keys ...string) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}

	out := make(map[string][]byte, len(keys))
	for _, k := range keys {
		if v, ok := m.items[k]; ok {
			out[k] = append([]byte(nil), v...)
		}
	}
	return out, nil
}

func (m *MemoryArea) Set(items map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	for k, v := range items {
		m.items[k] = append([]byte(nil), v...)
	}
	return nil
}

func (m *MemoryArea) Remove(keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}

	for _, k := range keys {
		delete(m.items, k)
	}
	return nil
}

// BytesInUse reports the stored size of all items.
func (m *MemoryArea) BytesInUse() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrClosed
	}

	total := 0
	for k, v := range m.items {
		total += len(k) + len(v)
	}
	return total, nil
}

func (m *MemoryArea) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
