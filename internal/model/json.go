package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the store as a JSON object keyed by folder name,
// with keys in folder order.
func (s Store) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range s.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		list := s.lists[name]
		if list == nil {
			list = []Bookmark{}
		}
		value, err := json.Marshal(list)
		if err != nil {
			return nil, fmt.Errorf("folder %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a folder-name-keyed object, keeping the key order of
// the document. A repeated key keeps its first position and its last value.
// A null list decodes as an empty folder.
func (s *Store) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*s = *NewStore()
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("store: expected object, got %v", tok)
	}

	decoded := NewStore()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("store: expected folder name, got %v", tok)
		}

		var list []Bookmark
		if err := dec.Decode(&list); err != nil {
			return fmt.Errorf("folder %q: %w", name, err)
		}
		if list == nil {
			list = []Bookmark{}
		}

		if !decoded.HasFolder(name) {
			decoded.names = append(decoded.names, name)
		}
		decoded.lists[name] = list
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*s = *decoded
	return nil
}
