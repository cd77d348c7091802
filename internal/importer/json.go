package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/nikbrunner/shelf/internal/model"
)

// ParseSyncJSON reads a sync area dump. It accepts either the whole area
// ({"folders": {...}, ...}) or the bare folder mapping.
func ParseSyncJSON(r io.Reader) (*model.Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var wrapped struct {
		Folders json.RawMessage `json:"folders"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parse sync json: %w", err)
	}

	// A bare mapping may itself hold a folder called "folders", which is an array.
	payload := data
	if trimmed := bytes.TrimSpace(wrapped.Folders); len(trimmed) > 0 && trimmed[0] == '{' {
		payload = wrapped.Folders
	}

	store := model.NewStore()
	if err := json.Unmarshal(payload, store); err != nil {
		return nil, fmt.Errorf("parse sync json: %w", err)
	}
	return store, nil
}
