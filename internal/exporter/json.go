package exporter

import (
	"encoding/json"

	"github.com/nikbrunner/shelf/internal/model"
)

// ExportJSON exports the store in the sync area layout: {"folders": {...}}.
func ExportJSON(store *model.Store) ([]byte, error) {
	return json.MarshalIndent(struct {
		Folders *model.Store `json:"folders"`
	}{Folders: store}, "", "  ")
}
