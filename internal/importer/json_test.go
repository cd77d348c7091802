package importer_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nikbrunner/shelf/internal/importer"
)

func TestParseSyncJSON(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantFolders []string
	}{
		{
			name:        "whole sync area",
			input:       `{"folders": {"Work": [{"title": "Go", "url": "https://go.dev"}], "Read": []}, "revision": "abc"}`,
			wantFolders: []string{"Work", "Read"},
		},
		{
			name:        "bare mapping",
			input:       `{"Zed": [], "Alpha": [{"title": "A", "url": "https://a.example"}]}`,
			wantFolders: []string{"Zed", "Alpha"},
		},
		{
			name:        "bare mapping with a folder named folders",
			input:       `{"folders": [{"title": "F", "url": "https://f.example"}]}`,
			wantFolders: []string{"folders"},
		},
		{
			name:        "empty object",
			input:       `{}`,
			wantFolders: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := importer.ParseSyncJSON(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := store.FolderNames(); !reflect.DeepEqual(got, tt.wantFolders) {
				t.Errorf("expected folders %v, got %v", tt.wantFolders, got)
			}
		})
	}
}

func TestParseSyncJSON_Invalid(t *testing.T) {
	for _, input := range []string{`[1, 2]`, `{"Work": "nope"}`, `not json`} {
		if _, err := importer.ParseSyncJSON(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for %s", input)
		}
	}
}
