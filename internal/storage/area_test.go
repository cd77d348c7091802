package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/nikbrunner/shelf/internal/storage"
)

// areaFactories opens each backend in a fresh temp dir.
func areaFactories() map[string]func(t *testing.T) storage.Area {
	return map[string]func(t *testing.T) storage.Area{
		"memory": func(t *testing.T) storage.Area {
			return storage.NewMemoryArea()
		},
		"json": func(t *testing.T) storage.Area {
			return storage.NewFileArea(filepath.Join(t.TempDir(), "sync.json"))
		},
		"bolt": func(t *testing.T) storage.Area {
			area, err := storage.NewBoltArea(filepath.Join(t.TempDir(), "sync.db"))
			assert.NilError(t, err)
			return area
		},
		"sqlite": func(t *testing.T) storage.Area {
			area, err := storage.NewSQLiteArea(filepath.Join(t.TempDir(), "sync.sqlite"))
			assert.NilError(t, err)
			return area
		},
	}
}

func TestArea_SetGetRemove(t *testing.T) {
	for name, open := range areaFactories() {
		t.Run(name, func(t *testing.T) {
			area := open(t)
			defer area.Close()

			err := area.Set(map[string][]byte{
				"folders":  []byte(`{"Work":[]}`),
				"revision": []byte(`"r1"`),
			})
			assert.NilError(t, err)

			got, err := area.Get("folders", "revision", "missing")
			assert.NilError(t, err)
			assert.Equal(t, len(got), 2, "missing keys must be omitted")
			assert.Equal(t, string(got["folders"]), `{"Work":[]}`)
			assert.Equal(t, string(got["revision"]), `"r1"`)

			assert.NilError(t, area.Set(map[string][]byte{"revision": []byte(`"r2"`)}))
			got, err = area.Get("revision")
			assert.NilError(t, err)
			assert.Equal(t, string(got["revision"]), `"r2"`)

			assert.NilError(t, area.Remove("revision", "never-set"))
			got, err = area.Get("folders", "revision")
			assert.NilError(t, err)
			_, ok := got["revision"]
			assert.Assert(t, !ok, "removed key still present")
			assert.Equal(t, string(got["folders"]), `{"Work":[]}`)
		})
	}
}

func TestArea_GetNothing(t *testing.T) {
	for name, open := range areaFactories() {
		t.Run(name, func(t *testing.T) {
			area := open(t)
			defer area.Close()

			got, err := area.Get("folders")
			assert.NilError(t, err)
			assert.Equal(t, len(got), 0)
		})
	}
}

func TestArea_BytesInUse(t *testing.T) {
	type sizer interface {
		BytesInUse() (int, error)
	}

	for name, open := range areaFactories() {
		t.Run(name, func(t *testing.T) {
			area := open(t)
			defer area.Close()

			assert.NilError(t, area.Set(map[string][]byte{"ab": []byte(`"xyz"`)}))

			s, ok := area.(sizer)
			assert.Assert(t, ok, "%s must report its size", name)
			n, err := s.BytesInUse()
			assert.NilError(t, err)
			assert.Equal(t, n, len("ab")+len(`"xyz"`))
		})
	}
}

func TestBoltArea_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.db")

	area, err := storage.NewBoltArea(path)
	assert.NilError(t, err)
	assert.NilError(t, area.Set(map[string][]byte{"folders": []byte(`{"A":[]}`)}))
	assert.NilError(t, area.Close())

	reopened, err := storage.NewBoltArea(path)
	assert.NilError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("folders")
	assert.NilError(t, err)
	assert.Equal(t, string(got["folders"]), `{"A":[]}`)
}

func TestBoltArea_RequiresPath(t *testing.T) {
	_, err := storage.NewBoltArea("  ")
	assert.ErrorContains(t, err, "path is required")
}

func TestSQLiteArea_SchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.sqlite")

	area, err := storage.NewSQLiteArea(path)
	assert.NilError(t, err)
	version, err := area.SchemaVersion()
	assert.NilError(t, err)
	assert.Equal(t, version, 2)
	assert.NilError(t, area.Close())

	// Reopening an up-to-date database must not re-run migrations
	reopened, err := storage.NewSQLiteArea(path)
	assert.NilError(t, err)
	defer reopened.Close()
	version, err = reopened.SchemaVersion()
	assert.NilError(t, err)
	assert.Equal(t, version, 2)
}

func TestFileArea_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "sync.json")
	area := storage.NewFileArea(path)

	assert.NilError(t, area.Set(map[string][]byte{"folders": []byte(`{}`)}))

	_, err := os.Stat(path)
	assert.NilError(t, err, "sync file was not created in nested directory")
}

func TestFileArea_RejectsInvalidJSON(t *testing.T) {
	area := storage.NewFileArea(filepath.Join(t.TempDir(), "sync.json"))

	err := area.Set(map[string][]byte{"folders": []byte(`{not json`)})
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestMemoryArea_Closed(t *testing.T) {
	area := storage.NewMemoryArea()
	assert.NilError(t, area.Close())

	_, err := area.Get("folders")
	assert.ErrorIs(t, err, storage.ErrClosed)
}

func TestFileArea_KeepsValueBytesAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.json")
	value := `{"Work":[{"id":"1","title":"Go","url":"https://go.dev"}]}`

	assert.NilError(t, storage.NewFileArea(path).Set(map[string][]byte{"folders": []byte(value)}))

	reopened := storage.NewFileArea(path)
	got, err := reopened.Get("folders")
	assert.NilError(t, err)
	assert.Equal(t, string(got["folders"]), value)

	n, err := reopened.BytesInUse()
	assert.NilError(t, err)
	assert.Equal(t, n, len("folders")+len(value))
}
