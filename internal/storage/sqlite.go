package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const currentSchemaVersion = 2

// SQLiteArea implements Area on a SQLite database.
type SQLiteArea struct {
	db   *sql.DB
	path string
}

// NewSQLiteArea opens (or creates) the SQLite database at path.
func NewSQLiteArea(path string) (*SQLiteArea, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	s := &SQLiteArea{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Path returns the database file path.
func (s *SQLiteArea) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *SQLiteArea) Close() error {
	return s.db.Close()
}

// SchemaVersion returns the applied schema version.
func (s *SQLiteArea) SchemaVersion() (int, error) {
	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	return version, err
}

// migrate runs database migrations.
func (s *SQLiteArea) migrate() error {
	version, err := s.SchemaVersion()
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}
	if version >= currentSchemaVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	if version < 2 {
		if err := s.migrateV2(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the item table.
func (s *SQLiteArea) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS sync_items (
			key TEXT PRIMARY KEY NOT NULL,
			value TEXT NOT NULL
		);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := s.db.Exec(schema)
	return err
}

// migrateV2 records when each item was last written.
func (s *SQLiteArea) migrateV2() error {
	migration := `
		ALTER TABLE sync_items ADD COLUMN updated_at TEXT NOT NULL DEFAULT '';
		UPDATE schema_version SET version = 2;
	`
	_, err := s.db.Exec(migration)
	return err
}

func (s *SQLiteArea) Get(keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(keys)), ",")
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	rows, err := s.db.Query(`SELECT key, value FROM sync_items WHERE key IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		out[key] = []byte(value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// Set writes all items in one transaction.
func (s *SQLiteArea) Set(items map[string][]byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO sync_items (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for k, v := range items {
		if _, err := stmt.Exec(k, string(v), now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteArea) Remove(keys ...string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, k := range keys {
		if _, err := tx.Exec(`DELETE FROM sync_items WHERE key = ?`, k); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// BytesInUse reports the stored size of all items.
func (s *SQLiteArea) BytesInUse() (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(`SELECT SUM(LENGTH(CAST(key AS BLOB)) + LENGTH(CAST(value AS BLOB))) FROM sync_items`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return int(total.Int64), nil
}
