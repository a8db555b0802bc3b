// Package sqlite provides a preference sink backed by a local SQLite
// database. It is the store the CLI writes imported preferences into when no
// host application owns the process.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/prefkit/prefsync/internal/prefs"
)

const schema = `
CREATE TABLE IF NOT EXISTS preferences (
    name  TEXT PRIMARY KEY,
    kind  TEXT NOT NULL,
    value INTEGER NOT NULL
);`

const upsert = `
INSERT INTO preferences (name, kind, value) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET kind = excluded.kind, value = excluded.value;`

// ErrNotFound is returned by the read accessors when a preference is absent.
var ErrNotFound = errors.New("preference not found")

// Store is a Sink writing preferences to a SQLite database. Booleans are
// stored as 0/1 and colors as packed RGB integers.
type Store struct {
	db *sql.DB
}

var _ prefs.Sink = (*Store)(nil)

// Open opens (or creates) the preferences database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open preferences database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize preferences schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetBoolean stores a boolean preference.
func (s *Store) SetBoolean(name string, value bool) error {
	v := int64(0)
	if value {
		v = 1
	}
	return s.set(name, prefs.KindBoolean, v)
}

// SetInteger stores an integer preference.
func (s *Store) SetInteger(name string, value int64) error {
	return s.set(name, prefs.KindInteger, value)
}

// SetColor stores a color preference as its packed RGB value.
func (s *Store) SetColor(name string, c prefs.Color) error {
	return s.set(name, prefs.KindColor, c.Packed())
}

func (s *Store) set(name string, kind prefs.Kind, value int64) error {
	if _, err := s.db.Exec(upsert, name, kind.String(), value); err != nil {
		return fmt.Errorf("write preference %q: %w", name, err)
	}
	return nil
}

// Boolean reads back a stored boolean preference.
func (s *Store) Boolean(name string) (bool, error) {
	v, err := s.get(name, prefs.KindBoolean)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// Integer reads back a stored integer preference.
func (s *Store) Integer(name string) (int64, error) {
	return s.get(name, prefs.KindInteger)
}

// Color reads back a stored color preference.
func (s *Store) Color(name string) (prefs.Color, error) {
	v, err := s.get(name, prefs.KindColor)
	if err != nil {
		return prefs.Color{}, err
	}
	return prefs.UnpackColor(v), nil
}

func (s *Store) get(name string, kind prefs.Kind) (int64, error) {
	var v int64
	err := s.db.QueryRow(
		`SELECT value FROM preferences WHERE name = ? AND kind = ?`,
		name, kind.String(),
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return 0, fmt.Errorf("read preference %q: %w", name, err)
	}
	return v, nil
}

// Count returns the number of stored preferences.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count preferences: %w", err)
	}
	return n, nil
}
