// Package state owns the sqlite database that holds the library, the
// collections and the player settings.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/gofrs/flock"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "shelf"
	dbFileName = "shelf.db"
	memoryPath = ":memory:"
)

// ErrLocked is returned by Open when another process holds the database.
var ErrLocked = errors.New("state: database is locked by another shelf process")

type Manager struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// OpenDefault opens the database in the XDG data directory.
func OpenDefault() (*Manager, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// DefaultPath returns the XDG location of the database, creating its
// directory if needed.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Open opens the database at path and initializes the schema.
// A lock file next to the database keeps a second process out.
// The path ":memory:" opens a private in-memory database without a lock.
func Open(path string) (*Manager, error) {
	m := &Manager{path: path}

	if path != memoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		m.lock = flock.New(path + ".lock")
		ok, err := m.lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire lock: %w", err)
		}
		if !ok {
			return nil, ErrLocked
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		m.unlock()
		return nil, err
	}
	// One connection keeps ":memory:" a single database and serializes writers.
	db.SetMaxOpenConns(1)

	if path != memoryPath {
		if _, err := db.Exec(`PRAGMA journal_mode = WAL`); err != nil {
			db.Close()
			m.unlock()
			return nil, fmt.Errorf("enable wal: %w", err)
		}
	}

	if err := InitSchema(db); err != nil {
		db.Close()
		m.unlock()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	m.db = db
	return m, nil
}

// OpenMemory opens an in-memory database.
func OpenMemory() (*Manager, error) {
	return Open(memoryPath)
}

func (m *Manager) Close() error {
	err := m.db.Close()
	m.unlock()
	return err
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// Path returns the database file path.
func (m *Manager) Path() string {
	return m.path
}

func (m *Manager) unlock() {
	if m.lock != nil {
		_ = m.lock.Unlock()
	}
}
