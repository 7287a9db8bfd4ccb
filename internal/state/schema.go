package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

// InitSchema creates the tables used by the library, collection and
// settings stores. It is idempotent.
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS albums (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			artist TEXT NOT NULL,
			cover_mime TEXT,
			cover BLOB
		);

		CREATE TABLE IF NOT EXISTS tracks (
			id INTEGER PRIMARY KEY,
			album_id INTEGER,
			path TEXT NOT NULL UNIQUE,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			disc INTEGER,
			no INTEGER,
			title TEXT NOT NULL,
			artist TEXT NOT NULL,
			lyrics TEXT,
			date TEXT,
			genre TEXT,
			composer TEXT
		);

		CREATE TABLE IF NOT EXISTS album_tracks (
			album_id INTEGER NOT NULL REFERENCES albums(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			track_id INTEGER NOT NULL,
			PRIMARY KEY (album_id, position)
		);

		CREATE INDEX IF NOT EXISTS idx_tracks_album ON tracks(album_id);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, currentSchemaVersion)
	return err
}
