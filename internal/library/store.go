package library

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/llehouerou/shelf/internal/db"
)

// Store persists a Registry in the tracks, albums and album_tracks tables.
type Store struct {
	db *sql.DB
}

func NewStore(sqlDB *sql.DB) *Store {
	return &Store{db: sqlDB}
}

// Counts returns the number of stored tracks and albums.
func (s *Store) Counts(ctx context.Context) (tracks, albums int, err error) {
	err = s.db.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM tracks), (SELECT COUNT(*) FROM albums)
	`).Scan(&tracks, &albums)
	return tracks, albums, err
}

// SaveAll replaces the stored library with reg in one transaction.
func (s *Store) SaveAll(ctx context.Context, reg *Registry) error {
	return db.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, table := range []string{"album_tracks", "tracks", "albums"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		insertAlbum, err := tx.PrepareContext(ctx, `
			INSERT INTO albums (id, name, artist, cover_mime, cover) VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer insertAlbum.Close()

		insertPosition, err := tx.PrepareContext(ctx, `
			INSERT INTO album_tracks (album_id, position, track_id) VALUES (?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer insertPosition.Close()

		for _, id := range reg.AlbumIDs() {
			a := reg.albums[id]
			var mime sql.NullString
			var cover []byte
			if a.Cover != nil {
				mime = db.NullString(a.Cover.MIMEType)
				cover = a.Cover.Data
			}
			if _, err := insertAlbum.ExecContext(ctx, a.ID, a.Name, a.Artist, mime, cover); err != nil {
				return fmt.Errorf("insert album %d: %w", a.ID, err)
			}
			for pos, trackID := range a.TrackIDs {
				if _, err := insertPosition.ExecContext(ctx, a.ID, pos, trackID); err != nil {
					return fmt.Errorf("insert album %d track %d: %w", a.ID, trackID, err)
				}
			}
		}

		insertTrack, err := tx.PrepareContext(ctx, `
			INSERT INTO tracks (id, album_id, path, duration_ms, disc, no, title, artist, lyrics, date, genre, composer)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer insertTrack.Close()

		for _, id := range reg.TrackIDs() {
			t := reg.tracks[id]
			_, err := insertTrack.ExecContext(ctx,
				t.ID, t.AlbumID, t.Path, t.Duration.Milliseconds(),
				db.NullInt(t.Disc), db.NullInt(t.No),
				t.Title, t.Artist,
				db.NullString(t.Lyrics), db.NullString(t.Date),
				db.NullString(t.Genre), db.NullString(t.Composer),
			)
			if err != nil {
				return fmt.Errorf("insert track %d: %w", t.ID, err)
			}
		}
		return nil
	})
}

// LoadAll reads the stored library into a new Registry.
func (s *Store) LoadAll(ctx context.Context) (*Registry, error) {
	reg := NewRegistry()

	if err := s.loadAlbums(ctx, reg); err != nil {
		return nil, fmt.Errorf("load albums: %w", err)
	}
	if err := s.loadAlbumTracks(ctx, reg); err != nil {
		return nil, fmt.Errorf("load album tracks: %w", err)
	}
	if err := s.loadTracks(ctx, reg); err != nil {
		return nil, fmt.Errorf("load tracks: %w", err)
	}
	return reg, nil
}

func (s *Store) loadAlbums(ctx context.Context, reg *Registry) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, artist, cover_mime, cover FROM albums`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		a := &Album{}
		var mime sql.NullString
		var cover []byte
		if err := rows.Scan(&a.ID, &a.Name, &a.Artist, &mime, &cover); err != nil {
			return err
		}
		if len(cover) > 0 {
			a.Cover = &Picture{MIMEType: db.NullStringValue(mime), Data: cover}
		}
		reg.PutAlbum(a)
	}
	return rows.Err()
}

func (s *Store) loadAlbumTracks(ctx context.Context, reg *Registry) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT album_id, track_id FROM album_tracks ORDER BY album_id, position
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var albumID, trackID int64
		if err := rows.Scan(&albumID, &trackID); err != nil {
			return err
		}
		if a, ok := reg.albums[albumID]; ok {
			a.TrackIDs = append(a.TrackIDs, trackID)
		}
	}
	return rows.Err()
}

func (s *Store) loadTracks(ctx context.Context, reg *Registry) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, album_id, path, duration_ms, disc, no, title, artist, lyrics, date, genre, composer
		FROM tracks
	`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		t := &Track{}
		var durationMS int64
		var disc, no sql.NullInt64
		var lyrics, date, genre, composer sql.NullString
		err := rows.Scan(&t.ID, &t.AlbumID, &t.Path, &durationMS, &disc, &no,
			&t.Title, &t.Artist, &lyrics, &date, &genre, &composer)
		if err != nil {
			return err
		}
		t.Duration = time.Duration(durationMS) * time.Millisecond
		t.Disc = db.NullIntValue(disc)
		t.No = db.NullIntValue(no)
		t.Lyrics = db.NullStringValue(lyrics)
		t.Date = db.NullStringValue(date)
		t.Genre = db.NullStringValue(genre)
		t.Composer = db.NullStringValue(composer)
		reg.PutTrack(t)
	}
	return rows.Err()
}
