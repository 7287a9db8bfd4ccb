package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/llehouerou/shelf/internal/logging"
)

// Loader restores the library from the store, scanning the music folder
// when nothing has been stored yet.
type Loader struct {
	store   *Store
	scanner *Scanner
	logger  *slog.Logger
}

func NewLoader(store *Store, scanner *Scanner, logger *slog.Logger) *Loader {
	return &Loader{
		store:   store,
		scanner: scanner,
		logger:  logging.Component(logger, "library"),
	}
}

// Load returns the stored library when it holds both tracks and albums.
// Otherwise root is scanned and the result saved.
func (l *Loader) Load(ctx context.Context, root string, progress chan<- ScanProgress) (*Registry, error) {
	tracks, albums, err := l.store.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count stored library: %w", err)
	}
	if tracks > 0 && albums > 0 {
		reg, err := l.store.LoadAll(ctx)
		if err != nil {
			return nil, err
		}
		l.logger.Info("library loaded", slog.Int("tracks", reg.Len()), slog.Int("albums", reg.AlbumCount()))
		return reg, nil
	}
	return l.Rescan(ctx, root, progress)
}

// Rescan scans root and replaces the stored library with the result.
func (l *Loader) Rescan(ctx context.Context, root string, progress chan<- ScanProgress) (*Registry, error) {
	if root == "" {
		return nil, ErrNoLibraryRoot
	}
	reg, _, err := l.scanner.Scan(ctx, root, progress)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	if err := l.store.SaveAll(ctx, reg); err != nil {
		return nil, fmt.Errorf("save library: %w", err)
	}
	return reg, nil
}
