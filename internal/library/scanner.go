package library

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/llehouerou/shelf/internal/logging"
	"github.com/llehouerou/shelf/internal/tags"
)

const defaultWorkers = 8

// Scan phases reported through ScanProgress.
const (
	PhaseScanning   = "scanning"
	PhaseProcessing = "processing"
	PhaseBuilding   = "building"
	PhaseDone       = "done"
)

// ScanProgress reports the progress of a library scan.
type ScanProgress struct {
	Phase   string
	Current int
	Total   int
	Stats   *ScanStats // Only populated when Phase == PhaseDone
}

// ScanStats holds statistics for a completed scan.
type ScanStats struct {
	Files   int // music files found
	Tracks  int
	Albums  int
	Skipped int // files whose stream could not be read
	Elapsed time.Duration
}

// MetadataReader reads tags and stream properties from a file.
type MetadataReader func(path string) (*tags.FileInfo, error)

// Scanner walks a music folder and builds a Registry from its files.
type Scanner struct {
	workers int
	read    MetadataReader
	logger  *slog.Logger
}

type ScannerOption func(*Scanner)

// WithWorkers sets the number of concurrent file readers.
func WithWorkers(n int) ScannerOption {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithReader replaces the tag reader.
func WithReader(read MetadataReader) ScannerOption {
	return func(s *Scanner) { s.read = read }
}

func WithLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) { s.logger = logging.Component(logger, "scanner") }
}

func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{
		workers: defaultWorkers,
		read:    tags.ReadWithAudio,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// fileResult holds the result of processing a music file.
type fileResult struct {
	path string
	rel  string
	info *tags.FileInfo
}

// Scan reads every music file under root. Unreadable files are skipped and
// counted. progress may be nil; sends give up when ctx is done.
func (s *Scanner) Scan(ctx context.Context, root string, progress chan<- ScanProgress) (*Registry, *ScanStats, error) {
	start := time.Now()
	stats := &ScanStats{}

	s.report(ctx, progress, ScanProgress{Phase: PhaseScanning})
	files, err := s.discover(ctx, root, progress)
	if err != nil {
		return nil, nil, err
	}
	stats.Files = len(files)

	results, skipped, err := s.process(ctx, root, files, progress)
	if err != nil {
		return nil, nil, err
	}
	stats.Skipped = skipped

	s.report(ctx, progress, ScanProgress{Phase: PhaseBuilding, Current: len(results), Total: len(results)})
	reg := buildRegistry(results)
	stats.Tracks = reg.Len()
	stats.Albums = reg.AlbumCount()
	stats.Elapsed = time.Since(start)

	s.logger.Info("scan finished",
		slog.String("root", root),
		slog.Int("files", stats.Files),
		slog.Int("tracks", stats.Tracks),
		slog.Int("albums", stats.Albums),
		slog.Int("skipped", stats.Skipped),
		slog.Duration("elapsed", stats.Elapsed),
	)
	s.report(ctx, progress, ScanProgress{Phase: PhaseDone, Current: stats.Files, Total: stats.Files, Stats: stats})
	return reg, stats, nil
}

// discover walks root and returns the music files found, sorted.
func (s *Scanner) discover(ctx context.Context, root string, progress chan<- ScanProgress) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			s.logger.Debug("skipping unreadable path", slog.String("path", path), slog.Any("error", walkErr))
			return nil
		}
		if d.IsDir() || !tags.IsMusicFile(path) {
			return nil
		}
		files = append(files, path)
		if len(files)%100 == 0 {
			s.report(ctx, progress, ScanProgress{Phase: PhaseScanning, Current: len(files)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// process reads files in parallel. Results come back in file order.
func (s *Scanner) process(
	ctx context.Context,
	root string,
	files []string,
	progress chan<- ScanProgress,
) ([]fileResult, int, error) {
	total := len(files)
	var processed atomic.Int64

	results := make([]*fileResult, total)
	workCh := make(chan int)

	workers := min(s.workers, max(total, 1))
	var wg sync.WaitGroup
	for range workers {
		wg.Go(func() {
			for i := range workCh {
				path := files[i]
				info, err := s.read(path)
				processed.Add(1)
				if err != nil {
					s.logger.Warn("skipping unreadable file", slog.String("path", path), slog.Any("error", err))
					continue
				}
				rel, relErr := filepath.Rel(root, path)
				if relErr != nil {
					rel = filepath.Base(path)
				}
				results[i] = &fileResult{path: path, rel: rel, info: info}
			}
		})
	}

	// Progress reporter
	done := make(chan struct{})
	var reporter sync.WaitGroup
	reporter.Go(func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.report(ctx, progress, ScanProgress{Phase: PhaseProcessing, Current: int(processed.Load()), Total: total})
			case <-done:
				return
			}
		}
	})

	var cancelled error
feed:
	for i := range files {
		select {
		case workCh <- i:
		case <-ctx.Done():
			cancelled = ctx.Err()
			break feed
		}
	}
	close(workCh)
	wg.Wait()
	close(done)
	reporter.Wait()

	if cancelled != nil {
		return nil, 0, cancelled
	}
	s.report(ctx, progress, ScanProgress{Phase: PhaseProcessing, Current: total, Total: total})

	out := make([]fileResult, 0, total)
	for _, r := range results {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out, total - len(out), nil
}

func (s *Scanner) report(ctx context.Context, progress chan<- ScanProgress, p ScanProgress) {
	if progress == nil {
		return
	}
	select {
	case progress <- p:
	case <-ctx.Done():
	}
}

type albumKey struct {
	name   string // lower-cased
	artist string
}

// buildRegistry turns file results into tracks and albums. Albums are keyed
// by lower-cased name and album artist; the first picture found becomes the
// album cover, then a cover image from the album's folder.
func buildRegistry(results []fileResult) *Registry {
	reg := NewRegistry()
	byKey := make(map[albumKey]*Album)
	folders := make(map[int64]string)

	for _, r := range results {
		albumArtist, albumName := albumIdentity(r)

		key := albumKey{name: strings.ToLower(albumName), artist: albumArtist}
		album, ok := byKey[key]
		if !ok {
			album = reg.NewAlbum(albumName, albumArtist)
			byKey[key] = album
			folders[album.ID] = filepath.Dir(r.path)
		}

		t := reg.NewTrack(Track{
			AlbumID:  album.ID,
			Path:     r.path,
			Duration: r.info.Duration,
			Disc:     r.info.DiscNumber,
			No:       r.info.TrackNumber,
			Title:    r.info.Title,
			Artist:   r.info.Artist,
			Lyrics:   r.info.Lyrics,
			Date:     r.info.Date,
			Genre:    r.info.Genre,
			Composer: r.info.Composer,
		})
		if t.Title == "" {
			t.Title = filepath.Base(r.path)
		}
		album.TrackIDs = append(album.TrackIDs, t.ID)

		if album.Cover == nil && r.info.Picture != nil {
			album.Cover = r.info.Picture
		}
	}

	for _, album := range reg.albums {
		if album.Cover == nil {
			album.Cover = tags.FolderCover(folders[album.ID])
		}
		reg.SortAlbumTracks(album)
	}
	return reg
}

// albumIdentity returns the album artist and album name of a file. Missing
// tags fall back to the first two folders of the path relative to the root
// (Artist/Album/file), and the album artist then falls back to the artist.
func albumIdentity(r fileResult) (artist, album string) {
	artist = r.info.AlbumArtist
	album = r.info.Album

	parts := strings.Split(filepath.ToSlash(r.rel), "/")
	if len(parts) >= 3 {
		if artist == "" {
			artist = parts[0]
		}
		if album == "" {
			album = parts[1]
		}
	}
	if artist == "" {
		artist = r.info.Artist
	}
	return artist, album
}
