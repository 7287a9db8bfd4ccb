package library

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/llehouerou/shelf/internal/state"
	"github.com/llehouerou/shelf/internal/tags"
)

var errUnreadable = errors.New("unreadable")

// fakeFiles is a MetadataReader backed by a map from path relative to root.
type fakeFiles struct {
	root  string
	mu    sync.Mutex
	files map[string]*tags.FileInfo
	reads int
}

func newFakeFiles(t *testing.T) *fakeFiles {
	t.Helper()
	return &fakeFiles{root: t.TempDir(), files: make(map[string]*tags.FileInfo)}
}

// add creates an empty file at rel and registers its metadata. A nil info
// makes the file unreadable.
func (f *fakeFiles) add(t *testing.T, rel string, info *tags.FileInfo) string {
	t.Helper()
	path := filepath.Join(f.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	f.files[path] = info
	return path
}

func (f *fakeFiles) read(path string) (*tags.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	info, ok := f.files[path]
	if !ok || info == nil {
		return nil, errUnreadable
	}
	cp := *info
	return &cp, nil
}

func song(title, artist, albumArtist, album string, disc, no, seconds int) *tags.FileInfo {
	return &tags.FileInfo{
		Tag: tags.Tag{
			Title:       title,
			Artist:      artist,
			AlbumArtist: albumArtist,
			Album:       album,
			DiscNumber:  disc,
			TrackNumber: no,
		},
		AudioInfo: tags.AudioInfo{Duration: time.Duration(seconds) * time.Second},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	m, err := state.OpenMemory()
	if err != nil {
		t.Fatalf("open state: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return NewStore(m.DB())
}

// titles returns the titles of an album's tracks in order.
func titles(reg *Registry, a *Album) []string {
	out := make([]string, 0, len(a.TrackIDs))
	for _, id := range a.TrackIDs {
		if t, ok := reg.Track(id); ok {
			out = append(out, t.Title)
		}
	}
	return out
}
