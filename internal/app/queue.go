package app

import (
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize/english"

	"github.com/llehouerou/shelf/internal/errmsg"
	"github.com/llehouerou/shelf/internal/ui/albumbrowser"
	"github.com/llehouerou/shelf/internal/ui/collectionpicker"
)

// queueAlbum adds an album's tracks to the queue. QueuePlay replaces the
// queue and starts the track at a.Start.
func (m *Model) queueAlbum(a albumbrowser.QueueAlbum) {
	name := "album"
	if album, ok := m.registry.Album(a.AlbumID); ok && album.Name != "" {
		name = album.Name
	}
	tracks := english.Plural(len(a.TrackIDs), "track", "")

	switch a.Mode {
	case albumbrowser.QueueAppend:
		m.queue.Add(a.TrackIDs...)
		m.setStatus(fmt.Sprintf("Added %s (%s)", name, tracks))
	case albumbrowser.QueueInsertNext:
		m.queue.InsertNext(a.TrackIDs...)
		m.setStatus(fmt.Sprintf("Playing %s next (%s)", name, tracks))
	case albumbrowser.QueuePlay:
		m.queue.Clear()
		m.queue.Add(a.TrackIDs...)
		m.queue.ChangeTrack(a.Start)
		m.driver.Play()
		m.setStatus("Playing " + name)
		m.reportPlaybackError()
	}
	m.logger.Debug("album queued",
		slog.Int64("album", a.AlbumID),
		slog.Int("tracks", len(a.TrackIDs)),
		slog.Int("queue_len", m.queue.Len()))
}

// queueTracks adds single tracks. QueuePlay appends them and plays the
// first one.
func (m *Model) queueTracks(a albumbrowser.QueueTracks) {
	if len(a.TrackIDs) == 0 {
		return
	}
	name := english.Plural(len(a.TrackIDs), "track", "")
	if len(a.TrackIDs) == 1 {
		if t, ok := m.registry.Track(a.TrackIDs[0]); ok && t.Title != "" {
			name = t.Title
		}
	}

	switch a.Mode {
	case albumbrowser.QueueAppend:
		m.queue.Add(a.TrackIDs...)
		m.setStatus("Added " + name)
	case albumbrowser.QueueInsertNext:
		m.queue.InsertNext(a.TrackIDs...)
		m.setStatus("Playing " + name + " next")
	case albumbrowser.QueuePlay:
		start := m.queue.Len()
		m.queue.Add(a.TrackIDs...)
		m.queue.ChangeTrack(start)
		m.driver.Play()
		m.setStatus("Playing " + name)
		m.reportPlaybackError()
	}
	m.logger.Debug("tracks queued",
		slog.Int("tracks", len(a.TrackIDs)),
		slog.Int("queue_len", m.queue.Len()))
}

// openPicker shows the collections, with the cursor on the one browsed.
func (m *Model) openPicker() {
	m.picker = collectionpicker.New(m.collections, m.registry.Len())
	m.picker.SetSize(m.width, m.bodyHeight())
	m.picker.Select(m.browser.Filter())
	m.showPicker = true
}

// reportPlaybackError surfaces a track that could not be loaded.
func (m *Model) reportPlaybackError() {
	if err := m.driver.Err(); err != nil {
		m.setError(errmsg.Format(errmsg.OpPlaybackStart, err))
	}
}
