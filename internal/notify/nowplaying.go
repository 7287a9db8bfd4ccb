package notify

import (
	"log/slog"
	"strings"

	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/logging"
)

const (
	nowPlayingIcon    = "audio-x-generic"
	nowPlayingTimeout = 5000
)

// Catalog resolves the ids carried by playback events.
type Catalog interface {
	Track(id int64) (*library.Track, bool)
	Album(id int64) (*library.Album, bool)
}

// NowPlaying shows one notification per started track, each replacing the
// previous one. Resuming the same track stays silent.
type NowPlaying struct {
	notifier Notifier
	catalog  Catalog
	logger   *slog.Logger

	lastTrack int64
	started   bool
	id        uint32
}

func NewNowPlaying(n Notifier, c Catalog, logger *slog.Logger) *NowPlaying {
	return &NowPlaying{
		notifier: n,
		catalog:  c,
		logger:   logging.Component(logger, "notify"),
	}
}

// TrackStarted is meant as a playback Play listener.
func (p *NowPlaying) TrackStarted(trackID int64) {
	if p.started && trackID == p.lastTrack {
		return
	}
	t, ok := p.catalog.Track(trackID)
	if !ok {
		return
	}
	p.started = true
	p.lastTrack = trackID

	id, err := p.notifier.Notify(Notification{
		Title:      t.Title,
		Body:       p.body(t),
		Icon:       nowPlayingIcon,
		Timeout:    nowPlayingTimeout,
		ReplacesID: p.id,
		Urgency:    UrgencyLow,
	})
	if err != nil {
		p.logger.Debug("notification failed", slog.Int64("track", trackID), slog.Any("error", err))
		return
	}
	p.id = id
}

// Reset forgets the last track so that it is announced again, e.g. after
// the queue was cleared.
func (p *NowPlaying) Reset() {
	p.started = false
}

// Close removes the notification still on screen.
func (p *NowPlaying) Close() error {
	if p.id == 0 {
		return nil
	}
	err := p.notifier.Close(p.id)
	p.id = 0
	return err
}

func (p *NowPlaying) body(t *library.Track) string {
	parts := make([]string, 0, 2)
	if t.Artist != "" {
		parts = append(parts, t.Artist)
	}
	if a, ok := p.catalog.Album(t.AlbumID); ok && a.Name != "" {
		parts = append(parts, a.Name)
	}
	return strings.Join(parts, " · ")
}
