// Package playback connects the queue to the audio sink: it loads whatever
// track the queue points at and advances the queue when a track ends.
package playback

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/llehouerou/shelf/internal/emitter"
	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/logging"
	"github.com/llehouerou/shelf/internal/player"
	"github.com/llehouerou/shelf/internal/playlist"
)

var (
	// ErrNoTrack is returned when an operation needs a loaded track.
	ErrNoTrack = errors.New("no track loaded")
	// ErrTrackUnavailable records a track id the library cannot resolve.
	ErrTrackUnavailable = errors.New("track unavailable")
)

// TrackSource resolves queue ids to library tracks.
type TrackSource interface {
	Track(id int64) (*library.Track, bool)
}

// Settings persists the output volume.
type Settings interface {
	GetFloat(key string) (float64, bool, error)
	SetFloat(key string, value float64) error
}

// Option configures a Driver.
type Option func(*Driver)

// WithSettings restores and persists the volume through s.
func WithSettings(s Settings) Option {
	return func(d *Driver) { d.settings = s }
}

// WithLogger sets the logger. nil discards.
func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.logger = logging.Component(l, "playback") }
}

// Driver follows the queue cursor and plays the current track.
//
// Like the queue, a Driver is not safe for concurrent use. Finish signals
// from the sink arrive on another goroutine and must be handed back to the
// queue's goroutine before calling HandleFinished.
type Driver struct {
	player   player.Interface
	queue    *playlist.Queue
	tracks   TrackSource
	settings Settings
	logger   *slog.Logger

	current  *library.Track
	playing  bool
	loadErr  error
	listener emitter.ListenerID
	events   Events
}

// New creates a driver bound to q. It immediately loads the queue's
// current track, if any, without starting playback.
func New(p player.Interface, q *playlist.Queue, tracks TrackSource, opts ...Option) *Driver {
	d := &Driver{
		player: p,
		queue:  q,
		tracks: tracks,
		logger: logging.NewNop(),
		events: newEvents(),
	}
	for _, opt := range opts {
		opt(d)
	}

	d.restoreVolume()
	d.listener = q.Events().TrackChange.AddListener(d.onTrackChange)
	if id, ok := q.CurrentID(); ok {
		d.onTrackChange(playlist.TrackChangeEvent{Index: q.CurrentIndex(), ID: id})
	}
	return d
}

// Events returns the driver's notification channels.
func (d *Driver) Events() Events {
	return d.events
}

// Finished delivers the sink's end-of-track signals.
func (d *Driver) Finished() <-chan struct{} {
	return d.player.FinishedChan()
}

func (d *Driver) onTrackChange(e playlist.TrackChangeEvent) {
	d.playing = false
	d.loadErr = nil

	if !e.HasTrack() {
		d.current = nil
		d.player.Unload()
		d.events.Clear.Emit(struct{}{})
		return
	}

	t, ok := d.tracks.Track(e.ID)
	if !ok {
		d.current = nil
		d.player.Unload()
		d.loadErr = fmt.Errorf("%w: id %d", ErrTrackUnavailable, e.ID)
		d.logger.Warn("track not in library", slog.Int64("id", e.ID))
		return
	}

	d.current = t
	if err := d.player.Load(t.Path); err != nil {
		d.loadErr = fmt.Errorf("load %s: %w", t.Path, err)
		d.logger.Error("load track failed", slog.String("path", t.Path), slog.Any("error", err))
	}
}

// Err returns why the current track cannot play, or nil.
func (d *Driver) Err() error {
	return d.loadErr
}

// Play starts the current track. It does nothing when already playing or
// when the track failed to load.
func (d *Driver) Play() {
	if d.playing || d.current == nil || d.loadErr != nil {
		return
	}
	d.player.Play()
	d.playing = true
	d.events.Play.Emit(d.current.ID)
}

// Pause halts the current track.
func (d *Driver) Pause() {
	if !d.playing {
		return
	}
	d.playing = false
	d.player.Pause()
	d.events.Pause.Emit(d.current.ID)
}

// Toggle switches between Play and Pause.
func (d *Driver) Toggle() {
	if d.playing {
		d.Pause()
		return
	}
	d.Play()
}

// SeekTo moves the playback position and emits TimeChange.
func (d *Driver) SeekTo(pos time.Duration) error {
	if d.current == nil || d.loadErr != nil {
		return ErrNoTrack
	}
	if err := d.player.SeekTo(pos); err != nil {
		return err
	}
	d.events.TimeChange.Emit(d.player.Position())
	return nil
}

func (d *Driver) IsPlaying() bool {
	return d.playing
}

// CurrentTrack returns the track the queue points at, or nil.
func (d *Driver) CurrentTrack() *library.Track {
	return d.current
}

func (d *Driver) Position() time.Duration {
	if d.current == nil {
		return 0
	}
	return d.player.Position()
}

// Duration returns the library duration of the current track, falling
// back to the decoder's length when the library has none.
func (d *Driver) Duration() time.Duration {
	if d.current == nil {
		return 0
	}
	if d.current.Duration > 0 {
		return d.current.Duration
	}
	return d.player.Duration()
}

// Tick reports the current position through TimeChange. Callers drive it
// from a timer while playing.
func (d *Driver) Tick() {
	if d.current == nil {
		return
	}
	d.events.TimeChange.Emit(d.player.Position())
}

// HandleFinished reacts to the sink reaching the end of the track: it
// emits Pause and Finish, then lets the queue pick what comes next and
// plays it.
func (d *Driver) HandleFinished() {
	if d.current == nil {
		return
	}
	id := d.current.ID
	d.playing = false
	d.player.Pause()
	d.events.Pause.Emit(id)
	d.events.Finish.Emit(id)

	if _, ok := d.queue.AutoNext(); ok {
		d.Play()
	}
}

// SkipNextAndPlay moves to the next track and plays it. At the end of the
// queue nothing changes.
func (d *Driver) SkipNextAndPlay() {
	if _, ok := d.queue.Next(); ok {
		d.Play()
	}
}

// SkipPreviousAndPlay moves to the previous track and plays it.
func (d *Driver) SkipPreviousAndPlay() {
	if _, ok := d.queue.Previous(); ok {
		d.Play()
	}
}

// Close detaches from the queue and releases the sink.
func (d *Driver) Close() error {
	d.queue.Events().TrackChange.RemoveListener(d.listener)
	d.current = nil
	d.playing = false
	return d.player.Close()
}
