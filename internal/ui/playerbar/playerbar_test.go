package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/playlist"
)

type fakeSource struct {
	track    *library.Track
	playing  bool
	position time.Duration
	duration time.Duration
	volume   float64
}

func (f fakeSource) CurrentTrack() *library.Track { return f.track }
func (f fakeSource) IsPlaying() bool              { return f.playing }
func (f fakeSource) Position() time.Duration      { return f.position }
func (f fakeSource) Duration() time.Duration      { return f.duration }
func (f fakeSource) VolumeDB() float64            { return f.volume }

func TestNewState_NothingLoaded(t *testing.T) {
	s := NewState(fakeSource{volume: -6}, nil, playlist.LoopQueue)

	assert.False(t, s.Loaded)
	assert.InDelta(t, -6.0, s.VolumeDB, 1e-9)
	assert.Equal(t, playlist.LoopQueue, s.Loop)
}

func TestNewState_ResolvesAlbum(t *testing.T) {
	reg := library.NewRegistry()
	album := reg.NewAlbum("Blue Train", "John Coltrane")
	track := reg.NewTrack(library.Track{AlbumID: album.ID, Title: "Moment's Notice", Artist: "John Coltrane"})

	s := NewState(fakeSource{
		track:    track,
		playing:  true,
		position: 30 * time.Second,
		duration: 9 * time.Minute,
	}, reg, playlist.LoopNone)

	assert.True(t, s.Loaded)
	assert.True(t, s.Playing)
	assert.Equal(t, "Moment's Notice", s.Title)
	assert.Equal(t, "Blue Train", s.Album)
	assert.Equal(t, 9*time.Minute, s.Duration)
}

func TestRender_NothingPlaying(t *testing.T) {
	out := ansi.Strip(Render(State{VolumeDB: -3}, 80))

	assert.Contains(t, out, "Nothing playing")
	assert.Contains(t, out, "vol -3.0 dB")
}

func TestRender_Track(t *testing.T) {
	s := State{
		Loaded:   true,
		Playing:  true,
		Title:    "Moment's Notice",
		Artist:   "John Coltrane",
		Album:    "Blue Train",
		Position: 83 * time.Second,
		Duration: 238 * time.Second,
	}

	out := ansi.Strip(Render(s, 120))

	assert.Contains(t, out, playSymbol+" Moment's Notice")
	assert.Contains(t, out, "John Coltrane · Blue Train")
	assert.Contains(t, out, "1:23 / 3:58")
	assert.Contains(t, out, "vol 0.0 dB")
}

func TestRender_LoopMode(t *testing.T) {
	out := ansi.Strip(Render(State{Loaded: true, Title: "x", Loop: playlist.LoopTrack}, 80))
	assert.Contains(t, out, "loop:track  vol 0.0 dB")

	out = ansi.Strip(Render(State{Loaded: true, Title: "x"}, 80))
	assert.NotContains(t, out, "loop:")
}

func TestRender_Paused(t *testing.T) {
	out := ansi.Strip(Render(State{Loaded: true, Title: "x"}, 80))

	assert.Contains(t, out, pauseSymbol+" x")
}

func TestRender_Width(t *testing.T) {
	s := State{
		Loaded:   true,
		Title:    strings.Repeat("long title ", 10),
		Artist:   strings.Repeat("artist ", 10),
		Duration: time.Minute,
	}

	for _, width := range []int{60, 80, 140} {
		lines := strings.Split(Render(s, width), "\n")
		require.Len(t, lines, Height)
		for _, l := range lines {
			assert.Equal(t, width, ansi.StringWidth(l), "width %d", width)
		}
	}
}

func TestRenderProgressBar(t *testing.T) {
	out := ansi.Strip(RenderProgressBar(30*time.Second, time.Minute, 10))
	assert.Equal(t, "━━━━━─────", out)

	out = ansi.Strip(RenderProgressBar(time.Second, 0, 4))
	assert.Equal(t, "────", out)
}

func TestRenderVolume(t *testing.T) {
	assert.Equal(t, "vol -40.0 dB", ansi.Strip(RenderVolume(-40)))
	assert.Equal(t, "vol 0.0 dB", ansi.Strip(RenderVolume(0)))
}
