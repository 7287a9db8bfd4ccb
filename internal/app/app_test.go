package app

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/shelf/internal/collection"
	"github.com/llehouerou/shelf/internal/library"
	"github.com/llehouerou/shelf/internal/playback"
	"github.com/llehouerou/shelf/internal/player"
	"github.com/llehouerou/shelf/internal/playlist"
	"github.com/llehouerou/shelf/internal/state"
	"github.com/llehouerou/shelf/internal/ui/action"
	"github.com/llehouerou/shelf/internal/ui/helpbindings"
	"github.com/llehouerou/shelf/internal/ui/testutil"
)

type harness struct {
	t        *testing.T
	reg      *library.Registry
	queue    *playlist.Queue
	player   *player.Mock
	settings *state.Mock
	driver   *playback.Driver
	m        Model

	blueTrain  []int64 // John Coltrane, listed first
	kindOfBlue []int64 // Miles Davis
}

func reverseShuffler(n int, swap func(i, j int)) {
	for i := range n / 2 {
		swap(i, n-1-i)
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{t: t, reg: library.NewRegistry(), player: player.NewMock(), settings: state.NewMock()}
	h.blueTrain = h.addAlbum("Blue Train", "John Coltrane", 2)
	h.kindOfBlue = h.addAlbum("Kind of Blue", "Miles Davis", 3)

	// Jazz holds the last two Kind of Blue tracks; its Ballads child the
	// second Blue Train track.
	collections := &collection.Library{Collections: []*collection.Collection{
		collection.New("Jazz", h.kindOfBlue[1:], collection.New("Ballads", h.blueTrain[1:])),
	}}

	h.queue = playlist.New(h.reg, playlist.WithShuffler(reverseShuffler))
	h.driver = playback.New(h.player, h.queue, h.reg, playback.WithSettings(h.settings))
	h.m = New(Deps{Registry: h.reg, Collections: collections, Queue: h.queue, Driver: h.driver})
	h.send(tea.WindowSizeMsg{Width: 120, Height: 30})
	return h
}

func (h *harness) addAlbum(name, artist string, n int) []int64 {
	a := h.reg.NewAlbum(name, artist)
	for i := range n {
		tr := h.reg.NewTrack(library.Track{
			AlbumID:  a.ID,
			Path:     fmt.Sprintf("/music/%s/%d.mp3", name, i+1),
			Title:    fmt.Sprintf("%s %d", name, i+1),
			Artist:   artist,
			Duration: 5 * time.Minute,
		})
		a.TrackIDs = append(a.TrackIDs, tr.ID)
	}
	return a.TrackIDs
}

// send runs msg through Update, then feeds back any action the returned
// command produced.
func (h *harness) send(msg tea.Msg) tea.Cmd {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	if cmd == nil {
		return nil
	}
	if _, isKey := msg.(tea.KeyMsg); isKey {
		if out, ok := cmd().(action.Msg); ok {
			return h.send(out)
		}
	}
	return cmd
}

func (h *harness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		h.send(testutil.Key(k))
	}
}

func (h *harness) view() string {
	return ansi.Strip(h.m.View())
}

func (h *harness) currentID() int64 {
	h.t.Helper()
	tr := h.driver.CurrentTrack()
	require.NotNil(h.t, tr)
	return tr.ID
}

func TestView_Initial(t *testing.T) {
	h := newHarness(t)

	out := h.view()

	assert.Contains(t, out, "shelf")
	assert.Contains(t, out, "Albums (2) · 5 tracks")
	assert.Contains(t, out, "Queue (0/0)")
	assert.Contains(t, out, "Nothing playing")
	assert.Equal(t, FocusBrowser, h.m.Focus())
}

func TestView_ZeroSize(t *testing.T) {
	h := newHarness(t)
	h.send(tea.WindowSizeMsg{})

	assert.Empty(t, h.m.View())
}

func TestAppendAlbum(t *testing.T) {
	h := newHarness(t)

	h.press("a")

	assert.Equal(t, h.blueTrain, h.queue.IDs())
	assert.False(t, h.driver.IsPlaying())
	assert.Equal(t, []string{"/music/Blue Train/1.mp3"}, h.player.LoadCalls())
	assert.Equal(t, "Added Blue Train (2 tracks)", h.m.Status().Text)
	assert.Contains(t, h.view(), "Queue (1/2)")
}

func TestInsertAlbumNext(t *testing.T) {
	h := newHarness(t)
	h.press("a", "j", "i")

	want := []int64{h.blueTrain[0], h.kindOfBlue[0], h.kindOfBlue[1], h.kindOfBlue[2], h.blueTrain[1]}
	assert.Equal(t, want, h.queue.IDs())
	assert.Contains(t, h.m.Status().Text, "Kind of Blue next")
}

func TestPlayAlbum_ReplacesQueue(t *testing.T) {
	h := newHarness(t)
	h.press("a", "j", "enter")

	assert.Equal(t, h.kindOfBlue, h.queue.IDs())
	assert.True(t, h.driver.IsPlaying())
	assert.Equal(t, h.kindOfBlue[0], h.currentID())
	assert.Equal(t, 1, h.player.PlayCalls())
	assert.Contains(t, h.view(), "Kind of Blue 1")
}

func TestPlayAlbum_LoadFailureShowsError(t *testing.T) {
	h := newHarness(t)
	h.player.SetLoadError(errors.New("device busy"))

	h.press("enter")

	assert.False(t, h.driver.IsPlaying())
	assert.True(t, h.m.Status().Err)
	assert.Contains(t, h.m.Status().Text, "Failed to start playback")
	assert.Contains(t, h.m.Status().Text, "device busy")
}

func TestAlbumTracks_PlayFromTrack(t *testing.T) {
	h := newHarness(t)
	h.press("a", "j", "o", "j", "enter")

	assert.Equal(t, h.kindOfBlue, h.queue.IDs())
	assert.Equal(t, 1, h.queue.CurrentIndex())
	assert.Equal(t, h.kindOfBlue[1], h.currentID())
	assert.True(t, h.driver.IsPlaying())
	assert.Equal(t, "Playing Kind of Blue", h.m.Status().Text)
}

func TestAlbumTracks_SingleTracks(t *testing.T) {
	h := newHarness(t)
	h.press("a", "j", "o")
	require.Contains(t, h.view(), "Kind of Blue · Miles Davis · 3 tracks")

	h.press("i")
	assert.Equal(t, "Playing Kind of Blue 1 next", h.m.Status().Text)
	h.press("j", "a")
	assert.Equal(t, "Added Kind of Blue 2", h.m.Status().Text)
	h.press("j", "P")

	want := []int64{h.blueTrain[0], h.kindOfBlue[0], h.blueTrain[1], h.kindOfBlue[1], h.kindOfBlue[2]}
	assert.Equal(t, want, h.queue.IDs())
	assert.Equal(t, 4, h.queue.CurrentIndex())
	assert.True(t, h.driver.IsPlaying())
	assert.Equal(t, "Playing Kind of Blue 3", h.m.Status().Text)
}

func TestAlbumTracks_Back(t *testing.T) {
	h := newHarness(t)
	h.press("o")
	require.NotNil(t, h.m.browser.OpenAlbum())

	h.press("esc")
	assert.Nil(t, h.m.browser.OpenAlbum())

	h.press("a")
	assert.Equal(t, h.blueTrain, h.queue.IDs())
}

func TestCollectionPicker(t *testing.T) {
	h := newHarness(t)

	h.press("f")
	require.True(t, h.m.PickerVisible())
	assert.Contains(t, h.view(), "Collections")
	assert.Contains(t, h.view(), "Ballads")

	h.press("j", "enter")
	require.False(t, h.m.PickerVisible())
	assert.Equal(t, "Browsing Jazz", h.m.Status().Text)
	assert.Equal(t, "Jazz", h.m.browser.Filter())
	assert.Contains(t, h.view(), "Albums (2) · 3 tracks · Jazz")

	h.press("a")
	assert.Equal(t, h.blueTrain[1:], h.queue.IDs(), "only the collection's tracks")

	h.press("j", "enter")
	assert.Equal(t, h.kindOfBlue[1:], h.queue.IDs())
	assert.Equal(t, h.kindOfBlue[1], h.currentID())

	h.press("f")
	assert.Equal(t, 1, h.m.picker.Cursor(), "opens on the browsed collection")
	h.press("k", "enter")
	assert.Empty(t, h.m.browser.Filter())
	assert.Equal(t, "Browsing all albums", h.m.Status().Text)
	assert.Contains(t, h.view(), "Albums (2) · 5 tracks")
}

func TestCollectionPicker_Close(t *testing.T) {
	h := newHarness(t)

	for _, k := range []string{"esc", "q", "f"} {
		h.press("f")
		require.True(t, h.m.PickerVisible())

		h.press(k)
		assert.False(t, h.m.PickerVisible(), k)
	}
	assert.Empty(t, h.m.browser.Filter())
	assert.Empty(t, h.queue.IDs())
}

func TestQueueFocus_MoveAndJump(t *testing.T) {
	h := newHarness(t)
	h.press("j", "a", "tab")
	require.Equal(t, FocusQueue, h.m.Focus())

	h.press("J")
	assert.Equal(t, []int64{h.kindOfBlue[1], h.kindOfBlue[0], h.kindOfBlue[2]}, h.queue.IDs())
	assert.Equal(t, 1, h.m.queuePanel.Cursor())
	assert.Equal(t, 1, h.queue.CurrentIndex())

	h.press("j", "enter")
	assert.Equal(t, 2, h.queue.CurrentIndex())
	assert.Equal(t, h.kindOfBlue[2], h.currentID())
	assert.True(t, h.driver.IsPlaying())
}

func TestQueueFocus_DeleteSelection(t *testing.T) {
	h := newHarness(t)
	h.press("j", "a", "tab", "x", "x", "d")

	assert.Equal(t, []int64{h.kindOfBlue[2]}, h.queue.IDs())
	assert.Empty(t, h.m.queuePanel.Selected())
	assert.Equal(t, 0, h.m.queuePanel.Cursor())
}

func TestTrackFinished_Advances(t *testing.T) {
	h := newHarness(t)
	h.press("j", "enter")

	cmd := h.send(TrackFinishedMsg{})

	require.NotNil(t, cmd, "the watcher is re-armed")
	assert.Equal(t, h.kindOfBlue[1], h.currentID())
	assert.True(t, h.driver.IsPlaying())
	assert.Equal(t, 1, h.m.queuePanel.Cursor())
}

func TestTrackFinished_EndOfQueue(t *testing.T) {
	h := newHarness(t)
	h.press("enter", "n")
	require.Equal(t, h.blueTrain[1], h.currentID())

	h.send(TrackFinishedMsg{})

	assert.False(t, h.driver.IsPlaying())
	assert.Equal(t, h.blueTrain[1], h.currentID())
}

func TestPlaybackKeys(t *testing.T) {
	h := newHarness(t)
	h.press("j", "enter")

	h.press("space")
	assert.False(t, h.driver.IsPlaying())
	h.press("space")
	assert.True(t, h.driver.IsPlaying())

	h.press("n")
	assert.Equal(t, h.kindOfBlue[1], h.currentID())
	h.press("p")
	assert.Equal(t, h.kindOfBlue[0], h.currentID())

	h.press("r")
	assert.Equal(t, playlist.LoopQueue, h.queue.LoopMode())
	assert.Equal(t, "Loop: queue", h.m.Status().Text)
	assert.Contains(t, h.view(), "loop:queue")

	h.press("s")
	assert.Equal(t, []int64{h.kindOfBlue[2], h.kindOfBlue[1], h.kindOfBlue[0]}, h.queue.IDs())
	assert.Equal(t, h.kindOfBlue[0], h.currentID(), "shuffle keeps the current track")

	h.press("c")
	assert.Empty(t, h.queue.IDs())
	assert.Nil(t, h.driver.CurrentTrack())
	assert.Equal(t, "Queue cleared", h.m.Status().Text)
}

func TestVolumeKeys(t *testing.T) {
	h := newHarness(t)

	h.press("-", "-")
	assert.InDelta(t, -2.0, h.driver.VolumeDB(), 1e-9)
	saved, ok, err := h.settings.GetFloat(state.KeyVolume)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, -2.0, saved, 1e-9)

	h.press("+", "+", "+")
	assert.InDelta(t, 0.0, h.driver.VolumeDB(), 1e-9)
	assert.Contains(t, h.view(), "vol 0.0 dB")
}

func TestVolumeKeys_SaveFailure(t *testing.T) {
	h := newHarness(t)
	h.settings.SetErr = errors.New("disk full")

	h.press("-")

	assert.True(t, h.m.Status().Err)
	assert.Contains(t, h.m.Status().Text, "Failed to save volume")
}

func TestSeekKeys(t *testing.T) {
	h := newHarness(t)
	h.press("enter")

	h.player.SetPosition(10 * time.Second)
	h.press("right")
	h.player.SetPosition(2 * time.Second)
	h.press("left")

	assert.Equal(t, []time.Duration{15 * time.Second, 0}, h.player.SeekCalls())
}

func TestSeekKeys_NothingLoaded(t *testing.T) {
	h := newHarness(t)

	h.press("right")

	assert.Empty(t, h.player.SeekCalls())
	assert.False(t, h.m.Status().Err)
}

func TestHelp(t *testing.T) {
	h := newHarness(t)

	h.press("?")
	require.True(t, h.m.HelpVisible())
	assert.Contains(t, h.view(), "Album Browser")

	h.press("a")
	assert.Empty(t, h.queue.IDs(), "help swallows list keys")

	h.press("esc")
	assert.False(t, h.m.HelpVisible())
}

func TestHelp_CloseAction(t *testing.T) {
	h := newHarness(t)
	h.press("?")

	h.send(action.Msg{Source: helpbindings.Source, Action: helpbindings.Close{}})

	assert.False(t, h.m.HelpVisible())
}

func TestQuit(t *testing.T) {
	h := newHarness(t)

	_, cmd := h.m.Update(testutil.Key("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestTick(t *testing.T) {
	h := newHarness(t)
	var ticks []time.Duration
	h.driver.Events().TimeChange.AddListener(func(d time.Duration) { ticks = append(ticks, d) })

	cmd := h.send(TickMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Empty(t, ticks, "no ticks while stopped")

	h.press("enter")
	h.player.SetPosition(42 * time.Second)
	h.send(TickMsg(time.Now()))
	assert.Equal(t, []time.Duration{42 * time.Second}, ticks)
}

func TestWatchFinished(t *testing.T) {
	p := player.NewMock()
	cmd := WatchFinished(p.FinishedChan())

	p.SimulateFinished()

	assert.Equal(t, TrackFinishedMsg{}, cmd())

	closed := make(chan struct{})
	close(closed)
	assert.Nil(t, WatchFinished(closed)())
}

func TestStderrLineShownAsError(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(StderrMsg{Line: "ALSA lib pcm.c:8545: underrun occurred"})

	assert.Nil(t, cmd, "no capture channel to re-watch")
	assert.True(t, h.m.Status().Err)
	assert.Equal(t, "ALSA lib pcm.c:8545: underrun occurred", h.m.Status().Text)
}

func TestWatchStderr(t *testing.T) {
	assert.Nil(t, WatchStderr(nil))

	lines := make(chan string, 1)
	lines <- "underrun"
	assert.Equal(t, StderrMsg{Line: "underrun"}, WatchStderr(lines)())

	close(lines)
	assert.Nil(t, WatchStderr(lines)())
}
