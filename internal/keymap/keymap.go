package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding contexts.
const (
	ContextGlobal   = "global"
	ContextPlayback = "playback"
	ContextBrowser  = "browser"
	ContextQueue    = "queue"
	ContextTracks   = "tracks"
	ContextPicker   = "picker"
)

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Help returns the binding as a bubbles key binding for help rendering.
// The first key is shown; space is spelled out.
func (b Binding) Help() key.Binding {
	shown := b.Keys[0]
	if shown == " " {
		shown = "space"
	}
	return key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(shown, b.Description))
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", ContextGlobal},
	{ActionHelp, []string{"?"}, "Toggle help", ContextGlobal},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", ContextPlayback},
	{ActionNextTrack, []string{"n"}, "Next track", ContextPlayback},
	{ActionPrevTrack, []string{"p"}, "Previous track", ContextPlayback},
	{ActionSeekForward, []string{"right", "l"}, "Seek +5s", ContextPlayback},
	{ActionSeekBack, []string{"left", "h"}, "Seek -5s", ContextPlayback},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextPlayback},
	{ActionVolumeDown, []string{"-"}, "Volume down", ContextPlayback},
	{ActionCycleLoop, []string{"r"}, "Cycle loop mode", ContextPlayback},
	{ActionShuffle, []string{"s"}, "Shuffle queue", ContextPlayback},
	{ActionClearQueue, []string{"c"}, "Clear queue", ContextPlayback},

	// Album browser
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextBrowser},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextBrowser},
	{ActionTop, []string{"g", "home"}, "First album", ContextBrowser},
	{ActionBottom, []string{"G", "end"}, "Last album", ContextBrowser},
	{ActionAppendAlbum, []string{"a"}, "Add album to queue", ContextBrowser},
	{ActionInsertAlbum, []string{"i"}, "Insert album after current", ContextBrowser},
	{ActionPlayAlbum, []string{"enter"}, "Add album and play", ContextBrowser},
	{ActionOpenAlbum, []string{"o"}, "Show album tracks", ContextBrowser},
	{ActionFilter, []string{"f"}, "Browse a collection", ContextBrowser},

	// Album tracks
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextTracks},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextTracks},
	{ActionTop, []string{"g", "home"}, "First track", ContextTracks},
	{ActionBottom, []string{"G", "end"}, "Last track", ContextTracks},
	{ActionPlayFrom, []string{"enter"}, "Play album from track", ContextTracks},
	{ActionPlayTrack, []string{"P"}, "Add track and play it", ContextTracks},
	{ActionAppendTrack, []string{"a"}, "Add track to queue", ContextTracks},
	{ActionInsertTrack, []string{"i"}, "Play track next", ContextTracks},
	{ActionAppendAlbum, []string{"A"}, "Add all listed tracks", ContextTracks},
	{ActionBack, []string{"esc", "backspace", "o"}, "Back to albums", ContextTracks},

	// Queue panel
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextQueue},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextQueue},
	{ActionTop, []string{"g", "home"}, "First item", ContextQueue},
	{ActionBottom, []string{"G", "end"}, "Last item", ContextQueue},
	{ActionJumpTo, []string{"enter"}, "Play track", ContextQueue},
	{ActionDelete, []string{"d", "delete"}, "Remove selected", ContextQueue},
	{ActionToggleSelect, []string{"x"}, "Toggle selection", ContextQueue},
	{ActionClearSelection, []string{"esc"}, "Clear selection", ContextQueue},
	{ActionMoveItemsDown, []string{"J", "shift+down"}, "Move selected down", ContextQueue},
	{ActionMoveItemsUp, []string{"K", "shift+up"}, "Move selected up", ContextQueue},

	// Collection picker
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextPicker},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextPicker},
	{ActionTop, []string{"g", "home"}, "First entry", ContextPicker},
	{ActionBottom, []string{"G", "end"}, "Last entry", ContextPicker},
	{ActionSelect, []string{"enter"}, "Browse collection", ContextPicker},
	{ActionClose, []string{"esc", "f", "q"}, "Close", ContextPicker},
}

// ByContext returns key bindings filtered by context.
func ByContext(contexts ...string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		for _, c := range contexts {
			if kb.Context == c {
				result = append(result, kb)
				break
			}
		}
	}
	return result
}
