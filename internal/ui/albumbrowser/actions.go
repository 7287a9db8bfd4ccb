package albumbrowser

// Source names this panel in action messages.
const Source = "albumbrowser"

// QueueMode says where queued tracks go.
type QueueMode int

const (
	QueueAppend     QueueMode = iota // end of the queue
	QueueInsertNext                  // right after the current track
	QueuePlay                        // see QueueAlbum and QueueTracks
)

// QueueAlbum asks the app to queue the listed tracks of an album. With
// QueuePlay the queue is replaced and playback starts at TrackIDs[Start].
type QueueAlbum struct {
	Mode     QueueMode
	AlbumID  int64
	TrackIDs []int64
	Start    int
}

func (QueueAlbum) ActionType() string { return "albumbrowser.queue_album" }

// QueueTracks asks the app to queue single tracks. With QueuePlay they are
// appended and the first of them is played.
type QueueTracks struct {
	Mode     QueueMode
	TrackIDs []int64
}

func (QueueTracks) ActionType() string { return "albumbrowser.queue_tracks" }

// PickCollection asks the app for the collection picker.
type PickCollection struct{}

func (PickCollection) ActionType() string { return "albumbrowser.pick_collection" }
