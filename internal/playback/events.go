package playback

import (
	"time"

	"github.com/llehouerou/shelf/internal/emitter"
)

// Events groups the driver's notification channels.
//
// Play, Pause and Finish carry the id of the current track. Finish is
// always preceded by Pause for the same track.
type Events struct {
	Play       *emitter.Emitter[int64]
	Pause      *emitter.Emitter[int64]
	Finish     *emitter.Emitter[int64]
	Clear      *emitter.Emitter[struct{}]
	TimeChange *emitter.Emitter[time.Duration]
}

func newEvents() Events {
	return Events{
		Play:       emitter.New[int64](),
		Pause:      emitter.New[int64](),
		Finish:     emitter.New[int64](),
		Clear:      emitter.New[struct{}](),
		TimeChange: emitter.New[time.Duration](),
	}
}
