package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// Volume bounds in decibels relative to full scale.
const (
	MinVolumeDB = -40.0
	MaxVolumeDB = 0.0
)

// ClampVolumeDB limits db to [MinVolumeDB, MaxVolumeDB]. NaN maps to 0 dB.
func ClampVolumeDB(db float64) float64 {
	if math.IsNaN(db) {
		return MaxVolumeDB
	}
	return max(MinVolumeDB, min(db, MaxVolumeDB))
}

// Gain converts decibels to a linear amplitude factor: 10^(db/20).
func Gain(db float64) float64 {
	return math.Pow(10, db/20)
}

// SetVolumeDB sets the output gain in decibels. The value is clamped and kept
// across loads.
func (p *Player) SetVolumeDB(db float64) {
	db = ClampVolumeDB(db)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.volumeDB = db
	if p.volume != nil {
		speaker.Lock()
		p.volume.Volume = db / 20
		speaker.Unlock()
	}
}

// VolumeDB returns the current output gain in decibels.
func (p *Player) VolumeDB() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volumeDB
}
