package playback

import (
	"fmt"
	"log/slog"

	"github.com/llehouerou/shelf/internal/player"
	"github.com/llehouerou/shelf/internal/state"
)

// VolumeStep is the change applied by VolumeUp and VolumeDown, in dB.
const VolumeStep = 1.0

func (d *Driver) restoreVolume() {
	if d.settings == nil {
		return
	}
	db, ok, err := d.settings.GetFloat(state.KeyVolume)
	if err != nil {
		d.logger.Warn("read volume failed", slog.Any("error", err))
		return
	}
	if ok {
		d.player.SetVolumeDB(db)
	}
}

// VolumeDB returns the output gain in decibels.
func (d *Driver) VolumeDB() float64 {
	return d.player.VolumeDB()
}

// SetVolumeDB changes the output gain and persists it. The value is
// clamped to the sink's range; the gain is applied even if saving fails.
func (d *Driver) SetVolumeDB(db float64) error {
	d.player.SetVolumeDB(player.ClampVolumeDB(db))
	if d.settings == nil {
		return nil
	}
	if err := d.settings.SetFloat(state.KeyVolume, d.player.VolumeDB()); err != nil {
		return fmt.Errorf("save volume: %w", err)
	}
	return nil
}

// VolumeUp raises the gain by VolumeStep.
func (d *Driver) VolumeUp() error {
	return d.SetVolumeDB(d.VolumeDB() + VolumeStep)
}

// VolumeDown lowers the gain by VolumeStep.
func (d *Driver) VolumeDown() error {
	return d.SetVolumeDB(d.VolumeDB() - VolumeStep)
}
