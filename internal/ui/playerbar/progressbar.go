package playerbar

import (
	"time"

	"github.com/llehouerou/shelf/internal/ui/styles"
)

// RenderProgressBar renders the elapsed share of duration as a gradient bar.
func RenderProgressBar(position, duration time.Duration, width int) string {
	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	return styles.T().ProgressBar(width, ratio)
}
