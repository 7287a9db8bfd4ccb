package playerbar

import (
	"github.com/llehouerou/shelf/internal/player"
	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

// RenderVolume renders the gain indicator, dimmed at the quiet end.
func RenderVolume(db float64) string {
	st := styles.T().S()
	text := "vol " + render.Gain(db)
	if db <= player.MinVolumeDB {
		return st.Subtle.Render(text)
	}
	return st.Muted.Render(text)
}
