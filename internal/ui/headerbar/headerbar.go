// Package headerbar renders the single-line title and focus tabs.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/shelf/internal/ui/render"
	"github.com/llehouerou/shelf/internal/ui/styles"
)

// Height is the fixed height of the header bar.
const Height = 1

const title = "shelf"

// Tab is one focusable panel.
type Tab struct {
	Name   string
	Active bool
}

// Status is the right-hand message; Err selects the error style.
type Status struct {
	Text string
	Err  bool
}

// Render returns "shelf  Albums │ Queue ... status" padded to width.
func Render(tabs []Tab, status Status, width int) string {
	if width <= 0 {
		return ""
	}
	t := styles.T()
	s := t.S()

	parts := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		if tab.Active {
			parts = append(parts, s.Title.Render(tab.Name))
		} else {
			parts = append(parts, s.Muted.Render(tab.Name))
		}
	}
	left := styles.Gradient(title, true, t.Primary, t.Secondary) + "  " +
		strings.Join(parts, s.Subtle.Render(" │ "))

	right := ""
	if status.Text != "" {
		room := max(width-lipgloss.Width(left)-2, 0)
		text := render.Truncate(status.Text, room)
		if status.Err {
			right = s.Error.Render(text)
		} else {
			right = s.Muted.Render(text)
		}
	}

	return render.FitStyled(render.Row(left, right, width), width)
}
