package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Gradient renders text with a horizontal color gradient, one color per
// grapheme cluster.
func Gradient(text string, bold bool, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(bold).Render(text)
	}

	colors := blend(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors[i].Hex())).
			Bold(bold).
			Render(cluster))
	}
	return b.String()
}

// ProgressBar renders a bar of width cells with the first filled cells
// drawn as a gradient and the rest as a dim track.
func (t *Theme) ProgressBar(width int, ratio float64) string {
	if width <= 0 {
		return ""
	}
	ratio = max(0, min(ratio, 1))
	filled := int(float64(width) * ratio)

	var b strings.Builder
	if filled > 0 {
		b.WriteString(Gradient(strings.Repeat("━", filled), false, t.Primary, t.Secondary))
	}
	b.WriteString(lipgloss.NewStyle().Foreground(t.FgSubtle).Render(strings.Repeat("─", width-filled)))
	return b.String()
}

// blend returns size colors between from and to, interpolated in HCL space.
func blend(size int, from, to lipgloss.Color) []colorful.Color {
	c1 := toColorful(from)
	c2 := toColorful(to)

	colors := make([]colorful.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped()
	}
	return colors
}

// toColorful parses a #rrggbb lipgloss color. ANSI color numbers map to gray.
func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	gray, _ := colorful.MakeColor(color.Gray{Y: 128})
	return gray
}
