package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestGradient_KeepsText(t *testing.T) {
	tests := []string{"", "s", "shelf", "Björk", "日本語"}
	for _, text := range tests {
		got := ansi.Strip(Gradient(text, true, T().Primary, T().Secondary))
		if got != text {
			t.Errorf("Gradient(%q) stripped = %q", text, got)
		}
	}
}

func TestBlend_Endpoints(t *testing.T) {
	colors := blend(5, lipgloss.Color("#000000"), lipgloss.Color("#ffffff"))

	if len(colors) != 5 {
		t.Fatalf("len = %d, want 5", len(colors))
	}
	if colors[0].Hex() != "#000000" {
		t.Errorf("first = %s, want #000000", colors[0].Hex())
	}
	if colors[4].Hex() != "#ffffff" {
		t.Errorf("last = %s, want #ffffff", colors[4].Hex())
	}
}

func TestToColorful_AnsiFallsBackToGray(t *testing.T) {
	c := toColorful(lipgloss.Color("240"))
	r, g, b := c.RGB255()
	if r != g || g != b {
		t.Errorf("fallback = %d,%d,%d, want gray", r, g, b)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		width  int
		ratio  float64
		filled int
	}{
		{10, 0, 0},
		{10, 0.5, 5},
		{10, 1, 10},
		{10, 2, 10},
		{10, -1, 0},
	}
	for _, tt := range tests {
		got := ansi.Strip(T().ProgressBar(tt.width, tt.ratio))
		if n := strings.Count(got, "━"); n != tt.filled {
			t.Errorf("ProgressBar(%d, %v) filled = %d, want %d", tt.width, tt.ratio, n, tt.filled)
		}
		if w := ansi.StringWidth(got); w != tt.width {
			t.Errorf("ProgressBar(%d, %v) width = %d", tt.width, tt.ratio, w)
		}
	}
	if T().ProgressBar(0, 0.5) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestPanelStyle_BorderColor(t *testing.T) {
	if PanelStyle(true).GetBorderTopForeground() != T().BorderFocus {
		t.Error("focused panel should use focus border")
	}
	if PanelStyle(false).GetBorderTopForeground() != T().Border {
		t.Error("unfocused panel should use base border")
	}
}
