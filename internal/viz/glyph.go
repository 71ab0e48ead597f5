package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/crazy3lf/colorconv"

	"github.com/san-kum/clockgrid/internal/dynamo"
)

const pacemakerGlyph = '●'

// arrows are ordered by phase in eighth turns. Terminal rows grow
// downward, so a quarter turn points down.
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Glyph returns the arrow nearest to phase.
func Glyph(phase float64) rune {
	sector := int(math.Floor(phase/(dynamo.TwoPi/8) + 0.5))
	sector %= 8
	if sector < 0 {
		sector += 8
	}
	return arrows[sector]
}

// SpeedColor maps a speed to the theme hue for its sign, brighter as
// |speed| approaches one turn per second.
func SpeedColor(t Theme, speed float64) lipgloss.Color {
	hue := t.PositiveHue
	if speed < 0 {
		hue = t.NegativeHue
	}
	mag := math.Abs(speed) / dynamo.TwoPi
	if mag > 1 || math.IsNaN(mag) {
		mag = 1
	}
	r, g, b, err := colorconv.HSVToRGB(hue, 1, 0.35+0.65*mag)
	if err != nil {
		return t.Muted
	}
	return lipgloss.Color(hexColor(r, g, b))
}

// GridRenderer keeps the most recent frame as styled text.
type GridRenderer struct {
	Theme Theme
	frame string
}

func NewGridRenderer(t Theme) *GridRenderer {
	return &GridRenderer{Theme: t}
}

func (r *GridRenderer) Render(v dynamo.View) {
	w, h := v.Dims()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := v.At(x, y)
			g := Glyph(c.Phase[0])
			if c.Locked {
				g = pacemakerGlyph
			}
			style := lipgloss.NewStyle().Foreground(SpeedColor(r.Theme, c.Speed))
			sb.WriteString(style.Render(string(g)))
			if x < w-1 {
				sb.WriteByte(' ')
			}
		}
		if y < h-1 {
			sb.WriteByte('\n')
		}
	}
	r.frame = sb.String()
}

func (r *GridRenderer) String() string { return r.frame }
