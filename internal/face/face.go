// Package face computes what one clock looks like on screen: ring colour,
// speed label and hand endpoints. Window backends only rasterize a Face.
package face

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/clockgrid/internal/config"
	"github.com/san-kum/clockgrid/internal/dynamo"
)

const (
	RingWidth     = 5
	LabelFontSize = 8
	maxAlpha      = 200
)

var (
	Positive   = color.RGBA{0, 228, 48, 255}
	Negative   = color.RGBA{230, 41, 55, 255}
	LabelGray  = color.RGBA{130, 130, 130, 255}
	Background = color.RGBA{255, 255, 255, 255}

	handColors = [2]color.RGBA{
		{0, 0, 0, 255},
		{0, 117, 44, 255},
	}
)

type Hand struct {
	X, Y  float64
	Color color.RGBA
}

type Face struct {
	X, Y   float64
	Radius float64
	Ring   color.RGBA
	Label  string
	// LabelX, LabelY is the top-left of the speed label.
	LabelX, LabelY float64
	Hands          [2]Hand
}

// New lays out cell c at its layout position. Hand i has length
// radius/(i+1) and points along Phase[i].
func New(l config.Layout, c dynamo.Cell) Face {
	cx, cy := l.Center(c.X, c.Y)
	x, y := float64(cx), float64(cy)
	r := float64(l.Radius)

	f := Face{
		X:      x,
		Y:      y,
		Radius: r,
		Ring:   RingColor(c.Speed),
		Label:  Label(c.Speed),
		LabelX: x - r/2,
		LabelY: y,
	}
	for i := range f.Hands {
		hx, hy := dynamo.DefaultHandTable.Endpoint(x, y, r/float64(i+1), c.Phase[i])
		f.Hands[i] = Hand{X: hx, Y: hy, Color: handColors[i]}
	}
	return f
}

// RingColor is green for non-negative speeds and red otherwise, with
// alpha proportional to |speed| in turns per second.
func RingColor(speed float64) color.RGBA {
	col := Positive
	if speed < 0 {
		col = Negative
	}
	a := maxAlpha * math.Abs(speed) / dynamo.TwoPi
	if a > 255 || math.IsNaN(a) {
		a = 255
	}
	col.A = uint8(a)
	return col
}

// Label formats speed in turns per second.
func Label(speed float64) string {
	return fmt.Sprintf("%f", speed/dynamo.TwoPi)
}
