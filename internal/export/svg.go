package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/clockgrid/internal/config"
	"github.com/san-kum/clockgrid/internal/dynamo"
	"github.com/san-kum/clockgrid/internal/face"
)

// GridToSVG draws every clock of v the way the window backends do.
func GridToSVG(v dynamo.View, l config.Layout) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, l.ScreenWidth, l.ScreenHeight, l.ScreenWidth, l.ScreenHeight, hex(face.Background)))

	v.Each(func(c dynamo.Cell) {
		writeClock(&sb, face.New(l, c))
	})

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeClock(sb *strings.Builder, f face.Face) {
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-opacity="%.3f" stroke-width="%d"/>
`, f.X, f.Y, f.Radius-face.RingWidth/2.0, hex(f.Ring), float64(f.Ring.A)/255, face.RingWidth))

	sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" font-size="%d" fill="%s">%s</text>
`, f.LabelX, f.LabelY+face.LabelFontSize, face.LabelFontSize, hex(face.LabelGray), f.Label))

	for _, h := range f.Hands {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s"/>
`, f.X, f.Y, h.X, h.Y, hex(h.Color)))
	}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
