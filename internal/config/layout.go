package config

// Layout maps grid cells onto window pixels.
type Layout struct {
	ScreenWidth, ScreenHeight int
	Radius                    int
	Offset                    int
}

func (c *Config) Layout() Layout {
	offset := c.Screen.Offset
	if offset == 0 {
		offset = c.Screen.Radius + offsetMargin
	}
	return Layout{
		ScreenWidth:  c.Screen.Width,
		ScreenHeight: c.Screen.Height,
		Radius:       c.Screen.Radius,
		Offset:       offset,
	}
}

// Dims returns how many clocks of diameter 2*Radius fit after Offset.
func (l Layout) Dims() (width, height int) {
	if l.Radius <= 0 {
		return 0, 0
	}
	d := 2 * l.Radius
	width = (l.ScreenWidth - l.Offset) / d
	height = (l.ScreenHeight - l.Offset) / d
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return width, height
}

// Center returns the pixel centre of cell (i, j).
func (l Layout) Center(i, j int) (x, y int) {
	d := 2 * l.Radius
	return l.Offset + d*i, l.Offset + d*j
}
