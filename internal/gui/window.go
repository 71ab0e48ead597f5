// Package gui draws the clock grid in a raylib window.
package gui

import (
	"context"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/clockgrid/internal/config"
	"github.com/san-kum/clockgrid/internal/dynamo"
	"github.com/san-kum/clockgrid/internal/face"
	"github.com/san-kum/clockgrid/internal/sim"
)

const Title = "clockgrid"

// Options configure a windowed run.
type Options struct {
	FPS          int
	MaxFrameTime float64
	Logger       *slog.Logger
	Metrics      []sim.Metric
}

// Renderer draws one frame per Render call. It must be used on the
// thread that created the window.
type Renderer struct {
	layout config.Layout
}

func NewRenderer(l config.Layout) *Renderer {
	return &Renderer{layout: l}
}

func (r *Renderer) Render(v dynamo.View) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.White)
	v.Each(func(c dynamo.Cell) {
		drawClock(face.New(r.layout, c))
	})
	rl.EndDrawing()
}

func drawClock(f face.Face) {
	center := rl.NewVector2(float32(f.X), float32(f.Y))
	rl.DrawRing(center, float32(f.Radius-face.RingWidth), float32(f.Radius), 0, 360, 1, rlColor(f.Ring))

	rl.DrawText(f.Label, int32(f.LabelX), int32(f.LabelY), face.LabelFontSize, rlColor(face.LabelGray))

	for _, h := range f.Hands {
		rl.DrawLine(int32(f.X), int32(f.Y), int32(h.X), int32(h.Y), rlColor(h.Color))
	}
}

// Run opens a window sized to the layout and drives grid until the window
// is closed or ctx is done. Frame time comes from raylib.
func Run(ctx context.Context, grid *dynamo.Grid, l config.Layout, opts Options) (*sim.Result, error) {
	rl.InitWindow(int32(l.ScreenWidth), int32(l.ScreenHeight), Title)
	defer rl.CloseWindow()
	if opts.FPS > 0 {
		rl.SetTargetFPS(int32(opts.FPS))
	}

	clock := sim.ClockFunc(func() float64 { return float64(rl.GetFrameTime()) })
	d := sim.New(grid, NewRenderer(l), clock)
	d.SetLogger(opts.Logger)
	d.SetMaxFrameTime(opts.MaxFrameTime)
	for _, m := range opts.Metrics {
		d.AddMetric(m)
	}

	return d.Run(ctx, sim.WindowFunc(rl.WindowShouldClose))
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
