// Package ebitenview is an ebiten window backend for the clock grid.
package ebitenview

import (
	"context"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/clockgrid/internal/config"
	"github.com/san-kum/clockgrid/internal/dynamo"
	"github.com/san-kum/clockgrid/internal/face"
	"github.com/san-kum/clockgrid/internal/sim"
)

type Options struct {
	FPS          int
	MaxFrameTime float64
	Logger       *slog.Logger
	Metrics      []sim.Metric
}

// renderer draws into the screen image of the current Draw call.
type renderer struct {
	layout config.Layout
	dst    *ebiten.Image
}

func (r *renderer) Render(v dynamo.View) {
	if r.dst == nil {
		return
	}
	r.dst.Fill(face.Background)
	v.Each(func(c dynamo.Cell) {
		r.drawClock(face.New(r.layout, c))
	})
}

func (r *renderer) drawClock(f face.Face) {
	x, y := float32(f.X), float32(f.Y)
	ringR := float32(f.Radius - face.RingWidth/2.0)
	vector.StrokeCircle(r.dst, x, y, ringR, face.RingWidth, straight(f.Ring), true)

	ebitenutil.DebugPrintAt(r.dst, f.Label, int(f.LabelX), int(f.LabelY))

	for _, h := range f.Hands {
		vector.StrokeLine(r.dst, x, y, float32(h.X), float32(h.Y), 1, h.Color, true)
	}
}

// straight converts to non-premultiplied alpha, which is what face colours
// carry.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Game steps the grid once per Draw; ebiten calls Draw once per frame.
type Game struct {
	ctx      context.Context
	driver   *sim.Driver
	renderer *renderer
	err      error
}

func NewGame(ctx context.Context, grid *dynamo.Grid, l config.Layout, opts Options) *Game {
	r := &renderer{layout: l}
	d := sim.New(grid, r, sim.NewWallClock())
	d.SetLogger(opts.Logger)
	d.SetMaxFrameTime(opts.MaxFrameTime)
	for _, m := range opts.Metrics {
		d.AddMetric(m)
	}
	return &Game{ctx: ctx, driver: d, renderer: r}
}

func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	g.renderer.dst = screen
	g.err = g.driver.Frame()
	g.renderer.dst = nil
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.renderer.layout.ScreenWidth, g.renderer.layout.ScreenHeight
}

// Run opens a window and blocks until it is closed, ctx is done or a step
// fails.
func Run(ctx context.Context, grid *dynamo.Grid, l config.Layout, opts Options) (*sim.Result, error) {
	g := NewGame(ctx, grid, l, opts)

	ebiten.SetWindowSize(l.ScreenWidth, l.ScreenHeight)
	ebiten.SetWindowTitle("clockgrid")
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	if opts.Logger != nil {
		w, h := grid.Dims()
		opts.Logger.Info("ebiten window opened", "width", w, "height", h, "seed", grid.Seed())
	}

	if err := ebiten.RunGame(g); err != nil {
		return g.driver.Result(), err
	}
	if g.err != nil {
		return g.driver.Result(), g.err
	}
	return g.driver.Result(), nil
}
