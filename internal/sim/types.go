package sim

import "github.com/san-kum/clockgrid/internal/dynamo"

// Renderer receives read-only grid state once per frame, before the step.
type Renderer interface {
	Render(v dynamo.View)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(v dynamo.View)

func (f RendererFunc) Render(v dynamo.View) { f(v) }

// NopRenderer discards every frame.
type NopRenderer struct{}

func (NopRenderer) Render(dynamo.View) {}

// Clock supplies the elapsed seconds since the previous frame.
type Clock interface {
	FrameTime() float64
}

// Window reports when the frame loop should end. It is polled once per
// loop iteration.
type Window interface {
	ShouldStop() bool
}

// WindowFunc adapts a function to Window.
type WindowFunc func() bool

func (f WindowFunc) ShouldStop() bool { return f() }

type Metric interface {
	Name() string
	Observe(v dynamo.View, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(v dynamo.View, t float64)
}

// Result summarizes a Run.
type Result struct {
	Frames  int
	SimTime float64
	// Clamped counts frames whose elapsed time exceeded the driver maximum.
	Clamped int
	Metrics map[string]float64
}

// MeanFrameTime is the simulated time per frame after clamping, which is
// the spacing of per-frame samples. It is 0 before the first frame.
func (r *Result) MeanFrameTime() float64 {
	if r.Frames == 0 {
		return 0
	}
	return r.SimTime / float64(r.Frames)
}
