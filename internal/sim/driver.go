package sim

import (
	"context"
	"log/slog"

	"github.com/san-kum/clockgrid/internal/dynamo"
	"github.com/san-kum/clockgrid/internal/logging"
)

// DefaultMaxFrameTime caps the elapsed time fed into one step. A window
// that stalls for longer is stepped as if this much time passed.
const DefaultMaxFrameTime = 0.25

// Driver runs the per-frame sequence: render the current state, let
// metrics and observers see it, then step the grid.
type Driver struct {
	grid         *dynamo.Grid
	view         dynamo.View
	renderer     Renderer
	clock        Clock
	metrics      []Metric
	observers    []Observer
	logger       *slog.Logger
	maxFrameTime float64

	frames  int
	simTime float64
	clamped int
}

func New(grid *dynamo.Grid, renderer Renderer, clock Clock) *Driver {
	if renderer == nil {
		renderer = NopRenderer{}
	}
	return &Driver{
		grid:         grid,
		view:         readOnly{grid},
		renderer:     renderer,
		clock:        clock,
		metrics:      make([]Metric, 0),
		observers:    make([]Observer, 0),
		logger:       slog.New(slog.DiscardHandler),
		maxFrameTime: DefaultMaxFrameTime,
	}
}

func (d *Driver) AddMetric(m Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) SetLogger(l *slog.Logger) {
	if l != nil {
		d.logger = l
	}
}

// SetMaxFrameTime sets the clamp on elapsed time; <= 0 disables it.
func (d *Driver) SetMaxFrameTime(seconds float64) { d.maxFrameTime = seconds }

// Grid returns the driven grid.
func (d *Driver) Grid() *dynamo.Grid { return d.grid }

// OnFrame renders the grid, then advances it by elapsed seconds.
func (d *Driver) OnFrame(elapsed float64) error {
	d.renderer.Render(d.view)

	for _, m := range d.metrics {
		m.Observe(d.view, d.simTime)
	}
	for _, obs := range d.observers {
		obs.OnFrame(d.view, d.simTime)
	}

	dt := elapsed
	if d.maxFrameTime > 0 && dt > d.maxFrameTime {
		d.logger.Debug("frame time clamped", "frame", d.frames, "elapsed", elapsed, "max", d.maxFrameTime)
		dt = d.maxFrameTime
		d.clamped++
	}

	if err := d.grid.Step(dt); err != nil {
		return &dynamo.StepError{Frame: d.frames, Time: d.simTime, Wrapped: err}
	}

	d.frames++
	d.simTime += dt

	if d.logger.Enabled(context.Background(), logging.LevelTrace) {
		d.logger.Log(context.Background(), logging.LevelTrace, "frame",
			"frame", d.frames, "dt", dt, "max_speed", d.grid.MaxSpeed())
	}
	return nil
}

// Frame runs OnFrame with the clock's elapsed time.
func (d *Driver) Frame() error {
	return d.OnFrame(d.clock.FrameTime())
}

// Run calls Frame until the window asks to stop or ctx is done.
func (d *Driver) Run(ctx context.Context, win Window) (*Result, error) {
	for _, m := range d.metrics {
		m.Reset()
	}

	w, h := d.grid.Dims()
	c := d.grid.Coupling()
	d.logger.Info("simulation started",
		"width", w,
		"height", h,
		"seed", d.grid.Seed(),
		"rate", c.Rate,
		"hand_ratio", c.HandRatio,
		"pacemakers", len(d.grid.Pacemakers()),
	)

	for !win.ShouldStop() {
		select {
		case <-ctx.Done():
			d.logger.Info("simulation canceled", "frames", d.frames)
			return d.Result(), ctx.Err()
		default:
		}

		if err := d.Frame(); err != nil {
			d.logger.Error("step failed", "frame", d.frames, "err", err)
			return d.Result(), err
		}
	}

	d.logger.Info("simulation stopped", "frames", d.frames, "sim_time", d.simTime, "clamped", d.clamped)
	return d.Result(), nil
}

// Result reports progress so far.
func (d *Driver) Result() *Result {
	res := &Result{
		Frames:  d.frames,
		SimTime: d.simTime,
		Clamped: d.clamped,
		Metrics: make(map[string]float64, len(d.metrics)),
	}
	for _, m := range d.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res
}

// readOnly hides the grid's mutating methods from renderers, metrics and
// observers.
type readOnly struct {
	g *dynamo.Grid
}

func (r readOnly) Dims() (int, int)          { return r.g.Dims() }
func (r readOnly) At(x, y int) dynamo.Cell   { return r.g.At(x, y) }
func (r readOnly) Each(fn func(dynamo.Cell)) { r.g.Each(fn) }
