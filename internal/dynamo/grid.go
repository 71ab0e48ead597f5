package dynamo

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Grid is a fixed-size rectangle of coupled oscillators stored row-major.
type Grid struct {
	width, height int
	cells         []Oscillator
	coupling      Coupling
	pacemakers    []Pacemaker
	workers       int
	seed          int64
}

var _ View = (*Grid)(nil)

// New builds a grid with initial conditions, neighbor counts and
// pacemakers applied.
func New(p Params) (*Grid, error) {
	if p.Init == "" {
		p.Init = InitRandom
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Grid{
		width:    p.Width,
		height:   p.Height,
		cells:    make([]Oscillator, p.Width*p.Height),
		coupling: p.Coupling,
		workers:  p.Workers,
		seed:     seed,
	}

	rng := rand.New(rand.NewSource(seed))
	// Column-major draw order keeps a seed's layout stable across widths of
	// the same height.
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			o := &g.cells[g.index(x, y)]
			o.X, o.Y = x, y
			o.Neighbors = g.countNeighbors(x, y)
			if p.Init == InitRandom {
				o.Phase[0] = TwoPi * float64(rng.Intn(initSteps)) / initSteps
				o.Phase[1] = TwoPi * float64(rng.Intn(initSteps)) / initSteps
				o.Speed = TwoPi * float64(rng.Intn(2*initSteps)-initSteps) / initSteps
			}
		}
	}

	pacemakers := p.Pacemakers
	if pacemakers == nil {
		pacemakers = DefaultPacemakers(g.width, g.height)
	}
	for _, pm := range pacemakers {
		if !g.inBounds(pm.X, pm.Y) {
			continue
		}
		o := &g.cells[g.index(pm.X, pm.Y)]
		o.Speed = pm.Speed
		o.Locked = true
		g.pacemakers = append(g.pacemakers, pm)
	}

	return g, nil
}

// Dims returns the grid width and height.
func (g *Grid) Dims() (int, int) { return g.width, g.height }

// Len returns the number of oscillators.
func (g *Grid) Len() int { return len(g.cells) }

// Seed returns the seed the initial conditions were drawn from.
func (g *Grid) Seed() int64 { return g.seed }

// Coupling returns the update constants.
func (g *Grid) Coupling() Coupling { return g.coupling }

// Pacemakers returns the pacemakers that landed inside the grid.
func (g *Grid) Pacemakers() []Pacemaker {
	out := make([]Pacemaker, len(g.pacemakers))
	copy(out, g.pacemakers)
	return out
}

// At returns a copy of the cell at (x, y). It panics when out of bounds.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		panic(fmt.Sprintf("dynamo: cell (%d,%d) outside %dx%d grid", x, y, g.width, g.height))
	}
	return g.cells[g.index(x, y)].Cell()
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(Cell)) {
	for i := range g.cells {
		fn(g.cells[i].Cell())
	}
}

// MaxSpeed returns the largest |speed| on the grid.
func (g *Grid) MaxSpeed() float64 {
	m := 0.0
	for i := range g.cells {
		if s := math.Abs(g.cells[i].Speed); s > m {
			m = s
		}
	}
	return m
}

// Accumulate adds every cell's in-bounds neighbor speeds into its pending
// sum. It reads speeds and writes sums only, so the result does not depend
// on visiting order.
func (g *Grid) Accumulate() {
	ParallelFor(g.height, g.workers, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < g.width; x++ {
				g.accumulateCell(x, y)
			}
		}
	})
}

// Advance calls Advance on every oscillator. Accumulate must have run
// for the whole grid first.
func (g *Grid) Advance(dt float64) {
	ParallelFor(g.height, g.workers, func(start, end int) {
		for i := start * g.width; i < end*g.width; i++ {
			g.cells[i].Advance(dt, g.coupling)
		}
	})
}

// Step validates dt, then accumulates over the whole grid before advancing
// any oscillator. Nothing is mutated when an error is returned.
func (g *Grid) Step(dt float64) error {
	if err := g.checkStep(dt); err != nil {
		return err
	}
	g.Accumulate()
	g.Advance(dt)
	return nil
}

func (g *Grid) checkStep(dt float64) error {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimestep, dt)
	}
	if dt*g.coupling.Rate > 1 {
		return fmt.Errorf("%w: dt=%v rate=%v", ErrUnstable, dt, g.coupling.Rate)
	}
	if peak := g.MaxSpeed(); peak*dt >= TwoPi {
		return fmt.Errorf("%w: max speed %.4f rad/s, dt=%v", ErrPhaseOverrun, peak, dt)
	}
	return nil
}

func (g *Grid) accumulateCell(x, y int) {
	o := &g.cells[g.index(x, y)]
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if (nx == x && ny == y) || !g.inBounds(nx, ny) {
				continue
			}
			o.AddNeighbor(g.cells[g.index(nx, ny)].Speed)
		}
	}
}

// countNeighbors enumerates the clipped 3x3 block. For grids of at least
// 2x2 this gives 3 at corners, 5 on edges and 8 inside.
func (g *Grid) countNeighbors(x, y int) int {
	n := 0
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if (nx != x || ny != y) && g.inBounds(nx, ny) {
				n++
			}
		}
	}
	return n
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}
