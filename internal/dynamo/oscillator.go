package dynamo

// Oscillator is one clock on the grid.
type Oscillator struct {
	X, Y int
	// Phase holds the primary and secondary hand angles in [0, 2π).
	Phase [2]float64
	// Speed is the signed angular speed of Phase[0] in rad/s.
	Speed float64
	// Locked marks a pacemaker; its speed never changes.
	Locked bool
	// Neighbors is the number of in-bounds Moore neighbors.
	Neighbors int

	neighborSum float64
}

// AddNeighbor adds one neighbor's speed to the pending sum.
func (o *Oscillator) AddNeighbor(speed float64) {
	o.neighborSum += speed
}

// NeighborSum returns the speed sum gathered since the last Advance.
func (o *Oscillator) NeighborSum() float64 {
	return o.neighborSum
}

// Advance relaxes the speed toward the neighborhood mean and integrates
// both phases over dt. The pending neighbor sum is always cleared.
//
// Precondition: |Speed*dt| < 2π, so one wrap correction keeps each phase
// in [0, 2π). Grid.Step enforces it.
func (o *Oscillator) Advance(dt float64, c Coupling) {
	if !o.Locked && o.Neighbors > 0 {
		mean := o.neighborSum / float64(o.Neighbors)
		o.Speed += dt * c.Rate * (mean - o.Speed)
	}
	o.neighborSum = 0

	o.Phase[0] = wrapPhase(o.Phase[0] + o.Speed*dt)
	o.Phase[1] = wrapPhase(o.Phase[1] + (o.Speed/c.HandRatio)*dt)
}

// Cell returns a value copy of the observable state.
func (o *Oscillator) Cell() Cell {
	return Cell{X: o.X, Y: o.Y, Phase: o.Phase, Speed: o.Speed, Locked: o.Locked}
}

// wrapPhase applies a single 2π correction, not a full modulo.
func wrapPhase(p float64) float64 {
	switch {
	case p >= TwoPi:
		p -= TwoPi
	case p < 0:
		p += TwoPi
		// -tiny + 2π can round up to exactly 2π.
		if p >= TwoPi {
			p = 0
		}
	}
	return p
}
