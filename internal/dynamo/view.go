package dynamo

// Cell is a read-only copy of one oscillator's observable state.
type Cell struct {
	X, Y   int
	Phase  [2]float64
	Speed  float64
	Locked bool
}

// View is read access to grid state. Renderers and metrics receive a View
// and only ever see value copies.
type View interface {
	Dims() (width, height int)
	At(x, y int) Cell
	Each(fn func(Cell))
}
