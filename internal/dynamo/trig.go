package dynamo

import "math"

// HandTable provides precomputed sin/cos values for drawing clock hands.
// Angles are looked up with linear interpolation between entries.
type HandTable struct {
	sin []float64
	cos []float64
	n   int
}

// DefaultHandTable has 1024 entries (~0.006 rad resolution), well below one
// pixel at any practical hand length.
var DefaultHandTable = NewHandTable(1024)

// NewHandTable creates a lookup table with n entries over one turn.
func NewHandTable(n int) *HandTable {
	if n < 4 {
		n = 4
	}
	t := &HandTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}
	for i := 0; i < n; i++ {
		angle := float64(i) * TwoPi / float64(n)
		t.sin[i] = math.Sin(angle)
		t.cos[i] = math.Cos(angle)
	}
	return t
}

// SinCos returns interpolated sin and cos of angle. Angles outside
// [0, 2π) are reduced first.
func (t *HandTable) SinCos(angle float64) (sin, cos float64) {
	angle = math.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}

	idx := angle * float64(t.n) / TwoPi
	i := int(idx)
	frac := idx - float64(i)

	i0 := i % t.n
	i1 := (i + 1) % t.n

	sin = t.sin[i0]*(1-frac) + t.sin[i1]*frac
	cos = t.cos[i0]*(1-frac) + t.cos[i1]*frac
	return
}

// Endpoint returns the tip of a hand of the given length starting at
// (cx, cy). Screen y grows downward, so positive angles turn clockwise.
func (t *HandTable) Endpoint(cx, cy, length, angle float64) (x, y float64) {
	s, c := t.SinCos(angle)
	return cx + length*c, cy + length*s
}
