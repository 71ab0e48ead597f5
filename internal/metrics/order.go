package metrics

import (
	"math"

	"github.com/san-kum/clockgrid/internal/dynamo"
)

// PhaseOrder is the Kuramoto order parameter R = |mean(exp(i*phase))| of
// the primary hands. R is 1 when every hand points the same way and near
// 0 when they are spread uniformly. It keeps a bounded per-frame history.
type PhaseOrder struct {
	name     string
	last     float64
	history  []float64
	capacity int
}

func NewPhaseOrder(capacity int) *PhaseOrder {
	if capacity <= 0 {
		capacity = 600
	}
	return &PhaseOrder{
		name:     "phase_order",
		capacity: capacity,
		history:  make([]float64, 0, capacity),
	}
}

func (p *PhaseOrder) Name() string { return p.name }

func (p *PhaseOrder) Observe(v dynamo.View, t float64) {
	var re, im float64
	n := 0
	v.Each(func(c dynamo.Cell) {
		s, co := math.Sincos(c.Phase[0])
		re += co
		im += s
		n++
	})
	if n == 0 {
		return
	}
	p.last = math.Hypot(re, im) / float64(n)

	if len(p.history) == p.capacity {
		copy(p.history, p.history[1:])
		p.history = p.history[:p.capacity-1]
	}
	p.history = append(p.history, p.last)
}

func (p *PhaseOrder) Value() float64 { return p.last }

// History returns the order parameter per observed frame, oldest first.
func (p *PhaseOrder) History() []float64 { return p.history }

func (p *PhaseOrder) Reset() {
	p.last = 0
	p.history = p.history[:0]
}

