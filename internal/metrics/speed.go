package metrics

import (
	"math"

	"github.com/san-kum/clockgrid/internal/dynamo"
)

// MeanAbsSpeed is the time average of the mean |speed| over unlocked cells.
type MeanAbsSpeed struct {
	name    string
	samples int
	total   float64
}

func NewMeanAbsSpeed() *MeanAbsSpeed {
	return &MeanAbsSpeed{name: "mean_abs_speed"}
}

func (m *MeanAbsSpeed) Name() string { return m.name }

func (m *MeanAbsSpeed) Observe(v dynamo.View, t float64) {
	sum, n := 0.0, 0
	v.Each(func(c dynamo.Cell) {
		if c.Locked {
			return
		}
		sum += math.Abs(c.Speed)
		n++
	})
	if n == 0 {
		return
	}
	m.total += sum / float64(n)
	m.samples++
}

func (m *MeanAbsSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanAbsSpeed) Reset() {
	m.total = 0
	m.samples = 0
}

// SpeedSpread is the standard deviation of unlocked speeds at the latest
// observed frame. It falls as the grid reaches consensus.
type SpeedSpread struct {
	name string
	last float64
}

func NewSpeedSpread() *SpeedSpread {
	return &SpeedSpread{name: "speed_spread"}
}

func (s *SpeedSpread) Name() string { return s.name }

func (s *SpeedSpread) Observe(v dynamo.View, t float64) {
	var sum, sumSq float64
	n := 0
	v.Each(func(c dynamo.Cell) {
		if c.Locked {
			return
		}
		sum += c.Speed
		sumSq += c.Speed * c.Speed
		n++
	})
	if n == 0 {
		s.last = 0
		return
	}
	mean := sum / float64(n)
	s.last = math.Sqrt(math.Max(0, sumSq/float64(n)-mean*mean))
}

func (s *SpeedSpread) Value() float64 { return s.last }

func (s *SpeedSpread) Reset() { s.last = 0 }

// Polarity is the fraction of unlocked cells turning forward (speed >= 0)
// at the latest observed frame.
type Polarity struct {
	name string
	last float64
}

func NewPolarity() *Polarity {
	return &Polarity{name: "polarity"}
}

func (p *Polarity) Name() string { return p.name }

func (p *Polarity) Observe(v dynamo.View, t float64) {
	forward, n := 0, 0
	v.Each(func(c dynamo.Cell) {
		if c.Locked {
			return
		}
		if c.Speed >= 0 {
			forward++
		}
		n++
	})
	if n == 0 {
		p.last = 0
		return
	}
	p.last = float64(forward) / float64(n)
}

func (p *Polarity) Value() float64 { return p.last }

func (p *Polarity) Reset() { p.last = 0 }
