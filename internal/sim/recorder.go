package sim

import (
	"math"

	"github.com/san-kum/clockgrid/internal/dynamo"
)

const defaultHistory = 4096

// Recorder is a headless Renderer that samples one probe cell per frame.
// History is bounded; the oldest samples are dropped first.
type Recorder struct {
	probeX, probeY int
	capacity       int

	speeds  []float64
	signals []float64
	frames  int
}

// NewRecorder samples cell (x, y). capacity <= 0 selects a default.
func NewRecorder(x, y, capacity int) *Recorder {
	if capacity <= 0 {
		capacity = defaultHistory
	}
	return &Recorder{
		probeX:   x,
		probeY:   y,
		capacity: capacity,
		speeds:   make([]float64, 0, capacity),
		signals:  make([]float64, 0, capacity),
	}
}

func (r *Recorder) Render(v dynamo.View) {
	r.frames++
	w, h := v.Dims()
	if r.probeX < 0 || r.probeX >= w || r.probeY < 0 || r.probeY >= h {
		return
	}
	c := v.At(r.probeX, r.probeY)
	r.speeds = appendBounded(r.speeds, c.Speed, r.capacity)
	r.signals = appendBounded(r.signals, math.Cos(c.Phase[0]), r.capacity)
}

// Frames counts Render calls, including those with the probe out of range.
func (r *Recorder) Frames() int { return r.frames }

// Speeds returns the probe speed history.
func (r *Recorder) Speeds() []float64 { return r.speeds }

// Signal returns cos(Phase[0]) of the probe, the horizontal hand projection.
func (r *Recorder) Signal() []float64 { return r.signals }

func appendBounded(s []float64, v float64, capacity int) []float64 {
	if len(s) == capacity {
		copy(s, s[1:])
		s = s[:capacity-1]
	}
	return append(s, v)
}
