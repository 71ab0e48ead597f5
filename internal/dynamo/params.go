package dynamo

import (
	"fmt"
	"math"
)

// TwoPi is one full turn in radians.
const TwoPi = 2 * math.Pi

const (
	// DefaultRate is the speed adaptation step size per second.
	DefaultRate = 0.3

	// DefaultHandRatio slows the secondary hand relative to the primary,
	// like a minute hand against a second hand.
	DefaultHandRatio = 60.0

	// initSteps quantizes random initial phases and speeds.
	initSteps = 2000
)

// InitMode selects how non-pacemaker oscillators start.
type InitMode string

const (
	// InitRandom draws phases in [0, 2π) and speeds in [-2π, 2π).
	InitRandom InitMode = "random"

	// InitRest starts every unlocked oscillator with zero phase and speed.
	InitRest InitMode = "rest"
)

// Coupling holds the per-step update constants.
type Coupling struct {
	// Rate is K in speed += dt*K*(mean - speed).
	Rate float64
	// HandRatio divides the speed driving Phase[1].
	HandRatio float64
}

// DefaultCoupling returns the rate and hand ratio of the reference model.
func DefaultCoupling() Coupling {
	return Coupling{Rate: DefaultRate, HandRatio: DefaultHandRatio}
}

// Pacemaker pins one cell to a fixed, locked speed.
type Pacemaker struct {
	X, Y  int
	Speed float64
}

// DefaultPacemakers returns the opposing pair at the grid centre:
// (w/2, h/2) at +2π and (w/2+1, h/2) at -2π.
func DefaultPacemakers(w, h int) []Pacemaker {
	return []Pacemaker{
		{X: w / 2, Y: h / 2, Speed: TwoPi},
		{X: w/2 + 1, Y: h / 2, Speed: -TwoPi},
	}
}

// Params configures grid construction.
type Params struct {
	Width, Height int
	Coupling      Coupling
	// Pacemakers defaults to DefaultPacemakers(Width, Height) when nil.
	// Entries outside the grid are skipped.
	Pacemakers []Pacemaker
	Init       InitMode
	// Seed drives initial conditions; 0 selects a time-based seed.
	Seed int64
	// Workers splits Accumulate and Advance over rows; <= 1 is sequential.
	Workers int
}

// DefaultParams returns params for a w x h grid with the reference
// coupling, default pacemakers and random initial conditions.
func DefaultParams(w, h int) Params {
	return Params{
		Width:    w,
		Height:   h,
		Coupling: DefaultCoupling(),
		Init:     InitRandom,
	}
}

func (p Params) validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}
	if p.Coupling.Rate < 0 || math.IsNaN(p.Coupling.Rate) || math.IsInf(p.Coupling.Rate, 0) {
		return fmt.Errorf("%w: rate %v", ErrParameterBounds, p.Coupling.Rate)
	}
	if !(p.Coupling.HandRatio > 0) || math.IsInf(p.Coupling.HandRatio, 0) {
		return fmt.Errorf("%w: hand ratio %v", ErrParameterBounds, p.Coupling.HandRatio)
	}
	switch p.Init {
	case InitRandom, InitRest:
	default:
		return fmt.Errorf("%w: init mode %q", ErrParameterBounds, p.Init)
	}
	for _, pm := range p.Pacemakers {
		if math.IsNaN(pm.Speed) || math.IsInf(pm.Speed, 0) {
			return fmt.Errorf("%w: pacemaker speed %v", ErrParameterBounds, pm.Speed)
		}
	}
	return nil
}
