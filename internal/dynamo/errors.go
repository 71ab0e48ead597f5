package dynamo

import "errors"

// Domain errors for grid construction and stepping.
var (
	// ErrInvalidDimensions indicates a grid with a non-positive width or height.
	ErrInvalidDimensions = errors.New("dynamo: grid dimensions must be positive")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrInvalidTimestep indicates a NaN, infinite or negative frame time.
	ErrInvalidTimestep = errors.New("dynamo: timestep must be finite and non-negative")

	// ErrUnstable indicates dt*rate > 1, where the explicit relaxation step
	// overshoots the neighborhood mean.
	ErrUnstable = errors.New("dynamo: relaxation step overshoots (dt*rate > 1)")

	// ErrPhaseOverrun indicates |speed*dt| would reach a full turn, which the
	// single-correction phase wrap cannot represent.
	ErrPhaseOverrun = errors.New("dynamo: phase increment reaches a full turn in one step")
)

// StepError wraps a step failure with frame context.
type StepError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
