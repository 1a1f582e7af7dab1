package dynamics

import "errors"

// Domain errors for droplet step operations.
var (
	// ErrInvalidState indicates a state vector with NaN or Inf entries.
	ErrInvalidState = errors.New("dynamics: invalid state (NaN or Inf detected)")

	// ErrTransferDivergence indicates the heat transfer number iteration
	// failed to converge within its iteration bound.
	ErrTransferDivergence = errors.New("dynamics: transfer-number iteration diverged")

	// ErrSurfaceSaturation indicates the surface vapor mass fraction reached
	// or exceeded one, where the film evaporation model is singular.
	ErrSurfaceSaturation = errors.New("dynamics: surface-saturation singularity")

	// ErrComponentCount indicates a droplet configured with other than one
	// liquid component.
	ErrComponentCount = errors.New("dynamics: component count mismatch (single-component only)")
)

// StepError wraps an error with the droplet step it occurred on.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return e.Wrapped.Error()
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
