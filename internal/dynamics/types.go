package dynamics

import "math"

// State is a flat vector of dynamical variables.
type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System describes an autonomous or time-dependent ODE system dx/dt = f(x, t).
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// Integrator advances a system state by one step of length dt.
type Integrator interface {
	Step(sys System, x State, t, dt float64) State
}
