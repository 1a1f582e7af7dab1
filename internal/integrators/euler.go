package integrators

import "github.com/amolrajan/FLA-vap/internal/dynamics"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys dynamics.System, x dynamics.State, t float64, dt float64) dynamics.State {
	dx := sys.Derive(x, t)
	result := make(dynamics.State, len(x))
	for i := range x {
		result[i] = x[i] + dt*dx[i]
	}
	return result
}
