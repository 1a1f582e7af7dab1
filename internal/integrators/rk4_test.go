package integrators

import (
	"math"
	"testing"

	"github.com/amolrajan/FLA-vap/internal/dynamics"
)

type oscillator struct{}

func (o *oscillator) Derive(x dynamics.State, t float64) dynamics.State {
	return dynamics.State{x[1], -x[0]}
}

func (o *oscillator) Dim() int { return 2 }

func TestRK4Accuracy(t *testing.T) {
	sys := &oscillator{}
	integ := NewRK4()

	x := dynamics.State{1.0, 0.0}
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		x = integ.Step(sys, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	expectedV := -math.Sin(float64(steps) * dt)

	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
	if math.Abs(x[1]-expectedV) > 1e-4 {
		t.Errorf("velocity error too large: got %.6f, expected %.6f", x[1], expectedV)
	}
}

func TestEulerFirstOrder(t *testing.T) {
	sys := &oscillator{}
	rk := NewRK4()
	eu := NewEuler()

	xr := dynamics.State{1.0, 0.0}
	xe := dynamics.State{1.0, 0.0}
	dt := 0.01
	for i := 0; i < 200; i++ {
		xr = rk.Step(sys, xr, float64(i)*dt, dt)
		xe = eu.Step(sys, xe, float64(i)*dt, dt)
	}

	exact := math.Cos(2.0)
	if math.Abs(xr[0]-exact) > math.Abs(xe[0]-exact) {
		t.Errorf("RK4 should beat Euler: rk err %.2e, euler err %.2e",
			math.Abs(xr[0]-exact), math.Abs(xe[0]-exact))
	}
}
