// Package fla advances the deformation gradient (Jacobian) of a droplet's
// trajectory map in the Fully Lagrangian Approach. The reciprocal of the
// Jacobian determinant estimates local number density of the particle
// cloud; a determinant sign change marks a trajectory-crossing (caustic)
// event where the density formally diverges.
//
// See Osiptsov, Astrophys. Space Sci. 274 (2000) and Healy & Young,
// Proc. R. Soc. A 461 (2005).
package fla

import (
	"math"

	"github.com/amolrajan/FLA-vap/internal/droplet"
	"github.com/amolrajan/FLA-vap/internal/dynamics"
	"github.com/amolrajan/FLA-vap/internal/gasfield"
	"github.com/amolrajan/FLA-vap/internal/integrators"
)

// DragFunc is the host's drag factor: τ = ρ_p·d² / (μ_gas·DragFunc(Re)).
// It must be the same law the host trajectory integrator uses; a different
// law silently decouples the deformation gradient from the true trajectory
// map. For Stokes drag the factor is 18.
type DragFunc func(re float64) float64

// deformation is the 8-component ODE system
//
//	dJ/dt = W
//	dW/dt = (J·∇u − W)/τ
//
// with state ordering J11 J12 J21 J22 W11 W12 W21 W22.
type deformation struct {
	tau  float64
	grad gasfield.VelocityGradient
}

func (s deformation) Dim() int { return 8 }

func (s deformation) Derive(y dynamics.State, t float64) dynamics.State {
	g := s.grad
	return dynamics.State{
		y[4],
		y[5],
		y[6],
		y[7],
		(y[0]*g.DUDX + y[2]*g.DUDY - y[4]) / s.tau,
		(y[1]*g.DUDX + y[3]*g.DUDY - y[5]) / s.tau,
		(y[0]*g.DVDX + y[2]*g.DVDY - y[6]) / s.tau,
		(y[1]*g.DVDX + y[3]*g.DVDY - y[7]) / s.tau,
	}
}

// Tracker integrates one droplet's Jacobian state per host time step.
type Tracker struct {
	integ *integrators.RK4
}

func NewTracker() *Tracker {
	return &Tracker{integ: integrators.NewRK4()}
}

// Step advances the deformation gradient over the full host sub-step with a
// single classical RK4 stage, then refreshes the determinant, number density
// and sign-change counter. The Jacobian is never reset on a sign flip: the
// determinant passes through zero and the number density is allowed to
// diverge; consumers must treat very large values as a first-class outcome.
func (tr *Tracker) Step(d *droplet.Droplet, cell gasfield.Cell, drag DragFunc, dt float64) {
	js := &d.Jacobian

	tau := d.Density * d.Diameter * d.Diameter / (cell.Viscosity * drag(d.Reynolds))
	js.Beta = 1.0 / tau

	sys := deformation{tau: tau, grad: cell.Gradient}
	js.SetVector(tr.integ.Step(sys, js.Vector(), 0, dt))

	det := js.J11*js.J22 - js.J12*js.J21
	if math.Signbit(det) != math.Signbit(js.Det) {
		js.SignChanges++
	}
	js.Det = det
	js.NumberDensity = 1.0 / math.Abs(det)

	// FLA-weighted source diagnostics for the heat/mass block.
	d.Thermal.ScaledHeatRate = d.Thermal.HeatRate * js.NumberDensity
	d.Thermal.ScaledEvapRate = d.Thermal.EvaporationRate * js.NumberDensity
}
