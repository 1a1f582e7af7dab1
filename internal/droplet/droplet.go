// Package droplet defines the tracked droplet record and the two persistent
// per-droplet state blocks: the thermal state feeding the evaporation model
// and the trajectory-map Jacobian state of the Fully Lagrangian tracker. The
// two blocks are disjoint; the evaporation model and the Jacobian tracker
// never touch each other's fields.
package droplet

import (
	"math"

	"github.com/amolrajan/FLA-vap/internal/dynamics"
	"github.com/amolrajan/FLA-vap/internal/fluids"
	"github.com/amolrajan/FLA-vap/internal/thermal"
)

// Droplet is one tracked liquid particle. Position and velocity belong to
// the host's trajectory integration; the model packages read them only.
type Droplet struct {
	ID       int
	Diameter float64
	Mass     float64
	Density  float64
	Position [2]float64
	Velocity [2]float64

	// Temperature is the bulk (volume-averaged) droplet temperature,
	// updated explicitly by the evaporation model each step.
	Temperature float64

	// Reynolds is the relative droplet Reynolds number, refreshed by the
	// host before each step.
	Reynolds float64

	Thermal  ThermalState
	Jacobian JacobianState
}

// ThermalState is the heating/evaporation block: the radial temperature
// profile plus the bookkeeping scalars the model persists across steps.
type ThermalState struct {
	Profile *thermal.Field

	SurfaceMoleFraction float64
	SurfaceMassFraction float64
	EvaporationRate     float64 // total, kg/s
	BM                  float64
	BT                  float64
	LatentHeat          float64
	Nusselt             float64
	AverageTemperature  float64

	// Diagnostic snapshots of the film evaluation.
	Diffusivity         float64
	GasConductivity     float64
	Coef                float64
	NuStar              float64
	TransferCoefficient float64 // h = Nu·k_gas/D

	HeatRate       float64 // dh/dt delivered to the gas, W
	ScaledHeatRate float64 // dh/dt weighted by FLA number density
	ScaledEvapRate float64 // dm/dt weighted by FLA number density
}

// JacobianState is the deformation-gradient block of the trajectory map:
// J, its auxiliary W = dJ/dt helper, and the derived caustic diagnostics.
type JacobianState struct {
	J11, J12, J21, J22 float64
	W11, W12, W21, W22 float64

	Det           float64
	NumberDensity float64
	SignChanges   int
	Beta          float64 // 1/τ from the host drag law
	RefRadius     float64 // reference radius, axisymmetric case
}

// Inject creates a droplet at its injection point: uniform internal
// temperature, identity deformation gradient, unit number density.
func Inject(id int, diameter, density, temperature float64, pos, vel [2]float64, fluid fluids.Provider) *Droplet {
	d := &Droplet{
		ID:          id,
		Diameter:    diameter,
		Density:     density,
		Position:    pos,
		Velocity:    vel,
		Temperature: temperature,
		Mass:        density * math.Pi / 6.0 * diameter * diameter * diameter,
	}
	d.Thermal = ThermalState{
		Profile:            thermal.NewField(temperature),
		Nusselt:            2.0,
		LatentHeat:         fluid.LatentHeat(temperature),
		AverageTemperature: temperature,
	}
	d.Jacobian = JacobianState{
		J11: 1.0, J22: 1.0,
		Det:           1.0,
		NumberDensity: 1.0,
		RefRadius:     pos[1],
	}
	return d
}

// SurfaceArea returns the droplet surface area for the current diameter.
func (d *Droplet) SurfaceArea() float64 {
	return math.Pi * d.Diameter * d.Diameter
}

// Vector packs the eight ODE components in integration order
// (J11 J12 J21 J22 W11 W12 W21 W22).
func (js *JacobianState) Vector() dynamics.State {
	return dynamics.State{js.J11, js.J12, js.J21, js.J22, js.W11, js.W12, js.W21, js.W22}
}

// SetVector unpacks an integration result back into the named fields.
func (js *JacobianState) SetVector(y dynamics.State) {
	js.J11, js.J12, js.J21, js.J22 = y[0], y[1], y[2], y[3]
	js.W11, js.W12, js.W21, js.W22 = y[4], y[5], y[6], y[7]
}
