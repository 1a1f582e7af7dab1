// Package evap drives one droplet's heating and evaporation per host time
// step: surface composition from the saturation curve, Spalding transfer
// numbers, the spectral advance of the internal temperature profile, and the
// mass/energy source terms handed back to the host cell.
//
// The droplet's bulk temperature is updated explicitly from the new
// volume-averaged profile; the energy source on the particle side is held at
// zero so a host energy equation cannot double-apply the heating.
package evap

import (
	"fmt"
	"math"

	"github.com/amolrajan/FLA-vap/internal/droplet"
	"github.com/amolrajan/FLA-vap/internal/dynamics"
	"github.com/amolrajan/FLA-vap/internal/fluids"
	"github.com/amolrajan/FLA-vap/internal/gasfield"
	"github.com/amolrajan/FLA-vap/internal/transfer"
)

// airGasConstant is the specific gas constant of the carrier air, J/(kg·K).
const airGasConstant = 287.01625988193461525183829875375

// pecletNegligible is the threshold below which the internal-circulation
// correction degenerates to the stagnant liquid conductivity.
const pecletNegligible = 1e-12

// Config carries the explicit host-side knobs the model needs; nothing is
// read from ambient globals.
type Config struct {
	// Components must be 1; the model stubs single-component behavior only.
	Components int

	// FractionalMassChange and FractionalHeatChange limit the per-step
	// fractional mass and temperature change when recommending the next
	// time-step ceiling.
	FractionalMassChange float64
	FractionalHeatChange float64

	// TransferAccuracy and TransferMaxIterations override the heat-transfer
	// solver bounds when non-zero.
	TransferAccuracy      float64
	TransferMaxIterations int
}

func DefaultConfig() Config {
	return Config{
		Components:           1,
		FractionalMassChange: 0.5,
		FractionalHeatChange: 0.5,
	}
}

// Sources is what one step emits back to the host.
type Sources struct {
	// SpeciesMassRate is the vapor mass source into the gas cell, kg/s.
	SpeciesMassRate float64

	// EnergyRate is the energy source into the gas cell, W (negative while
	// the gas heats the droplet).
	EnergyRate float64

	// MassTransferCoefficient linearizes the mass source for the host's
	// coupled solver.
	MassTransferCoefficient float64

	// NextStepCeiling is the recommended upper bound on the host's next
	// time step. +Inf when inside a sub-iteration.
	NextStepCeiling float64

	// BulkTemperature is the droplet's new explicit bulk temperature.
	BulkTemperature float64
}

type Model struct {
	fluid  fluids.Provider
	solver *transfer.Solver
	cfg    Config
}

func New(fluid fluids.Provider, cfg Config) (*Model, error) {
	if cfg.Components != 1 {
		return nil, fmt.Errorf("configured for %d components: %w",
			cfg.Components, dynamics.ErrComponentCount)
	}
	solver := transfer.NewSolver()
	if cfg.TransferAccuracy > 0 {
		solver.Accuracy = cfg.TransferAccuracy
	}
	if cfg.TransferMaxIterations > 0 {
		solver.MaxIterations = cfg.TransferMaxIterations
	}
	return &Model{
		fluid:  fluid,
		solver: solver,
		cfg:    cfg,
	}, nil
}

// Step runs the heat-and-mass exchange for one droplet over dt.
// inSubIteration suppresses the time-step ceiling, matching the host's
// sub-stepped integration mode.
func (m *Model) Step(d *droplet.Droplet, cell gasfield.Cell, dt float64, inSubIteration bool) (Sources, error) {
	ts := &d.Thermal
	surfTemp := ts.Profile.Surface()

	limiting := math.Inf(1)
	if !inSubIteration {
		limiting = dt * 1.01
	}

	// Surface composition from the saturation curve, binary vapor/air film.
	pSat := m.fluid.SaturationPressure(surfTemp)
	xSurf := pSat / cell.Pressure
	xsTot := xSurf*m.fluid.MolecularWeight() + (1.0-xSurf)*fluids.AirMolecularWeight
	ysSurf := xSurf * m.fluid.MolecularWeight() / xsTot

	if ysSurf >= 1.0 {
		return Sources{}, fmt.Errorf("surface vapor mass fraction %.6f: %w",
			ysSurf, dynamics.ErrSurfaceSaturation)
	}
	latent := m.fluid.LatentHeat(surfTemp)

	ts.SurfaceMoleFraction = xSurf
	ts.SurfaceMassFraction = ysSurf
	ts.LatentHeat = latent

	// Film-averaged gas properties at the 1/3 reference temperature.
	refTemp := (cell.Temperature + 2.0*surfTemp) / 3.0
	rhoGas := cell.Pressure / (airGasConstant * refTemp)
	cpVap := m.fluid.VaporSpecificHeat(refTemp)
	diff := m.fluid.VaporBinaryDiffusivity(cell.Pressure, refTemp)
	kGas := cell.Conductivity
	sc := cell.Viscosity / (rhoGas * diff)
	pr := cell.SpecificHeat * cell.Viscosity / kGas
	re := d.Reynolds

	// Mass side is explicit: BM, Sh*, film-corrected Sh, total rate.
	// Ambient vapor mass fraction is taken as zero.
	bm := ysSurf / (1.0 - ysSurf)
	shStar := transfer.ModifiedNumber(re, sc, bm)
	sh := transfer.Sherwood(bm, shStar)
	area := d.SurfaceArea()
	evapRate := area * diff * rhoGas * sh / d.Diameter

	// Heat side couples through BT.
	coef := cpVap * rhoGas * diff / kGas * shStar
	res, err := m.solver.HeatTransferNumber(re, pr, bm, coef)
	if err != nil {
		return Sources{}, err
	}
	nu := res.Nu

	// Internal circulation correction: hyperbolic-tangent blend between
	// stagnant and fully circulating liquid conductivity (Abramzon &
	// Sirignano, Int. J. Heat Mass Transfer 32 (1989) 1605-1618).
	avgTemp := ts.AverageTemperature
	muLiq := m.fluid.LiquidViscosity(avgTemp)
	kLiq := m.fluid.LiquidConductivity(avgTemp)
	cpLiq := m.fluid.LiquidSpecificHeat(avgTemp)

	dvx := cell.Velocity[0] - d.Velocity[0]
	dvy := cell.Velocity[1] - d.Velocity[1]
	relVel := math.Sqrt(dvx*dvx + dvy*dvy)
	peclet := 12.69 / 16.0 * d.Density * 0.5 * d.Diameter * cpLiq / kLiq *
		relVel * cell.Viscosity / muLiq * math.Pow(re, 1.0/3.0) / (1.0 + bm)
	kEff := (1.86 + 0.86*math.Tanh(2.225*math.Log10(peclet/30.0))) * kLiq
	if math.Abs(peclet) < pecletNegligible {
		kEff = kLiq
	}

	// Surface heat balance folded into an effective ambient temperature,
	// then one spectral step of the internal profile.
	effTemp := cell.Temperature - evapRate*latent/math.Pi/d.Diameter/nu/kGas
	h0 := kGas*nu*0.5/kEff - 1.0
	kappa := kEff / (cpLiq * d.Density * 0.25 * d.Diameter * d.Diameter)

	ts.Profile.Advance(dt, h0, effTemp, kappa)
	avgTemp = ts.Profile.VolumeAverage()
	surfTemp = ts.Profile.Surface()

	// Single-component partition: the whole rate belongs to the one species.
	vapRate := evapRate
	if !inSubIteration && math.Abs(vapRate) > 0 {
		limiting = math.Min(limiting, m.cfg.FractionalMassChange*d.Mass/vapRate)
	}

	heatRate := nu * kGas * area / d.Diameter * (cell.Temperature - avgTemp)
	htc := nu * kGas / d.Diameter
	convectiveRate := htc * area / (d.Mass * cpLiq)
	if !inSubIteration && math.Abs(convectiveRate) > pecletNegligible {
		factor := m.cfg.FractionalHeatChange
		if math.Abs(cell.Temperature-surfTemp) > surfTemp {
			factor = m.cfg.FractionalHeatChange * surfTemp / (cell.Temperature - surfTemp)
		}
		limiting = math.Min(limiting, factor/math.Abs(convectiveRate))
	}

	ts.EvaporationRate = vapRate
	ts.BM = bm
	ts.BT = res.BT
	ts.Nusselt = nu
	ts.NuStar = res.NuStar
	ts.Coef = coef
	ts.Diffusivity = diff
	ts.GasConductivity = kGas
	ts.AverageTemperature = avgTemp
	ts.TransferCoefficient = htc
	ts.HeatRate = heatRate

	d.Temperature = avgTemp

	return Sources{
		SpeciesMassRate:         vapRate,
		EnergyRate:              -heatRate,
		MassTransferCoefficient: cell.Density * math.Pi * d.Diameter * shStar * diff,
		NextStepCeiling:         limiting,
		BulkTemperature:         avgTemp,
	}, nil
}
