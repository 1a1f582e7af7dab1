package fluids

import "math"

// Dodecane (n-dodecane, diesel surrogate) properties.
//
// Abramzon & Sazhin, Convective vaporization of a fuel droplet with thermal
// radiation absorption, Fuel 85 (2006) 32-46.
type Dodecane struct{}

const (
	dodecaneMW    = 170.33
	dodecaneTCrit = 659.0
)

func (Dodecane) Name() string             { return "n-dodecane" }
func (Dodecane) MolecularWeight() float64 { return dodecaneMW }

func (Dodecane) SaturationPressure(t float64) float64 {
	psat := math.Exp(8.1948-7.8099*(300.0/t)-9.0098*(300.0/t)*(300.0/t)) * 1.e5
	if t > 0.99*dodecaneTCrit {
		psat *= math.Exp(15.0 * (t/0.99/dodecaneTCrit - 1.0))
	}
	return psat
}

func (Dodecane) VaporSpecificHeat(t float64) float64 {
	return (0.2979 + 1.4394*(t/300.0) - 0.1351*(t/300.0)*(t/300.0)) * 1000.0
}

func (Dodecane) VaporBinaryDiffusivity(p, t float64) float64 {
	return 0.527 * math.Pow(t/300.0, 1.583) / p
}

func (Dodecane) LatentHeat(t float64) float64 {
	if t > 0.99*dodecaneTCrit {
		return 37.44 * math.Pow(dodecaneTCrit-653.0, 0.38) * 1000.0
	}
	return 37.44 * math.Pow(dodecaneTCrit-t, 0.38) * 1000.0
}

func (Dodecane) LiquidDensity(t float64) float64 {
	return 744.11 - 0.771*(t-300.0)
}

func (Dodecane) LiquidViscosity(t float64) float64 {
	return 1.e-3 * math.Exp(2.0303*(300.0/t)*(300.0/t)+1.1769*(300.0/t)-2.929)
}

func (Dodecane) LiquidConductivity(t float64) float64 {
	return 0.1405 - 0.00022*(t-300.0)
}

func (Dodecane) LiquidSpecificHeat(t float64) float64 {
	return (2.18 + 0.0041*(t-300.0)) * 1000.0
}
