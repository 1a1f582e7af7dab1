package fluids

import "math"

// IsoOctane (2,2,4-trimethylpentane, gasoline surrogate) properties.
//
// Poling, Prausnitz & O'Connell, The Properties of Gases and Liquids,
// 5th ed. (2000), plus the correlation set of Elwardany et al., Fuel (2015).
type IsoOctane struct{}

const (
	isoOctaneMW    = 114.23
	isoOctaneTCrit = 543.9
	isoOctaneTBoil = 372.39
	isoOctaneOmega = 0.303
)

// isoOctanePCrit from the group-contribution fit of the Poling et al. tables.
var isoOctanePCrit = (-0.0186*64.0*8.0 + 0.459*64.0 - 5.924*8.0 + 54.071) * 100000.0

func (IsoOctane) Name() string             { return "iso-octane" }
func (IsoOctane) MolecularWeight() float64 { return isoOctaneMW }

// SaturationPressure follows Ambrose and Walton (1989).
func (IsoOctane) SaturationPressure(t float64) float64 {
	tr := t / isoOctaneTCrit
	tau := 1.0 - tr
	f0 := (-5.97616*tau + 1.29874*math.Pow(tau, 1.5) - 0.60394*math.Pow(tau, 2.5) - 1.06841*math.Pow(tau, 5.0)) / tr
	f1 := (-5.03365*tau + 1.11505*math.Pow(tau, 1.5) - 5.41217*math.Pow(tau, 2.5) - 7.46628*math.Pow(tau, 5.0)) / tr
	f2 := (-0.64771*tau + 2.41539*math.Pow(tau, 1.5) - 4.26979*math.Pow(tau, 2.5) + 3.25259*math.Pow(tau, 5.0)) / tr
	return math.Exp(f0+f1*isoOctaneOmega+f2*isoOctaneOmega*isoOctaneOmega) * isoOctanePCrit
}

// VaporSpecificHeat uses the NIST WebBook value at 400 K.
func (IsoOctane) VaporSpecificHeat(t float64) float64 {
	return 244.60 / isoOctaneMW * 1000.0
}

func (IsoOctane) VaporBinaryDiffusivity(p, t float64) float64 {
	return (-0.0578 + 3.0455e-4*t + 3.4265e-7*t*t) * 1.e-4
}

func (IsoOctane) LatentHeat(t float64) float64 {
	if t > 0.99*isoOctaneTCrit {
		return 49.32456 * math.Pow(1.0-0.99, 0.382229) / isoOctaneMW * 1.e6
	}
	return 49.32456 * math.Pow(1.0-t/isoOctaneTCrit, 0.382229) / isoOctaneMW * 1.e6
}

func (IsoOctane) LiquidDensity(t float64) float64 {
	return 1000.0 * (-0.000981411583995317*8.0*8.0 + 0.0167403553403262*8.0 + 0.175683060992056) *
		math.Pow(-0.000706081955526297*64.0+0.00873629109926122*8.0+0.249117016533684,
			-math.Pow(1.0-t/isoOctaneTCrit, 0.00114456989247312*64.0-0.0174424731182795*8.0+0.343958172043011))
}

func (IsoOctane) LiquidViscosity(t float64) float64 {
	a := -10.2217
	b := 1423.586
	c := 0.024242
	d := -2.33636e-05
	k := a + b/t + c*t + d*t*t - 3.0
	return math.Pow(10.0, k)
}

func (IsoOctane) LiquidConductivity(t float64) float64 {
	return 0.0035 * math.Pow(isoOctaneTBoil, 1.2) * math.Pow(isoOctaneMW, -0.5) *
		math.Pow(isoOctaneTCrit, -0.167) * math.Pow(1.0-t/isoOctaneTCrit, 0.38) *
		math.Pow(t/isoOctaneTCrit, -1.0/6.0)
}

// LiquidSpecificHeat reuses the n-dodecane correlation; the published
// iso-octane formula carries a typo.
func (IsoOctane) LiquidSpecificHeat(t float64) float64 {
	return (2.18 + 0.0041*(t-300.0)) * 1000.0
}
