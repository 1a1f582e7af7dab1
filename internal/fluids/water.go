package fluids

import "math"

// Water properties.
//
// Yaws, Thermophysical Properties of Chemicals and Hydrocarbons (2008);
// Incropera & DeWitt, Introduction to Heat Transfer, 4th ed. (2002).
type Water struct{}

const (
	waterMW    = 18.0
	waterTCrit = 647.13
	waterOmega = 0.3449 // acentric factor
	waterPCrit = 220.55e5
)

func (Water) Name() string             { return "water" }
func (Water) MolecularWeight() float64 { return waterMW }

// SaturationPressure uses the Ambrose-Walton corresponding-states form.
func (Water) SaturationPressure(t float64) float64 {
	tr := t / waterTCrit
	tau := 1.0 - tr
	if t > 0.99*waterTCrit {
		tr = 0.99
		tau = 0.01
	}
	f0 := (-5.97616*tau + 1.29874*math.Pow(tau, 1.5) - 0.60394*math.Pow(tau, 2.5) - 1.06841*math.Pow(tau, 5.0)) / tr
	f1 := (-5.03365*tau + 1.11505*math.Pow(tau, 1.5) - 5.41217*math.Pow(tau, 2.5) - 7.46628*math.Pow(tau, 5.0)) / tr
	f2 := (-0.64771*tau + 2.41539*math.Pow(tau, 1.5) - 4.26979*math.Pow(tau, 2.5) + 3.25259*math.Pow(tau, 5.0)) / tr
	return math.Exp(f0+f1*waterOmega+f2*waterOmega*waterOmega) * waterPCrit
}

func (Water) VaporSpecificHeat(t float64) float64 {
	return (-5.9796e-9*t*t*t + 1.7437e-5*t*t - 3.2463e-3*t + 33.174) / waterMW * 1.e+3
}

// VaporBinaryDiffusivity follows Wilke and Lee for the water-vapor/air pair.
func (Water) VaporBinaryDiffusivity(p, t float64) float64 {
	mva := 2.0 / (1.0/waterMW + 1.0/AirMolecularWeight)
	sqmva := math.Sqrt(mva)
	sigmava := 0.5 * (2.641 + 3.711)
	tn := t / math.Sqrt(78.6*809.1)
	omegaD := 1.06036*math.Pow(tn, -0.1561) + 0.193*math.Exp(-0.47635*tn) +
		1.03587*math.Exp(-1.52996*tn) + 1.76474*math.Exp(-3.89411*tn)
	return (3.03 - 0.98/sqmva) / (p * sqmva * sigmava * sigmava * omegaD) * 1.e-2 * math.Pow(t, 1.5)
}

func (Water) LatentHeat(t float64) float64 {
	if t > 0.99*waterTCrit {
		return 54.0 * math.Pow(0.01, 0.34) / waterMW * 1.e6
	}
	return 54.0 * math.Pow(1.0-t/waterTCrit, 0.34) / waterMW * 1.e6
}

func (Water) LiquidDensity(t float64) float64 {
	return 1.0 / 1.058 * 1.e+3
}

func (Water) LiquidViscosity(t float64) float64 {
	return math.Pow(10.0, -11.6225+1.949e+3/t+2.1641e-2*t-1.5990e-5*t*t) * 1.e-3
}

func (Water) LiquidConductivity(t float64) float64 {
	return 686.e-3
}

func (Water) LiquidSpecificHeat(t float64) float64 {
	return 1000.0 * 4239.0
}
