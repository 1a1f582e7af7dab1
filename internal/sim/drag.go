package sim

import "math"

// SchillerNaumann is the default drag factor, 18·(Cd·Re/24) with the
// Schiller-Naumann correlation Cd·Re/24 = 1 + 0.15·Re^0.687. The factor
// reduces to Stokes drag (18) at vanishing Reynolds number.
//
// The same function is handed to both the trajectory step and the Jacobian
// tracker; the Fully Lagrangian deformation gradient is only meaningful when
// both see the identical drag law.
func SchillerNaumann(re float64) float64 {
	if re <= 0 {
		return 18.0
	}
	return 18.0 * (1.0 + 0.15*math.Pow(re, 0.687))
}
