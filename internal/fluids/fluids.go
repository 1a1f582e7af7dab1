// Package fluids supplies the temperature-dependent material properties of
// the supported droplet liquids and their vapors. A Provider is selected by
// name once at configuration time and stays fixed for the run.
//
// Correlations clamp themselves at 0.99 of the critical (or boiling)
// reference temperature; callers never guard for the near-critical range.
package fluids

import (
	"fmt"
	"sort"
)

// AirMolecularWeight is the molecular weight of the ambient carrier gas
// in kg/kmol; the gas film is treated as a binary vapor/air mixture.
const AirMolecularWeight = 28.967

// Provider exposes the property correlations of one droplet liquid. All
// methods are pure functions of temperature (and, for the diffusivity,
// pressure in Pa). SI units throughout.
type Provider interface {
	Name() string
	MolecularWeight() float64
	SaturationPressure(t float64) float64
	VaporSpecificHeat(t float64) float64
	VaporBinaryDiffusivity(p, t float64) float64
	LatentHeat(t float64) float64
	LiquidDensity(t float64) float64
	LiquidViscosity(t float64) float64
	LiquidConductivity(t float64) float64
	LiquidSpecificHeat(t float64) float64
}

var providers = map[string]func() Provider{
	"water":      func() Provider { return Water{} },
	"n-dodecane": func() Provider { return Dodecane{} },
	"iso-octane": func() Provider { return IsoOctane{} },
}

// New returns the provider registered under name.
func New(name string) (Provider, error) {
	fn, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown fluid: %s", name)
	}
	return fn(), nil
}

// Names lists the registered fluids in sorted order.
func Names() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
