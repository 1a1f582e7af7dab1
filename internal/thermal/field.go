// Package thermal advances the transient temperature distribution inside a
// spherical droplet. Instead of discretizing the heat equation, each step
// rebuilds the radial profile from a Sturm-Liouville eigenfunction series
// with a Robin boundary condition linearized by the parameter h0. The
// per-mode update is closed form, so the scheme is unconditionally stable
// at arbitrarily large time steps.
package thermal

import (
	"math"

	"github.com/amolrajan/FLA-vap/internal/eigen"
)

const (
	// Layers is the number of radial layers inside the droplet; the profile
	// holds Layers+1 samples from center (index 0) to surface (index Layers).
	Layers = 100

	deltaR = 1.0 / Layers
)

// Field holds the discretized radial temperature profile of one droplet on
// the normalized radius r ∈ [0, 1].
type Field struct {
	profile [Layers + 1]float64
}

func NewField(temperature float64) *Field {
	f := &Field{}
	f.Initialize(temperature)
	return f
}

// Initialize sets every profile sample to the given temperature.
func (f *Field) Initialize(temperature float64) {
	for j := range f.profile {
		f.profile[j] = temperature
	}
}

// Surface returns the instantaneous surface temperature sample.
func (f *Field) Surface() float64 {
	return f.profile[Layers]
}

// Sample returns the temperature at layer j (0 = center, Layers = surface).
func (f *Field) Sample(j int) float64 {
	return f.profile[j]
}

// Profile returns a copy of the radial samples.
func (f *Field) Profile() []float64 {
	out := make([]float64, Layers+1)
	copy(out[:], f.profile[:])
	return out
}

// Advance moves the profile forward by dt. surfaceEffective is the effective
// ambient temperature seen by the sphere after the latent heat sink is folded
// in, h0 the linearized Robin boundary parameter and diffusivity the liquid
// thermal diffusivity on the normalized radius.
//
// Each eigenvalue λ contributes a mode: the current profile is projected onto
// r·sin(λr) by Simpson quadrature, combined with the boundary forcing
// sin(λ)/λ²·ζ where ζ = (h0+1)·surfaceEffective, decayed by exp(-κλ²dt) and
// normalized by b = 0.5·(1 + h0/(h0²+λ²)). Empty eigenvalue brackets are
// skipped. A mode whose exponential underflows to zero is a valid zero
// contribution.
func (f *Field) Advance(dt, h0, surfaceEffective, diffusivity float64) {
	lambdas := eigen.Roots(h0, eigen.DefaultCount)
	zeta := (h0 + 1.0) * surfaceEffective

	series := make([]float64, len(lambdas))
	for i, lambda := range lambdas {
		if lambda == eigen.NoRoot {
			continue
		}
		b := 0.5 * (1.0 + h0/(h0*h0+lambda*lambda))

		integral := f.profile[Layers] * math.Sin(lambda)
		for j := 1; j < Layers; j += 2 {
			r := float64(j) * deltaR
			integral += 4.0 * f.profile[j] * r * math.Sin(lambda*r)
		}
		for j := 2; j < Layers; j += 2 {
			r := float64(j) * deltaR
			integral += 2.0 * f.profile[j] * r * math.Sin(lambda*r)
		}
		integral *= deltaR / 3.0

		forcing := math.Sin(lambda) / lambda / lambda * zeta
		series[i] = (integral - forcing) * math.Exp(-diffusivity*lambda*lambda*dt) / b
	}

	for j := range f.profile {
		f.profile[j] = surfaceEffective
	}
	for i, lambda := range lambdas {
		if lambda == eigen.NoRoot {
			continue
		}
		f.profile[0] += series[i] * lambda
		for j := 1; j <= Layers; j++ {
			r := float64(j) * deltaR
			f.profile[j] += series[i] * math.Sin(lambda*r) / r
		}
	}
}

// VolumeAverage returns the volume-weighted mean temperature of the sphere,
// Simpson's rule applied to 3r²·T(r) on [0, 1]. Pure function of the current
// profile. The center sample carries zero weight through r².
func (f *Field) VolumeAverage() float64 {
	avg := f.profile[Layers]
	for j := 1; j < Layers; j += 2 {
		r := float64(j) * deltaR
		avg += 4.0 * f.profile[j] * r * r
	}
	for j := 2; j < Layers; j += 2 {
		r := float64(j) * deltaR
		avg += 2.0 * f.profile[j] * r * r
	}
	return avg * deltaR
}
