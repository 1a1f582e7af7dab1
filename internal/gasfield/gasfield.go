// Package gasfield supplies the continuous-phase state the droplet model
// reads from its host cell: thermodynamic properties, velocity and the local
// velocity-gradient tensor (2-D/axisymmetric reduction).
package gasfield

// VelocityGradient is the local gas velocity-gradient tensor ∇u.
type VelocityGradient struct {
	DUDX, DUDY float64
	DVDX, DVDY float64
}

// Cell is the cached per-cell gas state at a droplet location.
type Cell struct {
	Temperature       float64
	Pressure          float64
	Density           float64
	Viscosity         float64
	Conductivity      float64
	SpecificHeat      float64
	Velocity          [2]float64
	VaporMassFraction float64
	Gradient          VelocityGradient
}

// Field samples the gas state at a position and time.
type Field interface {
	At(pos [2]float64, t float64) Cell
}

// Uniform is a quiescent or uniformly convecting gas with zero velocity
// gradients everywhere.
type Uniform struct {
	Cell Cell
}

func (u Uniform) At(pos [2]float64, t float64) Cell {
	return u.Cell
}

// SolidRotation superimposes rigid-body rotation u = (-Ωy, Ωx) on a base
// state. The flow is divergence-free, so trajectory maps stay
// area-preserving in the large-τ limit.
type SolidRotation struct {
	Base  Cell
	Omega float64
}

func (s SolidRotation) At(pos [2]float64, t float64) Cell {
	c := s.Base
	c.Velocity = [2]float64{-s.Omega * pos[1], s.Omega * pos[0]}
	c.Gradient = VelocityGradient{DUDY: -s.Omega, DVDX: s.Omega}
	return c
}

// Stagnation is the planar straining flow u = (Sx, -Sy), divergence-free
// with constant gradients; particle clouds fold along the compressive axis,
// which makes it the standard caustic test case.
type Stagnation struct {
	Base   Cell
	Strain float64
}

func (s Stagnation) At(pos [2]float64, t float64) Cell {
	c := s.Base
	c.Velocity = [2]float64{s.Strain * pos[0], -s.Strain * pos[1]}
	c.Gradient = VelocityGradient{DUDX: s.Strain, DVDY: -s.Strain}
	return c
}
