package fla

import (
	"math"
	"testing"

	"github.com/amolrajan/FLA-vap/internal/droplet"
	"github.com/amolrajan/FLA-vap/internal/fluids"
	"github.com/amolrajan/FLA-vap/internal/gasfield"
)

func stokesDrag(re float64) float64 { return 18.0 }

func testDroplet() *droplet.Droplet {
	fluid, _ := fluids.New("n-dodecane")
	return droplet.Inject(0, 50e-6, 744.0, 300.0, [2]float64{0, 0.01}, [2]float64{1, 0}, fluid)
}

func quiescent() gasfield.Cell {
	return gasfield.Cell{
		Temperature: 300.0,
		Pressure:    101325.0,
		Viscosity:   1.8e-5,
	}
}

func TestZeroGradientKeepsIdentity(t *testing.T) {
	d := testDroplet()
	tr := NewTracker()

	for i := 0; i < 100; i++ {
		tr.Step(d, quiescent(), stokesDrag, 1e-4)
	}

	js := d.Jacobian
	if math.Abs(js.J11-1) > 1e-12 || math.Abs(js.J22-1) > 1e-12 ||
		math.Abs(js.J12) > 1e-12 || math.Abs(js.J21) > 1e-12 {
		t.Errorf("identity not preserved: J = [%g %g; %g %g]", js.J11, js.J12, js.J21, js.J22)
	}
	if math.Abs(js.Det-1) > 1e-12 {
		t.Errorf("det drifted: %g", js.Det)
	}
	if js.SignChanges != 0 {
		t.Errorf("spurious singularity count: %d", js.SignChanges)
	}
	if math.Abs(js.NumberDensity-1) > 1e-12 {
		t.Errorf("number density drifted: %g", js.NumberDensity)
	}
}

func TestDivergenceFreeFlowPreservesArea(t *testing.T) {
	d := testDroplet()
	tr := NewTracker()

	// Weak rotation with a heavy (large-τ) particle: the trajectory map is
	// near area-preserving, so det J stays near one over many steps.
	field := gasfield.SolidRotation{Base: quiescent(), Omega: 0.5}
	for i := 0; i < 500; i++ {
		cell := field.At(d.Position, float64(i)*1e-3)
		tr.Step(d, cell, stokesDrag, 1e-3)
	}

	if math.Abs(d.Jacobian.Det-1) > 0.05 {
		t.Errorf("area not preserved in divergence-free flow: det = %g", d.Jacobian.Det)
	}
	if d.Jacobian.SignChanges != 0 {
		t.Errorf("no caustic expected, counted %d", d.Jacobian.SignChanges)
	}
}

func TestBetaFromDragLaw(t *testing.T) {
	d := testDroplet()
	tr := NewTracker()
	cell := quiescent()
	tr.Step(d, cell, stokesDrag, 1e-4)

	wantTau := d.Density * d.Diameter * d.Diameter / (cell.Viscosity * 18.0)
	if math.Abs(d.Jacobian.Beta-1.0/wantTau) > 1e-9*d.Jacobian.Beta {
		t.Errorf("beta = %g, want %g", d.Jacobian.Beta, 1.0/wantTau)
	}
}

func TestSignChangeCounted(t *testing.T) {
	d := testDroplet()
	// Force a determinant crossing directly; the tracker only compares signs.
	d.Jacobian.Det = 1.0
	d.Jacobian.J11 = -1.0 // det = −1 after the (gradient-free) step
	tr := NewTracker()
	tr.Step(d, quiescent(), stokesDrag, 1e-6)

	if d.Jacobian.SignChanges != 1 {
		t.Errorf("sign change not counted: %d", d.Jacobian.SignChanges)
	}
	if d.Jacobian.Det >= 0 {
		t.Errorf("det should remain negative, got %g", d.Jacobian.Det)
	}
	if d.Jacobian.NumberDensity <= 0 {
		t.Errorf("number density must stay positive: %g", d.Jacobian.NumberDensity)
	}
}
