package metrics

import (
	"testing"

	"github.com/amolrajan/FLA-vap/internal/droplet"
	"github.com/amolrajan/FLA-vap/internal/fluids"
)

func TestEvaporatedFraction(t *testing.T) {
	fluid, _ := fluids.New("water")
	d := droplet.Inject(7, 40e-6, 945.0, 300.0, [2]float64{0, 0}, [2]float64{0, 0}, fluid)

	m := NewEvaporatedFraction()
	m.Observe(d, 0)
	d.Mass *= 0.8
	m.Observe(d, 1e-3)

	if got := m.Value(); got < 0.199 || got > 0.201 {
		t.Errorf("evaporated fraction = %g, want 0.2", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Errorf("reset did not clear state")
	}
}

func TestCausticCountAndPeakDensity(t *testing.T) {
	fluid, _ := fluids.New("water")
	a := droplet.Inject(0, 40e-6, 945.0, 300.0, [2]float64{0, 0}, [2]float64{0, 0}, fluid)
	b := droplet.Inject(1, 40e-6, 945.0, 300.0, [2]float64{0, 0}, [2]float64{0, 0}, fluid)

	a.Jacobian.SignChanges = 2
	a.Jacobian.NumberDensity = 40.0
	b.Jacobian.SignChanges = 1
	b.Jacobian.NumberDensity = 3.0

	cc := NewCausticCount()
	pd := NewPeakNumberDensity()
	for _, d := range []*droplet.Droplet{a, b} {
		cc.Observe(d, 0)
		pd.Observe(d, 0)
	}

	if cc.Value() != 3 {
		t.Errorf("caustic count = %g, want 3", cc.Value())
	}
	if pd.Value() != 40.0 {
		t.Errorf("peak density = %g, want 40", pd.Value())
	}
}

func TestAverageTemperature(t *testing.T) {
	fluid, _ := fluids.New("water")
	d := droplet.Inject(0, 40e-6, 945.0, 300.0, [2]float64{0, 0}, [2]float64{0, 0}, fluid)

	m := NewAverageTemperature()
	m.Observe(d, 0)
	d.Temperature = 320.0
	m.Observe(d, 1e-3)

	if got := m.Value(); got != 310.0 {
		t.Errorf("average temperature = %g, want 310", got)
	}
}
