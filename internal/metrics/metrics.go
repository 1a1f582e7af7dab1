// Package metrics aggregates per-step droplet observations over a run.
package metrics

import (
	"math"

	"github.com/amolrajan/FLA-vap/internal/droplet"
)

// Metric observes every droplet once per step and reduces to one value.
type Metric interface {
	Name() string
	Observe(d *droplet.Droplet, t float64)
	Value() float64
	Reset()
}

// AverageTemperature is the time- and droplet-averaged bulk temperature.
type AverageTemperature struct {
	sum     float64
	samples int
}

func NewAverageTemperature() *AverageTemperature { return &AverageTemperature{} }

func (m *AverageTemperature) Name() string { return "avg_temperature" }

func (m *AverageTemperature) Observe(d *droplet.Droplet, t float64) {
	m.sum += d.Temperature
	m.samples++
}

func (m *AverageTemperature) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *AverageTemperature) Reset() {
	m.sum = 0
	m.samples = 0
}

// PeakNumberDensity is the largest FLA number density seen across the cloud;
// it diverges near caustics, which is a valid outcome, so the value may be
// very large.
type PeakNumberDensity struct {
	peak float64
}

func NewPeakNumberDensity() *PeakNumberDensity { return &PeakNumberDensity{} }

func (m *PeakNumberDensity) Name() string { return "peak_number_density" }

func (m *PeakNumberDensity) Observe(d *droplet.Droplet, t float64) {
	m.peak = math.Max(m.peak, d.Jacobian.NumberDensity)
}

func (m *PeakNumberDensity) Value() float64 { return m.peak }

func (m *PeakNumberDensity) Reset() { m.peak = 0 }

// CausticCount sums determinant sign changes across the cloud.
type CausticCount struct {
	counts map[int]int
}

func NewCausticCount() *CausticCount {
	return &CausticCount{counts: make(map[int]int)}
}

func (m *CausticCount) Name() string { return "caustic_count" }

func (m *CausticCount) Observe(d *droplet.Droplet, t float64) {
	m.counts[d.ID] = d.Jacobian.SignChanges
}

func (m *CausticCount) Value() float64 {
	total := 0
	for _, c := range m.counts {
		total += c
	}
	return float64(total)
}

func (m *CausticCount) Reset() { m.counts = make(map[int]int) }

// EvaporatedFraction tracks the cloud mass fraction lost since injection.
type EvaporatedFraction struct {
	initial map[int]float64
	current map[int]float64
}

func NewEvaporatedFraction() *EvaporatedFraction {
	return &EvaporatedFraction{
		initial: make(map[int]float64),
		current: make(map[int]float64),
	}
}

func (m *EvaporatedFraction) Name() string { return "evaporated_fraction" }

func (m *EvaporatedFraction) Observe(d *droplet.Droplet, t float64) {
	if _, ok := m.initial[d.ID]; !ok {
		m.initial[d.ID] = d.Mass
	}
	m.current[d.ID] = d.Mass
}

func (m *EvaporatedFraction) Value() float64 {
	var m0, m1 float64
	for id, v := range m.initial {
		m0 += v
		m1 += m.current[id]
	}
	if m0 == 0 {
		return 0
	}
	return (m0 - m1) / m0
}

func (m *EvaporatedFraction) Reset() {
	m.initial = make(map[int]float64)
	m.current = make(map[int]float64)
}
