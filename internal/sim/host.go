// Package sim is the stand-in host engine: it owns the droplet cloud, the
// time stepping and the trajectory integration, and invokes the two model
// entry points once per droplet per step — the evaporation/heating model and
// the Jacobian tracker. Droplets are independent, so the per-step work fans
// out across goroutines, one droplet each.
package sim

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/amolrajan/FLA-vap/internal/droplet"
	"github.com/amolrajan/FLA-vap/internal/dynamics"
	"github.com/amolrajan/FLA-vap/internal/evap"
	"github.com/amolrajan/FLA-vap/internal/fla"
	"github.com/amolrajan/FLA-vap/internal/fluids"
	"github.com/amolrajan/FLA-vap/internal/gasfield"
	"github.com/amolrajan/FLA-vap/internal/metrics"
)

// Config controls one run.
type Config struct {
	Dt       float64
	Duration float64

	// MinMassFraction removes a droplet once its mass falls below this
	// fraction of its injected mass.
	MinMassFraction float64
}

func DefaultConfig() Config {
	return Config{
		Dt:              1e-4,
		Duration:        0.1,
		MinMassFraction: 1e-3,
	}
}

// Observer is notified after every completed step of every droplet.
type Observer interface {
	OnStep(d *droplet.Droplet, t float64)
}

// History is one droplet's recorded time series.
type History struct {
	ID            int
	Times         []float64
	Temperature   []float64
	Diameter      []float64
	EvapRate      []float64
	Det           []float64
	NumberDensity []float64
}

// GasSources is the per-step cloud total handed to the carrier phase.
type GasSources struct {
	SpeciesMassRate float64
	EnergyRate      float64
}

// Result aggregates a finished run.
type Result struct {
	Histories  []*History
	Sources    []GasSources
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// Host couples the model packages the way the real particle engine would.
type Host struct {
	model   *evap.Model
	tracker *fla.Tracker
	fluid   fluids.Provider
	field   gasfield.Field
	drag    fla.DragFunc

	metrics   []metrics.Metric
	observers []Observer
	log       *logrus.Logger
}

func New(model *evap.Model, fluid fluids.Provider, field gasfield.Field, log *logrus.Logger) *Host {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	return &Host{
		model:   model,
		tracker: fla.NewTracker(),
		fluid:   fluid,
		field:   field,
		drag:    SchillerNaumann,
		log:     log,
	}
}

func (h *Host) AddMetric(m metrics.Metric) { h.metrics = append(h.metrics, m) }
func (h *Host) AddObserver(o Observer)     { h.observers = append(h.observers, o) }
func (h *Host) SetDrag(drag fla.DragFunc)  { h.drag = drag }

// Run advances the cloud until cfg.Duration, shrinking the global step to the
// smallest ceiling any droplet's model recommended on the previous step. All
// droplets advance with the same dt so the two per-droplet state blocks stay
// synchronized with the host clock.
func (h *Host) Run(ctx context.Context, cloud []*droplet.Droplet, cfg Config) (*Result, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Histories: make([]*History, len(cloud)),
		Metrics:   make(map[string]float64),
	}
	initialMass := make([]float64, len(cloud))
	alive := make([]bool, len(cloud))
	for i, d := range cloud {
		result.Histories[i] = &History{ID: d.ID}
		initialMass[i] = d.Mass
		alive[i] = true
	}
	for _, m := range h.metrics {
		m.Reset()
	}

	h.log.WithFields(logrus.Fields{
		"droplets": len(cloud),
		"fluid":    h.fluid.Name(),
		"dt":       cfg.Dt,
		"duration": cfg.Duration,
	}).Info("run started")

	t := 0.0
	dt := cfg.Dt

	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		ceilings := make([]float64, len(cloud))
		stepErrs := make([]error, len(cloud))
		var step GasSources
		var mu sync.Mutex
		var wg sync.WaitGroup

		for i, d := range cloud {
			if !alive[i] {
				ceilings[i] = math.Inf(1)
				continue
			}
			wg.Add(1)
			go func(i int, d *droplet.Droplet) {
				defer wg.Done()
				src, err := h.StepDroplet(d, t, dt)
				ceilings[i] = src.NextStepCeiling
				stepErrs[i] = err
				if err == nil {
					mu.Lock()
					step.SpeciesMassRate += src.SpeciesMassRate
					step.EnergyRate += src.EnergyRate
					mu.Unlock()
				}
			}(i, d)
		}
		wg.Wait()

		next := cfg.Dt
		for i, d := range cloud {
			if !alive[i] {
				continue
			}
			if err := stepErrs[i]; err != nil {
				result.Errors = append(result.Errors, &dynamics.StepError{
					Step:    result.StepsTaken,
					Time:    t,
					Wrapped: err,
				})
				h.log.WithError(err).WithField("droplet", d.ID).Warn("step failed, droplet removed")
				alive[i] = false
				continue
			}
			if d.Mass < cfg.MinMassFraction*initialMass[i] {
				h.log.WithField("droplet", d.ID).Info("droplet fully evaporated")
				alive[i] = false
				continue
			}
			next = math.Min(next, ceilings[i])

			hist := result.Histories[i]
			hist.Times = append(hist.Times, t+dt)
			hist.Temperature = append(hist.Temperature, d.Temperature)
			hist.Diameter = append(hist.Diameter, d.Diameter)
			hist.EvapRate = append(hist.EvapRate, d.Thermal.EvaporationRate)
			hist.Det = append(hist.Det, d.Jacobian.Det)
			hist.NumberDensity = append(hist.NumberDensity, d.Jacobian.NumberDensity)

			for _, m := range h.metrics {
				m.Observe(d, t+dt)
			}
			for _, o := range h.observers {
				o.OnStep(d, t+dt)
			}
		}

		result.Sources = append(result.Sources, step)
		result.StepsTaken++
		t += dt
		dt = next

		anyAlive := false
		for _, a := range alive {
			anyAlive = anyAlive || a
		}
		if !anyAlive {
			break
		}
	}

	for _, m := range h.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
	h.log.WithFields(logrus.Fields{
		"steps":  result.StepsTaken,
		"errors": len(result.Errors),
	}).Info("run finished")

	return result, nil
}

// StepDroplet advances one droplet through the host trajectory update, the
// evaporation model and the Jacobian tracker. The two model state blocks are
// disjoint, so ordering within the step only matters against the host clock.
func (h *Host) StepDroplet(d *droplet.Droplet, t, dt float64) (evap.Sources, error) {
	cell := h.field.At(d.Position, t)

	dvx := cell.Velocity[0] - d.Velocity[0]
	dvy := cell.Velocity[1] - d.Velocity[1]
	relVel := math.Sqrt(dvx*dvx + dvy*dvy)
	d.Reynolds = cell.Density * relVel * d.Diameter / cell.Viscosity

	// Host-owned trajectory update with the same drag law handed to the
	// Jacobian tracker.
	tau := d.Density * d.Diameter * d.Diameter / (cell.Viscosity * h.drag(d.Reynolds))
	d.Velocity[0] += dvx / tau * dt
	d.Velocity[1] += dvy / tau * dt
	d.Position[0] += d.Velocity[0] * dt
	d.Position[1] += d.Velocity[1] * dt

	src, err := h.model.Step(d, cell, dt, false)
	if err != nil {
		return evap.Sources{}, fmt.Errorf("droplet %d at t=%.6f: %w", d.ID, t, err)
	}

	// Apply the mass loss and shrink the diameter at the current liquid
	// density.
	d.Mass = math.Max(d.Mass-src.SpeciesMassRate*dt, 0)
	d.Density = h.fluid.LiquidDensity(d.Temperature)
	if d.Mass > 0 {
		d.Diameter = math.Cbrt(6.0 * d.Mass / (math.Pi * d.Density))
	}

	h.tracker.Step(d, cell, h.drag, dt)
	if !d.Jacobian.Vector().IsValid() {
		return evap.Sources{}, fmt.Errorf("droplet %d at t=%.6f: %w", d.ID, t, dynamics.ErrInvalidState)
	}
	return src, nil
}

func validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", cfg.Duration)
	}
	return nil
}
