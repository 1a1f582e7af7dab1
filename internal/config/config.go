package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt       = 1e-4
	DefaultDuration = 0.1
	DefaultFluid    = "n-dodecane"
)

type Config struct {
	Fluid    string  `yaml:"fluid"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`
	Droplets int     `yaml:"droplets"`

	Droplet  DropletConfig  `yaml:"droplet"`
	Gas      GasConfig      `yaml:"gas"`
	Limits   LimitsConfig   `yaml:"limits"`
	Transfer TransferConfig `yaml:"transfer"`
	GasField GasFieldConfig `yaml:"gas_field"`
}

type DropletConfig struct {
	Diameter    float64 `yaml:"diameter"`
	Temperature float64 `yaml:"temperature"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	VX          float64 `yaml:"vx"`
	VY          float64 `yaml:"vy"`
}

type GasConfig struct {
	Temperature  float64 `yaml:"temperature"`
	Pressure     float64 `yaml:"pressure"`
	Viscosity    float64 `yaml:"viscosity"`
	Conductivity float64 `yaml:"conductivity"`
	SpecificHeat float64 `yaml:"specific_heat"`
	VX           float64 `yaml:"vx"`
	VY           float64 `yaml:"vy"`
}

// LimitsConfig carries the per-step fractional-change caps; explicit here
// rather than read from solver-wide globals.
type LimitsConfig struct {
	MassChange float64 `yaml:"mass_change"`
	HeatChange float64 `yaml:"heat_change"`
}

// TransferConfig bounds the heat-transfer-number fixed-point solve.
type TransferConfig struct {
	Accuracy      float64 `yaml:"accuracy"`
	MaxIterations int     `yaml:"max_iterations"`
}

// GasFieldConfig selects the carrier flow shape for the Jacobian tracker:
// "uniform", "rotation" or "stagnation", with Rate as Ω or the strain rate.
type GasFieldConfig struct {
	Kind string  `yaml:"kind"`
	Rate float64 `yaml:"rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Fluid:    DefaultFluid,
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Droplets: 1,
		Droplet: DropletConfig{
			Diameter:    50e-6,
			Temperature: 300.0,
			Y:           0.01,
		},
		Gas: GasConfig{
			Temperature:  800.0,
			Pressure:     101325.0,
			Viscosity:    3.7e-5,
			Conductivity: 0.057,
			SpecificHeat: 1099.0,
		},
		Limits: LimitsConfig{
			MassChange: 0.5,
			HeatChange: 0.5,
		},
		Transfer: TransferConfig{
			Accuracy:      1e-6,
			MaxIterations: 200,
		},
		GasField: GasFieldConfig{Kind: "uniform"},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %g", c.Duration)
	}
	if c.Droplets < 1 {
		return fmt.Errorf("at least one droplet required, got %d", c.Droplets)
	}
	if c.Gas.Pressure <= 0 {
		return fmt.Errorf("gas pressure must be positive, got %g", c.Gas.Pressure)
	}
	if c.Transfer.MaxIterations < 1 {
		return fmt.Errorf("transfer solver needs at least one iteration, got %d", c.Transfer.MaxIterations)
	}
	switch c.GasField.Kind {
	case "uniform", "rotation", "stagnation":
	default:
		return fmt.Errorf("unknown gas field kind: %s", c.GasField.Kind)
	}
	return nil
}
