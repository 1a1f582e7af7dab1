package config

func preset(mutate func(*Config)) *Config {
	c := DefaultConfig()
	mutate(c)
	return c
}

// Presets are ready-made scenarios keyed by name.
var Presets = map[string]*Config{
	// Diesel surrogate droplet in hot quiescent air.
	"diesel-hot": preset(func(c *Config) {}),

	// Slowly heating water droplet near atmospheric conditions.
	"water-warm": preset(func(c *Config) {
		c.Fluid = "water"
		c.Gas.Temperature = 400.0
		c.Gas.Viscosity = 2.3e-5
		c.Gas.Conductivity = 0.034
		c.Gas.SpecificHeat = 1014.0
		c.Duration = 0.2
	}),

	// Gasoline surrogate, convective cross-flow.
	"gasoline-crossflow": preset(func(c *Config) {
		c.Fluid = "iso-octane"
		c.Gas.VX = 10.0
		c.Droplet.Diameter = 30e-6
	}),

	// Caustic formation study: cloud in a straining flow; the thermal side
	// is quiet and the Jacobian determinant folds.
	"caustic-stagnation": preset(func(c *Config) {
		c.Droplets = 16
		c.GasField = GasFieldConfig{Kind: "stagnation", Rate: 50.0}
		c.Gas.Temperature = 350.0
		c.Droplet.X = 0.005
		c.Droplet.VX = -2.0
		c.Duration = 0.05
	}),
}
