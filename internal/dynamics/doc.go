// Package dynamics holds the shared numeric substrate for the droplet model:
// the state vector type, the ODE [System] and [Integrator] interfaces, and the
// error kinds the step pipeline can surface.
package dynamics
