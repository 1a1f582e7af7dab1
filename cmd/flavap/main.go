package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/amolrajan/FLA-vap/internal/config"
	"github.com/amolrajan/FLA-vap/internal/droplet"
	"github.com/amolrajan/FLA-vap/internal/evap"
	"github.com/amolrajan/FLA-vap/internal/fluids"
	"github.com/amolrajan/FLA-vap/internal/gasfield"
	"github.com/amolrajan/FLA-vap/internal/metrics"
	"github.com/amolrajan/FLA-vap/internal/sim"
	"github.com/amolrajan/FLA-vap/internal/storage"
	"github.com/amolrajan/FLA-vap/internal/viz"
)

const airGasConstant = 287.016

var (
	dataDir    string
	configFile string
	presetName string
	fluidName  string
	dt         float64
	duration   float64
	droplets   int
	diameter   float64
	dropletT   float64
	gasT       float64
	gasP       float64
	gasVX      float64
	verbose    bool

	plotColumn  string
	plotDroplet int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flavap",
		Short: "droplet evaporation and fully Lagrangian dispersion lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".flavap", "data directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a droplet cloud simulation",
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&presetName, "preset", "", "use preset configuration")
	runCmd.Flags().StringVar(&fluidName, "fluid", config.DefaultFluid, "droplet fluid")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep [s]")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration [s]")
	runCmd.Flags().IntVar(&droplets, "droplets", 1, "number of droplets")
	runCmd.Flags().Float64Var(&diameter, "diameter", 50e-6, "initial diameter [m]")
	runCmd.Flags().Float64Var(&dropletT, "droplet-temp", 300.0, "initial droplet temperature [K]")
	runCmd.Flags().Float64Var(&gasT, "gas-temp", 800.0, "gas temperature [K]")
	runCmd.Flags().Float64Var(&gasP, "gas-pressure", 101325.0, "gas pressure [Pa]")
	runCmd.Flags().Float64Var(&gasVX, "gas-vx", 0.0, "gas x-velocity [m/s]")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored droplet history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&plotColumn, "column", "temperature", "history column to plot")
	plotCmd.Flags().IntVar(&plotDroplet, "droplet", 0, "droplet id within the run")

	fluidsCmd := &cobra.Command{
		Use:   "fluids",
		Short: "list available droplet fluids",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range fluids.Names() {
				fmt.Println(name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			names := make([]string, 0, len(config.Presets))
			for name := range config.Presets {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("%s (%s)\n", name, config.Presets[name].Fluid)
			}
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a single droplet with a live terminal view",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&presetName, "preset", "", "use preset configuration")
	liveCmd.Flags().StringVar(&fluidName, "fluid", config.DefaultFluid, "droplet fluid")
	liveCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep [s]")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, fluidsCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// buildConfig resolves preset, then config file, then explicit flags, in
// increasing priority.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		p, ok := config.Presets[presetName]
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s", presetName)
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("fluid") {
		cfg.Fluid = fluidName
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("droplets") {
		cfg.Droplets = droplets
	}
	if cmd.Flags().Changed("diameter") {
		cfg.Droplet.Diameter = diameter
	}
	if cmd.Flags().Changed("droplet-temp") {
		cfg.Droplet.Temperature = dropletT
	}
	if cmd.Flags().Changed("gas-temp") {
		cfg.Gas.Temperature = gasT
	}
	if cmd.Flags().Changed("gas-pressure") {
		cfg.Gas.Pressure = gasP
	}
	if cmd.Flags().Changed("gas-vx") {
		cfg.Gas.VX = gasVX
	}

	return cfg, cfg.Validate()
}

func buildField(cfg *config.Config) gasfield.Field {
	base := gasfield.Cell{
		Temperature:  cfg.Gas.Temperature,
		Pressure:     cfg.Gas.Pressure,
		Density:      cfg.Gas.Pressure / (airGasConstant * cfg.Gas.Temperature),
		Viscosity:    cfg.Gas.Viscosity,
		Conductivity: cfg.Gas.Conductivity,
		SpecificHeat: cfg.Gas.SpecificHeat,
		Velocity:     [2]float64{cfg.Gas.VX, cfg.Gas.VY},
	}
	switch cfg.GasField.Kind {
	case "rotation":
		return gasfield.SolidRotation{Base: base, Omega: cfg.GasField.Rate}
	case "stagnation":
		return gasfield.Stagnation{Base: base, Strain: cfg.GasField.Rate}
	default:
		return gasfield.Uniform{Cell: base}
	}
}

func buildHost(cfg *config.Config, log *logrus.Logger) (*sim.Host, fluids.Provider, error) {
	fluid, err := fluids.New(cfg.Fluid)
	if err != nil {
		return nil, nil, err
	}

	model, err := evap.New(fluid, evap.Config{
		Components:            1,
		FractionalMassChange:  cfg.Limits.MassChange,
		FractionalHeatChange:  cfg.Limits.HeatChange,
		TransferAccuracy:      cfg.Transfer.Accuracy,
		TransferMaxIterations: cfg.Transfer.MaxIterations,
	})
	if err != nil {
		return nil, nil, err
	}

	return sim.New(model, fluid, buildField(cfg), log), fluid, nil
}

// injectCloud spaces droplets along y so a straining field shears the cloud.
func injectCloud(cfg *config.Config, fluid fluids.Provider) []*droplet.Droplet {
	cloud := make([]*droplet.Droplet, cfg.Droplets)
	for i := range cloud {
		pos := [2]float64{cfg.Droplet.X, cfg.Droplet.Y + float64(i)*cfg.Droplet.Diameter*20}
		vel := [2]float64{cfg.Droplet.VX, cfg.Droplet.VY}
		density := fluid.LiquidDensity(cfg.Droplet.Temperature)
		cloud[i] = droplet.Inject(i, cfg.Droplet.Diameter, density, cfg.Droplet.Temperature, pos, vel, fluid)
	}
	return cloud
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger()
	host, fluid, err := buildHost(cfg, log)
	if err != nil {
		return err
	}

	host.AddMetric(metrics.NewAverageTemperature())
	host.AddMetric(metrics.NewPeakNumberDensity())
	host.AddMetric(metrics.NewCausticCount())
	host.AddMetric(metrics.NewEvaporatedFraction())

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	cloud := injectCloud(cfg, fluid)

	fmt.Printf("running %s cloud (%d droplets)...\n", cfg.Fluid, cfg.Droplets)
	start := time.Now()

	result, err := host.Run(context.Background(), cloud, sim.Config{
		Dt:              cfg.Dt,
		Duration:        cfg.Duration,
		MinMassFraction: 1e-3,
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Fluid, cfg.Dt, cfg.Duration, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	if len(result.Errors) > 0 {
		fmt.Printf("droplet errors: %d (first: %v)\n", len(result.Errors), result.Errors[0])
	}

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6g\n", name, result.Metrics[name])
	}

	if len(result.Histories) > 0 && len(result.Histories[0].Temperature) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(result.Histories[0].Temperature,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("droplet 0 bulk temperature [K]"),
		))
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFLUID\tTIME\tDURATION\tDT\tDROPLETS\tSTEPS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3fs\t%.2es\t%d\t%d\n",
			run.ID,
			run.Fluid,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Droplets,
			run.Steps,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	columns, err := st.LoadHistory(runID, plotDroplet)
	if err != nil {
		return err
	}

	data, ok := columns[plotColumn]
	if !ok {
		available := make([]string, 0, len(columns))
		for name := range columns {
			available = append(available, name)
		}
		sort.Strings(available)
		return fmt.Errorf("unknown column %q (available: %v)", plotColumn, available)
	}
	if len(data) < 2 {
		return fmt.Errorf("not enough samples to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("fluid: %s\n", meta.Fluid)
	fmt.Printf("samples: %d\n\n", len(data))

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("droplet %d %s", plotDroplet, plotColumn)),
	))
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger()
	host, fluid, err := buildHost(cfg, log)
	if err != nil {
		return err
	}

	d := injectCloud(cfg, fluid)[0]

	p := tea.NewProgram(viz.NewModel(host, d, cfg.Dt, cfg.Fluid))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
