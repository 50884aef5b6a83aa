package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/san-kum/trajsim/internal/automation"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/export"
	"github.com/san-kum/trajsim/internal/form"
	"github.com/san-kum/trajsim/internal/trajectory"
	"github.com/san-kum/trajsim/internal/viz"
	"github.com/spf13/cobra"
)

const (
	plotWidth  = 70
	plotHeight = 15
)

func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&angle, "angle", config.DefaultAngle, "launch angle (deg)")
	cmd.Flags().Float64Var(&speed, "speed", config.DefaultSpeed, "launch speed (m/s)")
	cmd.Flags().Float64Var(&mass, "mass", config.DefaultMass, "projectile mass (kg, drag model)")
	cmd.Flags().Float64Var(&drag, "k", config.DefaultDrag, "linear drag coefficient (kg/s, drag model)")
	cmd.Flags().BoolVar(&air, "air", false, "enable air resistance (drag model)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers the launch configuration: defaults, then a preset,
// then a config file, then flags the user set explicitly.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := findPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (ideal: %v, drag: %v)",
				preset, config.ListPresets("ideal"), config.ListPresets("drag"))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("angle") {
		cfg.Launch.Angle = angle
	}
	if flags.Changed("speed") {
		cfg.Launch.Speed = speed
	}
	if flags.Changed("mass") {
		cfg.Launch.Mass = mass
	}
	if flags.Changed("k") {
		cfg.Launch.Drag = drag
	}
	if flags.Changed("air") {
		cfg.AirResistance = air
		if !air {
			cfg.Model = "ideal"
		}
	}
	applyEngineFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("launch resolved",
		"model", cfg.ModelName(),
		"angle", cfg.Launch.Angle,
		"speed", cfg.Launch.Speed,
		"mass", cfg.Launch.Mass,
		"k", cfg.Launch.Drag,
		"dt", cfg.Engine.Dt,
	)
	return cfg, nil
}

func applyEngineFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("gravity") {
		cfg.Engine.Gravity = gravity
	}
	if flags.Changed("dt") {
		cfg.Engine.Dt = dt
	}
	if flags.Changed("max-steps") {
		cfg.Engine.MaxSteps = maxSteps
	}
}

// findPreset looks a preset up under both models, ideal first.
func findPreset(name string) *config.Config {
	for _, model := range []string{"ideal", "drag"} {
		if p := config.GetPreset(model, name); p != nil {
			return p
		}
	}
	return nil
}

func launch(registry *experiment.Registry, model string, cfg *config.Config) (*trajectory.Result, error) {
	exp := experiment.New(experiment.Config{
		Model:  model,
		Params: cfg.Params(),
		Engine: cfg.TrajectoryConfig(),
	})
	if err := exp.Setup(registry); err != nil {
		return nil, err
	}

	res, err := exp.Run()
	if err != nil {
		return nil, err
	}

	logger.Info("launch complete", "model", model, "samples", len(res.Heights), "elapsed", exp.Elapsed())
	return res, nil
}

func runLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := launch(experiment.NewRegistry(), cfg.ModelName(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("model: %s  angle: %d°  speed: %.2f m/s\n", res.Model, cfg.Launch.Angle, cfg.Launch.Speed)
	fmt.Println(viz.FormatResult(res))
	if showPlot {
		fmt.Println()
		fmt.Println(viz.PlotHeights(res, plotWidth, plotHeight, "height (m) over time"))
	}
	return nil
}

func plotLaunch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := launch(experiment.NewRegistry(), cfg.ModelName(), cfg)
	if err != nil {
		return err
	}

	fmt.Println(viz.PlotHeights(res, plotWidth, plotHeight,
		fmt.Sprintf("%s: height (m) over %s", res.Model, form.FormatSeconds(res.TimeOfFlight))))
	return nil
}

func compareModels(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	results := make([]*trajectory.Result, 0, 2)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tTIME OF FLIGHT\tMAX HEIGHT\tRANGE\tSAMPLES")
	fmt.Fprintln(w, "-----\t--------------\t----------\t-----\t-------")
	for _, model := range registry.ListModels() {
		res, err := launch(registry, model, cfg)
		if err != nil {
			return err
		}
		s := form.Summarize(res)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", model, s.TimeOfFlight, s.MaxHeight, s.Range, len(res.Heights))
		results = append(results, res)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(viz.PlotCompare(results, plotWidth, plotHeight, "drag (cyan) vs ideal (orange)"))
	return nil
}

func renderChart(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ax, err := export.ParseAxis(axis)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	models := []string{cfg.ModelName()}
	if compare {
		models = registry.ListModels()
	}

	series := make([]export.Series, 0, len(models))
	for _, model := range models {
		res, err := launch(registry, model, cfg)
		if err != nil {
			return err
		}
		series = append(series, export.Series{Label: model, Result: res})
	}

	opts := export.DefaultPlotOptions()
	opts.Axis = ax
	opts.Title = fmt.Sprintf("Launch at %d° and %.1f m/s", cfg.Launch.Angle, cfg.Launch.Speed)
	if err := export.SavePlot(chartOut, opts, series...); err != nil {
		return err
	}

	fmt.Printf("chart saved to %s\n", filepath.Clean(chartOut))
	return nil
}

// openOutput returns stdout when path is empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := launch(experiment.NewRegistry(), cfg.ModelName(), cfg)
	if err != nil {
		return err
	}

	out, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := export.WriteCSV(out, res); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("exported %d samples to %s\n", len(res.Heights), outPath)
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	res, err := launch(experiment.NewRegistry(), cfg.ModelName(), cfg)
	if err != nil {
		return err
	}

	out, err := openOutput(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := export.WriteJSON(out, cfg.Params(), cfg.TrajectoryConfig(), res); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("exported %d samples to %s\n", len(res.Heights), outPath)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sweep := &automation.AngleSweep{
		Model:   cfg.ModelName(),
		From:    sweepFrom,
		To:      sweepTo,
		Step:    sweepStep,
		Speed:   cfg.Launch.Speed,
		Mass:    cfg.Launch.Mass,
		Drag:    cfg.Launch.Drag,
		Engine:  cfg.TrajectoryConfig(),
		Workers: workers,
	}

	results, err := automation.RunSweep(context.Background(), sweep, experiment.NewRegistry(), logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ANGLE\tTIME OF FLIGHT\tMAX HEIGHT\tRANGE")
	fmt.Fprintln(w, "-----\t--------------\t----------\t-----")
	ranges := make([]float64, len(results))
	for i, r := range results {
		fmt.Fprintf(w, "%d°\t%s\t%s\t%s\n", r.Angle,
			form.FormatSeconds(r.TimeOfFlight), form.FormatMeters(r.MaxHeight), form.FormatMeters(r.Range))
		ranges[i] = r.Range
	}
	w.Flush()

	fmt.Println()
	fmt.Println(viz.SparklineChart(ranges, plotWidth))
	if best, ok := automation.Best(results); ok {
		fmt.Printf("longest range: %s at %d°\n", form.FormatMeters(best.Range), best.Angle)
	}
	return nil
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	mc := &automation.MonteCarloConfig{
		Model:       cfg.ModelName(),
		Base:        cfg.Params(),
		SpeedSpread: speedDev,
		AngleSpread: angleDev,
		NumTrials:   trials,
		Engine:      cfg.TrajectoryConfig(),
		Seed:        seed,
	}

	results, err := automation.RunMonteCarlo(mc, experiment.NewRegistry(), logger)
	if err != nil {
		return err
	}

	stats := automation.Stats(results)
	fmt.Printf("monte carlo: %d trials (%s, ±%.2f m/s, ±%d°)\n", stats.Trials, mc.Model, speedDev, angleDev)
	fmt.Printf("  mean range: %s\n", form.FormatMeters(stats.MeanRange))
	fmt.Printf("  std range:  %s\n", form.FormatMeters(stats.StdRange))
	fmt.Printf("  min range:  %s\n", form.FormatMeters(stats.MinRange))
	fmt.Printf("  max range:  %s\n", form.FormatMeters(stats.MaxRange))
	if stats.Divergent > 0 {
		fmt.Printf("  divergent:  %d\n", stats.Divergent)
	}
	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	if scenario.Engine == nil {
		engine := trajectory.DefaultConfig()
		scenario.Engine = &engine
	}
	if cmd.Flags().Changed("gravity") {
		scenario.Engine.Gravity = gravity
	}
	if cmd.Flags().Changed("dt") {
		scenario.Engine.Dt = dt
	}
	if cmd.Flags().Changed("max-steps") {
		scenario.Engine.MaxSteps = maxSteps
	}

	fmt.Printf("scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("  %s\n", scenario.Description)
	}

	results, err := automation.RunScenario(scenario, experiment.NewRegistry(), logger)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tMODEL\tANGLE\tSPEED\tTIME OF FLIGHT\tMAX HEIGHT\tRANGE")
	for _, r := range results {
		s := form.Summarize(r.Result)
		fmt.Fprintf(w, "%s\t%s\t%d°\t%.2f\t%s\t%s\t%s\n",
			r.Step.Name, r.Result.Model, r.Step.Angle, r.Step.Speed, s.TimeOfFlight, s.MaxHeight, s.Range)
	}
	w.Flush()

	return err
}
