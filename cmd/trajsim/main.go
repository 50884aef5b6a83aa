package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
	"github.com/san-kum/trajsim/internal/form"
	"github.com/san-kum/trajsim/internal/metrics"
	"github.com/san-kum/trajsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	logger     *slog.Logger
	theme      string
	metricsOut string

	// launch inputs
	angle      int
	speed      float64
	mass       float64
	drag       float64
	air        bool
	configFile string
	preset     string

	// engine overrides
	gravity  float64
	dt       float64
	maxSteps int

	showPlot  bool
	outPath   string
	chartOut  string
	axis      string
	compare   bool
	sweepFrom int
	sweepTo   int
	sweepStep int
	workers   int
	trials    int
	speedDev  float64
	angleDev  int
	seed      int64
)

// main registers the trajsim commands and runs the launch form when no
// subcommand is given. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:           "trajsim",
		Short:         "projectile trajectory lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogger(); err != nil {
				return err
			}
			return viz.SetTheme(theme)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if metricsOut == "" {
				return nil
			}
			logger.Debug("writing metrics", "path", metricsOut)
			return metrics.WriteTextfile(metricsOut)
		},
		RunE: runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&metricsOut, "metrics-out", "", "write launch metrics to a prometheus textfile on exit")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", viz.ThemeLab.Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))
	rootCmd.PersistentFlags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravitational acceleration (m/s²)")
	rootCmd.PersistentFlags().Float64Var(&dt, "dt", config.DefaultDt, "sampling timestep (s)")
	rootCmd.PersistentFlags().IntVar(&maxSteps, "max-steps", config.DefaultMaxSteps, "sampling step limit before a launch counts as divergent")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "compute one trajectory",
		Args:  cobra.NoArgs,
		RunE:  runLaunch,
	}
	addLaunchFlags(runCmd)
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "draw the height curve")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "draw the height curve in the terminal",
		Args:  cobra.NoArgs,
		RunE:  plotLaunch,
	}
	addLaunchFlags(plotCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "compare the ideal and drag models for one launch",
		Args:  cobra.NoArgs,
		RunE:  compareModels,
	}
	addLaunchFlags(compareCmd)

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "render the trajectory to an image (png, svg, pdf)",
		Args:  cobra.NoArgs,
		RunE:  renderChart,
	}
	addLaunchFlags(chartCmd)
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "trajectory.png", "output image path")
	chartCmd.Flags().StringVar(&axis, "axis", "distance", "x axis: distance or time")
	chartCmd.Flags().BoolVar(&compare, "compare", false, "draw both models")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export trajectory samples to CSV",
		Args:  cobra.NoArgs,
		RunE:  exportCSV,
	}
	addLaunchFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export trajectory samples and metrics to JSON",
		Args:  cobra.NoArgs,
		RunE:  exportJSON,
	}
	addLaunchFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep the launch angle and find the longest range",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addLaunchFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepFrom, "from", 1, "first angle (deg)")
	sweepCmd.Flags().IntVar(&sweepTo, "to", 89, "last angle (deg)")
	sweepCmd.Flags().IntVar(&sweepStep, "step", 1, "angle increment (deg)")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default NumCPU)")

	monteCarloCmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "launch dispersion from random speed and angle errors",
		Args:  cobra.NoArgs,
		RunE:  runMonteCarlo,
	}
	addLaunchFlags(monteCarloCmd)
	monteCarloCmd.Flags().IntVar(&trials, "trials", 500, "number of trials")
	monteCarloCmd.Flags().Float64Var(&speedDev, "speed-spread", 1.0, "uniform speed error (± m/s)")
	monteCarloCmd.Flags().IntVar(&angleDev, "angle-spread", 1, "uniform angle error (± deg)")
	monteCarloCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a scripted list of launches from yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [model]",
		Short: "list available presets for a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for model: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				cfg := config.GetPreset(args[0], p)
				fmt.Printf("  %-10s angle=%d speed=%.1f", p, cfg.Launch.Angle, cfg.Launch.Speed)
				if cfg.AirResistance {
					fmt.Printf(" mass=%.3f k=%.3f", cfg.Launch.Mass, cfg.Launch.Drag)
				}
				fmt.Println()
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, plotCmd, compareCmd, chartCmd, exportCSVCmd, exportJSONCmd, sweepCmd, monteCarloCmd, scenarioCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setupLogger() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	applyEngineFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	initial := form.Form{
		Speed: formatInput(cfg.Launch.Speed),
		Angle: fmt.Sprint(cfg.Launch.Angle),
		Mass:  formatInput(cfg.Launch.Mass),
		Drag:  formatInput(cfg.Launch.Drag),
	}
	return viz.RunForm(experiment.NewRegistry(), cfg.TrajectoryConfig(), initial)
}

func formatInput(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
