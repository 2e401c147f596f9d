package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/threebody/internal/analysis"
	"github.com/san-kum/threebody/internal/config"
	"github.com/san-kum/threebody/internal/display"
	"github.com/san-kum/threebody/internal/dynamo"
	"github.com/san-kum/threebody/internal/export"
	"github.com/san-kum/threebody/internal/integrators"
	"github.com/san-kum/threebody/internal/logging"
	"github.com/san-kum/threebody/internal/metrics"
	"github.com/san-kum/threebody/internal/physics"
	"github.com/san-kum/threebody/internal/render"
	"github.com/san-kum/threebody/internal/sim"
	"github.com/san-kum/threebody/internal/viz"
)

var (
	configFile string
	preset     string
	dt         float64
	logLevel   string
	logFormat  string
	// bounded runs
	steps  int
	frames int
	// output files
	outFile   string
	scale     int
	svgFile   string
	jsonFile  string
	writeFile string
)

// main runs the always-on display loop when no subcommand is given.
// It exits with status 1 if the command returns an error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "threebody",
		Short: "figure-eight three-body orbit on a 128x64 monochrome display",
		Args:  cobra.NoArgs,
		RunE:  runDevice,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	rootCmd.Flags().IntVar(&steps, "steps", 0, "stop after this many frames (0 runs forever)")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "show the display in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPreview,
	}

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "record frames to a GIF, or the last frame to an SVG",
		Args:  cobra.NoArgs,
		RunE:  runRecord,
	}
	recordCmd.Flags().IntVar(&frames, "frames", 300, "number of frames")
	recordCmd.Flags().StringVar(&outFile, "out", "threebody.gif", "output file (.gif or .svg)")
	recordCmd.Flags().IntVar(&scale, "scale", 4, "output pixels per display pixel")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "plot energy and positions over a run",
		Args:  cobra.NoArgs,
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&steps, "steps", 0, "number of steps (0 runs one figure-eight period for the default orbit, 10 time units otherwise)")
	traceCmd.Flags().StringVar(&svgFile, "svg", "", "also write the orbits to this SVG file")
	traceCmd.Flags().StringVar(&jsonFile, "json", "", "also write the trajectory to this JSON file")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if writeFile != "" {
				return config.Save(writeFile, cfg)
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	configCmd.Flags().StringVar(&writeFile, "write", "", "write to this file instead of stdout")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tINTEGRATOR\tDT")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%g\n", name, p.Integrator, p.Dt)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(previewCmd, recordCmd, traceCmd, configCmd, presetsCmd)
	return rootCmd
}

// loadConfig resolves the configuration: defaults, then the preset, then
// the config file laid over it, then flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) zerolog.Logger {
	if logFormat == "json" {
		return logging.NewJSON(cmd.ErrOrStderr(), logLevel)
	}
	return logging.New(cmd.ErrOrStderr(), logLevel)
}

// newSimulator builds the physics and integrator named by cfg.
func newSimulator(cfg *config.Config) (*sim.Simulator, *physics.ThreeBody, error) {
	integ, err := integrators.Get(cfg.Integrator)
	if err != nil {
		return nil, nil, err
	}
	sys := physics.NewThreeBody(cfg.G)
	return sim.New(sys, integ, cfg.Dt), sys, nil
}

func newLoop(cfg *config.Config, dev display.Display, opts ...sim.LoopOption) (*sim.Loop, sim.State, *physics.ThreeBody, error) {
	s, sys, err := newSimulator(cfg)
	if err != nil {
		return nil, sim.State{}, nil, err
	}
	r := render.NewRenderer(dev, cfg.Projection(), cfg.Samples())
	initial := sim.NewState(cfg.InitialBodies(), cfg.Samples())
	return sim.NewLoop(s, r, initial.Clone(), opts...), initial, sys, nil
}

// runDevice is the always-on loop: flash the indicator, then draw and
// advance until interrupted.
func runDevice(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd)

	fb := display.NewFramebuffer(cfg.Display.Width, cfg.Display.Height)
	fb.OnFlush(func(fb *display.Framebuffer) {
		log.Trace().Int("frame", fb.Flushes()).Int("lit", fb.Count()).Msg("flush")
	})

	indicator := display.NewLEDIndicator(display.NewLogLight(log), cfg.Indicator.On, cfg.Indicator.Pause, log)
	loop, _, _, err := newLoop(cfg, fb,
		sim.WithIndicator(indicator),
		sim.WithFrameInterval(cfg.FrameInterval()),
		sim.WithLogger(log),
	)
	if err != nil {
		return err
	}

	if steps > 0 {
		err = loop.RunSteps(cmd.Context(), steps)
	} else {
		err = loop.Run(cmd.Context())
	}
	if err != nil && cmd.Context().Err() != nil {
		st := loop.State()
		log.Info().Int("step", st.Step).Float64("t", st.Time).Msg("stopped")
		return nil
	}
	return err
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	term := viz.NewTermDisplay(cfg.Display.Width, cfg.Display.Height)
	loop, initial, sys, err := newLoop(cfg, term)
	if err != nil {
		return err
	}

	title := preset
	if title == "" {
		title = "figure8"
	}
	fps := cfg.Display.FPS
	if fps == 0 {
		fps = 30
	}
	m := viz.NewModel(loop, term, initial, viz.PreviewConfig{Title: title, FPS: fps, Energy: sys})

	p := tea.NewProgram(m, tea.WithContext(cmd.Context()), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}
	log := newLogger(cmd)

	ext := strings.ToLower(filepath.Ext(outFile))
	if ext != ".gif" && ext != ".svg" {
		return fmt.Errorf("unsupported output format %q (use .gif or .svg)", ext)
	}

	fb := display.NewFramebuffer(cfg.Display.Width, cfg.Display.Height)
	var rec *export.GIFRecorder
	if ext == ".gif" {
		// GIF delays are in hundredths of a second.
		delay := 4
		if cfg.Display.FPS > 0 {
			delay = max(1, 100/cfg.Display.FPS)
		}
		rec = export.NewGIFRecorder(fb, scale, delay, frames)
	}

	loop, _, _, err := newLoop(cfg, fb, sim.WithLogger(log))
	if err != nil {
		return err
	}
	if err := loop.RunSteps(cmd.Context(), frames); err != nil {
		return err
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if rec != nil {
		err = rec.Save(f)
	} else {
		_, err = io.WriteString(f, export.FramebufferToSVG(fb, float64(scale)))
	}
	if err != nil {
		return err
	}

	log.Info().Str("file", outFile).Int("frames", frames).Msg("recorded")
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cmd)

	s, sys, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	drift := metrics.NewEnergyDrift(sys)
	period := metrics.NewPeriodError()
	s.AddMetric(drift)
	s.AddMetric(period)

	n := steps
	if n <= 0 {
		n = defaultTraceSteps(cfg)
	}

	result, err := s.Run(cmd.Context(), sim.NewState(cfg.InitialBodies(), cfg.Samples()), sim.Config{Duration: float64(n) * cfg.Dt})
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		log.Warn().Err(e).Msg("run stopped early")
	}

	energy := make([]float64, len(result.States))
	var paths [3][]dynamo.Vec2
	var xs [3][]float64
	for i, b := range result.States {
		energy[i] = sys.Energy(b)
		for j := range b {
			paths[j] = append(paths[j], b[j].Position)
			xs[j] = append(xs[j], b[j].Position.X)
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, asciigraph.Plot(energy,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("total energy"),
	))
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.PlotMany(xs[:],
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Yellow),
		asciigraph.Caption("x position (alpha, beta, gamma)"),
	))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "steps\t%d\n", result.StepsTaken)
	fmt.Fprintf(w, "time\t%.3f\n", result.Times[len(result.Times)-1])
	fmt.Fprintf(w, "energy drift (max)\t%.3e\n", result.Metrics[drift.Name()])
	fmt.Fprintf(w, "offset from start\t%.3e\n", result.Metrics[period.Name()])
	if best, at := period.Best(); best < 1 {
		fmt.Fprintf(w, "closest return\t%.3e at t=%.3f\n", best, at)
	}
	if p := analysis.DominantPeriod(xs[0], cfg.Dt); p > 0 {
		fmt.Fprintf(w, "dominant period (alpha x)\t%.3f\n", p)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if svgFile != "" {
		if err := os.WriteFile(svgFile, []byte(export.OrbitsToSVG(paths, 640, 320)), 0644); err != nil {
			return err
		}
		log.Info().Str("file", svgFile).Msg("orbits written")
	}

	if jsonFile != "" {
		f, err := os.Create(jsonFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := export.ExportJSON(f, export.NewTrajectoryData(cfg.Integrator, cfg.Dt, result)); err != nil {
			return err
		}
		log.Info().Str("file", jsonFile).Msg("trajectory written")
	}
	return nil
}

// defaultTraceSteps covers one period when cfg runs the figure-eight
// orbit. Other initial conditions have no known period, so they get the
// simulator's default duration.
func defaultTraceSteps(cfg *config.Config) int {
	duration := sim.DefaultConfig().Duration
	if cfg.G == 1 && cfg.InitialBodies() == physics.FigureEight() {
		duration = physics.FigureEightPeriod
	}
	return int(math.Round(duration / cfg.Dt))
}
