package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/clockgrid/internal/analysis"
	"github.com/san-kum/clockgrid/internal/config"
	"github.com/san-kum/clockgrid/internal/dynamo"
	"github.com/san-kum/clockgrid/internal/ebitenview"
	"github.com/san-kum/clockgrid/internal/export"
	"github.com/san-kum/clockgrid/internal/gui"
	"github.com/san-kum/clockgrid/internal/metrics"
	"github.com/san-kum/clockgrid/internal/sim"
	"github.com/san-kum/clockgrid/internal/viz"
)

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	grid, err := newGrid(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	order := metrics.NewPhaseOrder(0)
	var res *sim.Result
	switch backend {
	case "raylib":
		res, err = gui.Run(ctx, grid, cfg.Layout(), gui.Options{
			FPS:          cfg.Screen.FPS,
			MaxFrameTime: cfg.MaxFrameTime,
			Logger:       logger,
			Metrics:      []sim.Metric{order},
		})
	case "ebiten":
		res, err = ebitenview.Run(ctx, grid, cfg.Layout(), ebitenview.Options{
			FPS:          cfg.Screen.FPS,
			MaxFrameTime: cfg.MaxFrameTime,
			Logger:       logger,
			Metrics:      []sim.Metric{order},
		})
	default:
		return fmt.Errorf("unknown backend: %s (available: raylib, ebiten)", backend)
	}
	if res != nil {
		logger.Info("window closed", "frames", res.Frames, "sim_time", res.SimTime, "phase_order", order.Value())
	}
	return ignoreCanceled(err)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	grid, err := newGrid(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	res, err := viz.Run(ctx, grid, viz.Options{
		Theme:        theme,
		MaxFrameTime: cfg.MaxFrameTime,
		Logger:       logger,
	})
	if res != nil {
		logger.Info("live view closed", "frames", res.Frames, "sim_time", res.SimTime)
	}
	return ignoreCanceled(err)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	px, py, err := parseProbe(probe)
	if err != nil {
		return err
	}
	grid, err := newGrid(cfg)
	if err != nil {
		return err
	}
	if w, h := grid.Dims(); px < 0 || px >= w || py < 0 || py >= h {
		return fmt.Errorf("probe (%d,%d) outside %dx%d grid", px, py, w, h)
	}

	rec := sim.NewRecorder(px, py, cfg.Run.Frames)
	d := sim.New(grid, rec, sim.FixedClock(cfg.Run.Dt))
	d.SetLogger(logger)
	d.SetMaxFrameTime(cfg.MaxFrameTime)

	order := metrics.NewPhaseOrder(cfg.Run.Frames)
	d.AddMetric(order)
	d.AddMetric(metrics.NewMeanAbsSpeed())
	d.AddMetric(metrics.NewSpeedSpread())
	d.AddMetric(metrics.NewPolarity())

	ctx, cancel := signalContext()
	defer cancel()

	res, err := d.Run(ctx, sim.NewFrameLimit(cfg.Run.Frames))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "frames\t%d\n", res.Frames)
	fmt.Fprintf(w, "sim_time\t%.2fs\n", res.SimTime)
	fmt.Fprintf(w, "clamped\t%d\n", res.Clamped)
	for _, m := range []string{"phase_order", "mean_abs_speed", "speed_spread", "polarity"} {
		fmt.Fprintf(w, "%s\t%.4f\n", m, res.Metrics[m])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if svgOut != "" {
		if err := os.WriteFile(svgOut, []byte(export.GridToSVG(grid, cfg.Layout())), 0644); err != nil {
			return err
		}
		logger.Info("frame written", "path", svgOut)
	}

	if hist := order.History(); len(hist) > 1 {
		graph := asciigraph.Plot(hist,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("phase order"),
		)
		fmt.Println()
		fmt.Println(graph)
	}

	speeds := rec.Speeds()
	if len(speeds) == 0 {
		return nil
	}
	fmt.Printf("\nprobe (%d,%d): speed %.4f turn/s", px, py, speeds[len(speeds)-1]/dynamo.TwoPi)
	// Stalled frames are clamped, so samples are spaced by the simulated
	// frame time rather than the requested dt.
	hz, err := analysis.DominantFrequency(rec.Signal(), res.MeanFrameTime())
	if errors.Is(err, analysis.ErrTooShort) {
		fmt.Println()
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Printf(", dominant frequency %.4f Hz\n", hz)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRID\tINIT\tSEED\tFRAMES")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		gw, gh := cfg.Layout().Dims()
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%d\t%d\n", name, gw, gh, cfg.Init, cfg.Seed, cfg.Run.Frames)
	}
	return w.Flush()
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
