package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/san-kum/clockgrid/internal/config"
	"github.com/san-kum/clockgrid/internal/dynamo"
	"github.com/san-kum/clockgrid/internal/logging"
)

const (
	envConfig   = "CLOCKGRID_CONFIG"
	envLogLevel = "CLOCKGRID_LOG_LEVEL"
)

var (
	configFile string
	preset     string
	logLevel   string
	seed       int64
	workers    int
	initMode   string
	// gui
	backend string
	fps     int
	// live
	theme string
	// run
	frames int
	dt     float64
	probe  string
	svgOut string

	logger = slog.New(slog.DiscardHandler)
)

func main() {
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:               "clockgrid",
		Short:             "grid of coupled clocks around two opposing pacemakers",
		PersistentPreRunE: setup,
		SilenceUsage:      true,
		RunE:              runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", os.Getenv(envConfig), "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&logLevel, "log-level", envOr(envLogLevel, ""), "log level: info, debug or trace")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.IntVar(&workers, "workers", 0, "goroutines per step (<= 1 is sequential)")
	pf.StringVar(&initMode, "init", "", "initial conditions: random or rest")
	rootCmd.Flags().StringVar(&backend, "backend", "raylib", "window backend: raylib or ebiten")
	rootCmd.Flags().IntVar(&fps, "fps", 0, "target frame rate")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run in a window until it is closed",
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&backend, "backend", "raylib", "window backend: raylib or ebiten")
	guiCmd.Flags().IntVar(&fps, "fps", 0, "target frame rate")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", "classic", "colour theme")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultRunFrames, "frames to simulate")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultRunDt, "seconds per frame")
	runCmd.Flags().StringVar(&probe, "probe", "0,0", "cell to trace as x,y")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the final frame to this svg file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective config as yaml",
		RunE:  printConfig,
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}
	atexit.Exit(0)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// setup builds the run-tagged logger. The config file's log level applies
// unless --log-level or the environment sets one.
func setup(cmd *cobra.Command, args []string) error {
	level := logLevel
	if level == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		level = cfg.LogLevel
	}

	var runID string
	logger, runID = logging.WithRun(logging.NewLogger(level, os.Stderr))

	start := time.Now()
	logger.Debug("command started", "command", cmd.Name(), "level", level)
	atexit.Register(func() {
		logger.Debug("command finished", "command", cmd.Name(), "run", runID, "elapsed", time.Since(start))
	})
	return nil
}

// loadConfig layers defaults, preset, config file and changed flags, in
// that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadInto(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("init") {
		cfg.Init = initMode
	}
	if flags.Changed("fps") {
		cfg.Screen.FPS = fps
	}
	if flags.Changed("frames") {
		cfg.Run.Frames = frames
	}
	if flags.Changed("dt") {
		cfg.Run.Dt = dt
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newGrid(cfg *config.Config) (*dynamo.Grid, error) {
	grid, err := dynamo.New(cfg.Params())
	if err != nil {
		return nil, err
	}
	w, h := grid.Dims()
	logger.Info("grid created", "width", w, "height", h, "seed", grid.Seed(), "init", cfg.Init)
	return grid, nil
}

func parseProbe(s string) (x, y int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("probe %q: want x,y", s)
	}
	if x, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("probe %q: %w", s, err)
	}
	if y, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("probe %q: %w", s, err)
	}
	return x, y, nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
