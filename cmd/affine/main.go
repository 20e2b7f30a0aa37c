package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/affine/internal/config"
	"github.com/san-kum/affine/internal/logging"
	"github.com/san-kum/affine/internal/tui"
)

var (
	dataDir  string
	logLevel string
	logJSON  bool
	unitName string
	debug    bool
	workers  int
	save     bool
	origin   []float64
	dir      []float64
	format   string
	outPath  string
	sceneArg string
	plain    bool
	frames   int
	// Frame rate for the plain renderer
	frameRate int
	// Rays per sweep for bench
	rayCounts []int

	log = logging.Nop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "affine",
		Short: "affine geometry kernel and ray probe",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log = logging.New(level, logJSON)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make(map[string]*config.Config)
			for _, path := range args {
				cfg, err := config.Load(path)
				if err != nil {
					return fmt.Errorf("failed to load scene: %w", err)
				}
				files[path] = cfg
			}
			return tui.RunInteractive(files, log)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".affine", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as json")

	angleCmd := &cobra.Command{
		Use:   "angle [value]",
		Short: "convert an angle between units",
		Args:  cobra.ExactArgs(1),
		RunE:  convertAngle,
	}
	angleCmd.Flags().StringVar(&unitName, "unit", "degrees", "unit of the value")

	rotationCmd := &cobra.Command{
		Use:   "rotation [pitch] [yaw] [roll]",
		Short: "print the matrix and basis of a rotation",
		Args:  cobra.ExactArgs(3),
		RunE:  showRotation,
	}
	rotationCmd.Flags().StringVar(&unitName, "unit", "degrees", "angle unit")

	flipCmd := &cobra.Command{
		Use:   "flip [pitch] [yaw] [roll]",
		Short: "flip an orientation upside down about world up",
		Args:  cobra.ExactArgs(3),
		RunE:  flipRotation,
	}
	flipCmd.Flags().StringVar(&unitName, "unit", "degrees", "angle unit")

	inspectCmd := &cobra.Command{
		Use:   "inspect [scene]",
		Short: "dump the targets of a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectScene,
	}
	inspectCmd.Flags().BoolVar(&debug, "debug", false, "include matrices and corners")

	intersectCmd := &cobra.Command{
		Use:   "intersect [scene]",
		Short: "cast a single ray into a scene",
		Args:  cobra.ExactArgs(1),
		RunE:  intersectScene,
	}
	intersectCmd.Flags().Float64SliceVar(&origin, "origin", []float64{0, 0, 0}, "ray origin x,y,z")
	intersectCmd.Flags().Float64SliceVar(&dir, "dir", []float64{0, 0, 1}, "ray direction x,y,z")

	castCmd := &cobra.Command{
		Use:   "cast [scene]",
		Short: "cast the scene rays and sweep",
		Args:  cobra.ExactArgs(1),
		RunE:  castScene,
	}
	castCmd.Flags().IntVar(&workers, "workers", 0, "concurrent ray tests (0 uses the scene or GOMAXPROCS)")
	castCmd.Flags().BoolVar(&save, "save", false, "store the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot hit distances of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as json, csv or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&format, "format", "json", "json, csv, svg or profile")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&sceneArg, "scene", "", "scene to draw behind the rays (svg)")

	viewCmd := &cobra.Command{
		Use:   "view [scene]",
		Short: "view a scene in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  viewScene,
	}
	viewCmd.Flags().BoolVar(&plain, "plain", false, "print frames instead of the full screen viewer")
	viewCmd.Flags().IntVar(&frames, "frames", 120, "frames to print (plain)")
	viewCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate (plain)")

	benchCmd := &cobra.Command{
		Use:   "bench [scene]",
		Short: "benchmark ray casting",
		Args:  cobra.ExactArgs(1),
		RunE:  benchScene,
	}
	benchCmd.Flags().IntSliceVar(&rayCounts, "rays", []int{100, 1000, 10000}, "sweep sizes")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenes",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("  %-10s %d targets, %d rays, sweep of %d\n", name, len(cfg.Targets), len(cfg.Rays), cfg.Sweep.Count)
			}
			return nil
		},
	}

	rootCmd.AddCommand(angleCmd, rotationCmd, flipCmd, inspectCmd, intersectCmd, castCmd, listCmd, plotCmd, exportCmd, viewCmd, benchCmd, presetsCmd)

	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// loadScene accepts a preset name or a yaml path.
func loadScene(arg string) (*config.Config, error) {
	if cfg := config.GetPreset(arg); cfg != nil {
		return cfg, nil
	}
	cfg, err := config.Load(arg)
	if err != nil {
		return nil, fmt.Errorf("unknown scene %q (presets: %v): %w", arg, config.ListPresets(), err)
	}
	return cfg, nil
}
