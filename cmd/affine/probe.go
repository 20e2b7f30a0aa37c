package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/affine/internal/config"
	"github.com/san-kum/affine/internal/export"
	"github.com/san-kum/affine/internal/geom"
	"github.com/san-kum/affine/internal/logging"
	"github.com/san-kum/affine/internal/probe"
	"github.com/san-kum/affine/internal/storage"
	"github.com/san-kum/affine/internal/tui"
	"github.com/san-kum/affine/internal/viz"
)

// sceneRays lists the explicit rays of a scene followed by its sweep, with
// the source of each.
func sceneRays(scene *config.Scene) ([]geom.Ray, []string, error) {
	rays := append([]geom.Ray(nil), scene.Rays...)
	sources := make([]string, len(rays), len(rays)+scene.Sweep.Count)
	for i := range sources {
		sources[i] = "ray"
	}
	if scene.Sweep.Count > 0 {
		sweep, err := scene.Sweep.Rays()
		if err != nil {
			return nil, nil, err
		}
		rays = append(rays, sweep...)
		for range sweep {
			sources = append(sources, "sweep")
		}
	}
	return rays, sources, nil
}

func castScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(args[0])
	if err != nil {
		return err
	}
	scene, err := cfg.Scene()
	if err != nil {
		return err
	}
	n := workers
	if n == 0 {
		n = cfg.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rays, sources, err := sceneRays(scene)
	if err != nil {
		return err
	}
	results, err := probe.NewCaster(scene.Targets, probe.WithWorkers(n), probe.WithLogger(log)).Cast(ctx, rays)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSOURCE\tORIGIN\tDIRECTION\tTARGET\tPOINT\tDISTANCE")
	for i, r := range results {
		if r.Hit == nil {
			fmt.Fprintf(w, "%d\t%s\t%v\t%v\t-\t-\t-\n", i, sources[i], r.Ray.Origin, r.Ray.Direction)
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%v\t%v\t%s\t%v\t%.4f\n", i, sources[i], r.Ray.Origin, r.Ray.Direction, r.Hit.Target, r.Hit.Point, r.Hit.Distance)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d/%d rays hit\n", probe.CountHits(results), len(results))

	if !save {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(args[0], scene.Targets, results)
	if err != nil {
		return err
	}
	log.Info("run saved", logging.String("id", runID), logging.String("dir", dataDir))
	fmt.Printf("run id: %s\n", runID)
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
	fmt.Fprintln(w, "ID\tSCENE\tTIME\tRAYS\tHITS\tMEAN")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.3f\n",
			run.ID,
			run.Scene,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Rays,
			run.Hits,
			run.Metrics["mean_distance"],
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	hits := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Hit != nil {
			hits = append(hits, r.Hit.Distance)
		}
	}
	if len(hits) == 0 {
		return fmt.Errorf("no hits to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scene: %s\n", meta.Scene)
	fmt.Printf("hits: %d/%d\n\n", meta.Hits, meta.Rays)
	fmt.Println(asciigraph.Plot(hits,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("hit distance by ray"),
	))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	results, err := st.LoadResults(args[0])
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		return storage.WriteJSON(out, *meta, results)
	case "csv":
		return storage.WriteHits(out, results)
	case "svg":
		var targets []probe.Target
		if sceneArg != "" {
			cfg, err := loadScene(sceneArg)
			if err != nil {
				return err
			}
			scene, err := cfg.Scene()
			if err != nil {
				return err
			}
			targets = scene.Targets
		}
		_, err := io.WriteString(out, export.SceneToSVG(targets, results, 800, 800, 30, viz.CurrentTheme))
		return err
	case "profile":
		_, err := io.WriteString(out, export.ProfileToSVG(probe.Distances(results), 800, 300, viz.CurrentTheme))
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func viewScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(args[0])
	if err != nil {
		return err
	}
	scene, err := cfg.Scene()
	if err != nil {
		return err
	}
	viz.SetTheme(cfg.Theme)
	cam := viz.NewCamera(scene.Camera)
	cam.Zoom = scene.Zoom

	if !plain {
		return viz.Run(viz.NewModel(scene.Targets, scene.Sweep, cam, viz.WithWorkers(cfg.Workers), viz.WithModelLogger(log)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var results []probe.Result
	if rays, err := scene.Sweep.Rays(); err == nil && len(scene.Targets) > 0 {
		if results, err = probe.NewCaster(scene.Targets, probe.WithWorkers(cfg.Workers)).Cast(ctx, rays); err != nil {
			return err
		}
	}

	r := tui.NewLiveRenderer(os.Stdout, args[0], frameRate, cam)
	r.Start()
	defer r.Stop()
	tick := time.NewTicker(time.Second / time.Duration(max(frameRate, 1)))
	defer tick.Stop()
	for drawn := 0; drawn < frames; {
		select {
		case <-ctx.Done():
			return nil
		case <-tick.C:
			if r.Frame(scene.Targets, results) {
				drawn++
			}
		}
	}
	return nil
}

func benchScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(args[0])
	if err != nil {
		return err
	}
	scene, err := cfg.Scene()
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %s (%d targets)\n\n", args[0], len(scene.Targets))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RAYS\tWORKERS\tHITS\tTIME\tRAYS/SEC")

	for _, count := range rayCounts {
		sweep := scene.Sweep
		sweep.Count = count
		rays, err := sweep.Rays()
		if err != nil {
			return err
		}
		for _, n := range []int{1, 2, 4, 8} {
			c := probe.NewCaster(scene.Targets, probe.WithWorkers(n))
			start := time.Now()
			results, err := c.Cast(context.Background(), rays)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)
			fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%.0f\n",
				count, n, probe.CountHits(results), elapsed, float64(count)/elapsed.Seconds())
		}
	}
	return w.Flush()
}
