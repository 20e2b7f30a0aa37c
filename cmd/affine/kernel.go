package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/affine/internal/geom"
	"github.com/san-kum/affine/internal/probe"
)

func convertAngle(cmd *cobra.Command, args []string) error {
	unit, err := geom.ParseUnit(unitName)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid angle %q: %w", args[0], err)
	}
	a, err := geom.NewAngle(v, unit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "UNIT\tVALUE\tWRAPPED")
	for _, u := range []geom.Unit{geom.Turns, geom.Radians, geom.Degrees, geom.Gradians} {
		val, _ := a.In(u)
		wrapped, _ := a.Wrap().In(u)
		fmt.Fprintf(w, "%s\t%.6g\t%.6g\n", u, val, wrapped)
	}
	return w.Flush()
}

func parseRotation(args []string) (geom.Rotation, error) {
	unit, err := geom.ParseUnit(unitName)
	if err != nil {
		return geom.Rotation{}, err
	}
	var v [3]float64
	for i, s := range args {
		if v[i], err = strconv.ParseFloat(s, 64); err != nil {
			return geom.Rotation{}, fmt.Errorf("invalid angle %q: %w", s, err)
		}
	}
	return geom.RotationOf(v[0], v[1], v[2], unit)
}

func showRotation(cmd *cobra.Command, args []string) error {
	r, err := parseRotation(args)
	if err != nil {
		return err
	}
	return printJSON(geom.NewOrientation(r).Inspect(true))
}

func flipRotation(cmd *cobra.Command, args []string) error {
	r, err := parseRotation(args)
	if err != nil {
		return err
	}
	flipped := geom.NewOrientation(r).Flip().Rotation()
	unit, _ := geom.ParseUnit(unitName)
	p, _ := flipped.Pitch().In(unit)
	y, _ := flipped.Yaw().In(unit)
	rl, _ := flipped.Roll().In(unit)
	fmt.Printf("pitch=%.6g yaw=%.6g roll=%.6g (%s)\n", p, y, rl, unit)
	return nil
}

func inspectScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(args[0])
	if err != nil {
		return err
	}
	scene, err := cfg.Scene()
	if err != nil {
		return err
	}

	out := make(map[string]any, len(scene.Targets))
	for _, t := range scene.Targets {
		switch t := t.(type) {
		case probe.Rect:
			out[t.Label] = t.Shape.Inspect(debug)
		case probe.Box:
			out[t.Label] = t.Shape.Inspect(debug)
		}
	}
	return printJSON(out)
}

func intersectScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(args[0])
	if err != nil {
		return err
	}
	scene, err := cfg.Scene()
	if err != nil {
		return err
	}
	if len(origin) != 3 || len(dir) != 3 {
		return fmt.Errorf("origin and dir need three values")
	}

	ray := geom.Ray{Origin: geom.Pt3(origin[0], origin[1], origin[2]), Direction: geom.Vec3(dir[0], dir[1], dir[2])}
	hit, err := probe.NewCaster(scene.Targets, probe.WithLogger(log)).Nearest(ray)
	if err != nil {
		return err
	}
	if hit == nil {
		fmt.Println("miss")
		return nil
	}
	fmt.Printf("hit %s at %v, distance %.6g\n", hit.Target, hit.Point, hit.Distance)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
