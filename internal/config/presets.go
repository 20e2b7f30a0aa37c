package config

import "sort"

var Presets = map[string]*Config{
	"corridor": {
		Unit: "degrees", Theme: "ocean",
		Camera: CameraConfig{Position: []float64{0, 1, -6}, Zoom: 1},
		Targets: []TargetConfig{
			{Name: "left", Kind: "rectangle", Position: []float64{-2, 1, 5}, Rotation: RotationConfig{Yaw: 90}, Width: 10, Height: 2},
			{Name: "right", Kind: "rectangle", Position: []float64{2, 1, 5}, Rotation: RotationConfig{Yaw: -90}, Width: 10, Height: 2},
			{Name: "floor", Kind: "rectangle", Position: []float64{0, 0, 5}, Rotation: RotationConfig{Pitch: 90}, Width: 4, Height: 10},
			{Name: "end", Kind: "rectangle", Position: []float64{0, 1, 10}, Width: 4, Height: 2},
		},
		Sweep: SweepConfig{Origin: []float64{0, 1, 0}, Direction: []float64{0, 0, 1}, Span: 120, Count: 41},
	},
	"cube": {
		Unit: "degrees", Theme: "cyberpunk",
		Camera: CameraConfig{Position: []float64{3, 3, -6}, Rotation: RotationConfig{Pitch: -20, Yaw: -25}, Zoom: 1},
		Targets: []TargetConfig{
			{Name: "cube", Kind: "cuboid", Position: []float64{0, 0, 4}, Rotation: RotationConfig{Yaw: 30}, Width: 2, Height: 2, Depth: 2},
		},
		Rays: []RayConfig{
			{Origin: []float64{0, 0, 0}, Direction: []float64{0, 0, 1}},
			{Origin: []float64{0, 5, 4}, Direction: []float64{0, -1, 0}},
			{Origin: []float64{-5, 0.5, 4}, Direction: []float64{1, 0, 0}},
		},
		Sweep: SweepConfig{Origin: []float64{0, 0, 0}, Direction: []float64{0, 0, 1}, Span: 60, Count: 25},
	},
	"billboard": {
		Unit: "degrees", Theme: "retro",
		Camera: CameraConfig{Position: []float64{0, 2, -8}, Zoom: 1},
		Targets: []TargetConfig{
			{Name: "board", Kind: "rectangle", Position: []float64{0, 2, 6}, Rotation: RotationConfig{Pitch: -15, Roll: 10}, Width: 6, Height: 3},
			{Name: "post", Kind: "cuboid", Position: []float64{0, 0, 6.5}, Width: 0.4, Height: 1, Depth: 0.4},
		},
		Sweep: SweepConfig{Origin: []float64{0, 2, 0}, Direction: []float64{0, 0, 1}, Span: 70, Pitch: -5, Count: 33},
	},
}

// GetPreset returns a copy of the named preset so callers may edit it.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	c.Targets = append([]TargetConfig(nil), cfg.Targets...)
	c.Rays = append([]RayConfig(nil), cfg.Rays...)
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
