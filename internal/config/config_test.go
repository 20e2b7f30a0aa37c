package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/san-kum/affine/internal/geom"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Unit != "degrees" {
		t.Errorf("expected unit degrees, got %s", cfg.Unit)
	}
	if cfg.Sweep.Count <= 0 {
		t.Error("sweep count should be positive")
	}
	if cfg.Camera.Zoom <= 0 {
		t.Error("zoom should be positive")
	}
}

func TestDefaultScene(t *testing.T) {
	s, err := DefaultConfig().Scene()
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	if len(s.Targets) != 0 {
		t.Errorf("expected no targets, got %d", len(s.Targets))
	}
	if !s.Camera.Position().Equal(geom.Vec3(0, 2, -8)) {
		t.Errorf("camera position = %v", s.Camera.Position())
	}
	rays, err := s.Sweep.Rays()
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if len(rays) != DefaultSweepCount {
		t.Errorf("expected %d rays, got %d", DefaultSweepCount, len(rays))
	}
}

func TestSceneTargets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Targets = []TargetConfig{
		{Name: "wall", Kind: "rectangle", Position: []float64{0, 0, 5}, Rotation: RotationConfig{Yaw: 90}, Width: 2, Height: 0.5},
		{Kind: "cuboid", Width: 1, Height: 2, Depth: 3},
	}
	s, err := cfg.Scene()
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	if len(s.Targets) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(s.Targets))
	}
	if s.Targets[0].Name() != "wall" {
		t.Errorf("expected wall, got %s", s.Targets[0].Name())
	}
	if s.Targets[1].Name() != "targets[1]" {
		t.Errorf("unnamed target should use its field, got %s", s.Targets[1].Name())
	}

	// degrees are honoured: a 90 degree yaw swings the local x axis onto z
	rect := s.Targets[0]
	hit, ok := rect.Intersect(geom.Ray{Origin: geom.Pt3(-5, 0, 5), Direction: geom.Vec3(1, 0, 0)})
	if !ok {
		t.Fatal("expected the yawed wall to face the x axis")
	}
	if !hit.Equal(geom.Pt3(0, 0, 5)) {
		t.Errorf("hit = %v", hit)
	}
}

func TestSceneRays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rays = []RayConfig{{Origin: []float64{1, 2, 3}, Direction: []float64{0, 0, 1}}}
	s, err := cfg.Scene()
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	if len(s.Rays) != 1 || !s.Rays[0].Origin.Equal(geom.Pt3(1, 2, 3)) {
		t.Errorf("rays = %v", s.Rays)
	}
}

func TestSceneErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
		target error
	}{
		{"bad unit", func(c *Config) { c.Unit = "parsecs" }, "unit", geom.ErrInvalidUnit},
		{"short position", func(c *Config) { c.Camera.Position = []float64{1, 2} }, "camera.position", ErrVectorLength},
		{"bad kind", func(c *Config) { c.Targets = []TargetConfig{{Kind: "sphere"}} }, "targets[0].kind", ErrTargetKind},
		{"long direction", func(c *Config) { c.Rays = []RayConfig{{Direction: []float64{1, 0, 0, 0}}} }, "rays[0].direction", ErrVectorLength},
		{"sweep origin", func(c *Config) { c.Sweep.Origin = []float64{0} }, "sweep.origin", ErrVectorLength},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		_, err := cfg.Scene()
		if !errors.Is(err, tt.target) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.target, err)
			continue
		}
		var fe *FieldError
		if !errors.As(err, &fe) {
			t.Errorf("%s: expected a FieldError, got %T", tt.name, err)
			continue
		}
		if fe.Field != tt.field {
			t.Errorf("%s: expected field %s, got %s", tt.name, tt.field, fe.Field)
		}
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	cfg := GetPreset("cube")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Targets) != len(cfg.Targets) {
		t.Fatalf("expected %d targets, got %d", len(cfg.Targets), len(loaded.Targets))
	}
	if loaded.Targets[0].Rotation.Yaw != 30 {
		t.Errorf("expected yaw 30, got %f", loaded.Targets[0].Rotation.Yaw)
	}
	if len(loaded.Rays) != 3 {
		t.Errorf("expected 3 rays, got %d", len(loaded.Rays))
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("cube")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Targets[0].Kind != "cuboid" {
		t.Errorf("expected cuboid, got %s", cfg.Targets[0].Kind)
	}

	cfg.Targets[0].Name = "edited"
	if Presets["cube"].Targets[0].Name != "cube" {
		t.Error("editing a preset copy changed the preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetScenes(t *testing.T) {
	names := ListPresets()
	if len(names) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(names))
	}
	for _, name := range names {
		s, err := GetPreset(name).Scene()
		if err != nil {
			t.Errorf("preset %s: %v", name, err)
			continue
		}
		if len(s.Targets) == 0 {
			t.Errorf("preset %s has no targets", name)
		}
	}
}
