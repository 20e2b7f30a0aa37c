package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/affine/internal/geom"
	"github.com/san-kum/affine/internal/probe"
)

const (
	DefaultUnit       = "degrees"
	DefaultSweepSpan  = 90.0
	DefaultSweepCount = 32
	DefaultZoom       = 1.0
	DefaultTheme      = "cyberpunk"
)

var (
	// ErrTargetKind indicates a target kind other than rectangle or cuboid.
	ErrTargetKind = errors.New("config: unknown target kind")

	// ErrVectorLength indicates a coordinate list without exactly three values.
	ErrVectorLength = errors.New("config: expected three coordinates")
)

// FieldError reports which entry of the scene file is invalid.
type FieldError struct {
	Field   string
	Wrapped error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Wrapped)
}

func (e *FieldError) Unwrap() error {
	return e.Wrapped
}

// Config is a scene file: shapes to probe, rays to cast and a camera.
type Config struct {
	Unit    string         `yaml:"unit"`
	Workers int            `yaml:"workers"`
	Theme   string         `yaml:"theme"`
	Camera  CameraConfig   `yaml:"camera"`
	Targets []TargetConfig `yaml:"targets"`
	Rays    []RayConfig    `yaml:"rays"`
	Sweep   SweepConfig    `yaml:"sweep"`
}

// RotationConfig holds Euler angles in the scene's unit.
type RotationConfig struct {
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

type CameraConfig struct {
	Position []float64      `yaml:"position"`
	Rotation RotationConfig `yaml:"rotation"`
	Zoom     float64        `yaml:"zoom"`
}

// TargetConfig describes a rectangle (width, height) or a cuboid (width,
// height, depth).
type TargetConfig struct {
	Name     string         `yaml:"name"`
	Kind     string         `yaml:"kind"`
	Position []float64      `yaml:"position"`
	Rotation RotationConfig `yaml:"rotation"`
	Width    float64        `yaml:"width"`
	Height   float64        `yaml:"height"`
	Depth    float64        `yaml:"depth"`
}

type RayConfig struct {
	Origin    []float64 `yaml:"origin"`
	Direction []float64 `yaml:"direction"`
}

type SweepConfig struct {
	Origin    []float64 `yaml:"origin"`
	Direction []float64 `yaml:"direction"`
	Span      float64   `yaml:"span"`
	Pitch     float64   `yaml:"pitch"`
	Count     int       `yaml:"count"`
}

func DefaultConfig() *Config {
	return &Config{
		Unit:  DefaultUnit,
		Theme: DefaultTheme,
		Camera: CameraConfig{
			Position: []float64{0, 2, -8},
			Zoom:     DefaultZoom,
		},
		Sweep: SweepConfig{
			Origin:    []float64{0, 0, 0},
			Direction: []float64{0, 0, 1},
			Span:      DefaultSweepSpan,
			Count:     DefaultSweepCount,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Scene is a config turned into kernel values.
type Scene struct {
	Targets []probe.Target
	Rays    []geom.Ray
	Sweep   probe.Sweep
	Camera  geom.Rigidbody
	Zoom    float64
}

func (c *Config) Scene() (*Scene, error) {
	unit, err := geom.ParseUnit(c.Unit)
	if err != nil {
		return nil, &FieldError{Field: "unit", Wrapped: err}
	}

	s := &Scene{Zoom: c.Camera.Zoom}
	if s.Zoom <= 0 {
		s.Zoom = DefaultZoom
	}

	if s.Camera, err = body(c.Camera.Position, c.Camera.Rotation, unit, "camera"); err != nil {
		return nil, err
	}

	for i, t := range c.Targets {
		field := fmt.Sprintf("targets[%d]", i)
		target, err := t.target(unit, field)
		if err != nil {
			return nil, err
		}
		s.Targets = append(s.Targets, target)
	}

	for i, r := range c.Rays {
		field := fmt.Sprintf("rays[%d]", i)
		origin, err := vec3(r.Origin, field+".origin")
		if err != nil {
			return nil, err
		}
		dir, err := vec3(r.Direction, field+".direction")
		if err != nil {
			return nil, err
		}
		s.Rays = append(s.Rays, geom.Ray{Origin: origin.Point(), Direction: dir})
	}

	if s.Sweep, err = c.Sweep.sweep(unit); err != nil {
		return nil, err
	}
	return s, nil
}

func (t TargetConfig) target(unit geom.Unit, field string) (probe.Target, error) {
	b, err := body(t.Position, t.Rotation, unit, field)
	if err != nil {
		return nil, err
	}
	name := t.Name
	if name == "" {
		name = field
	}
	switch t.Kind {
	case "rectangle", "rect", "":
		return probe.Rect{Label: name, Shape: geom.NewRectangle(b, or(t.Width, 1), or(t.Height, 1))}, nil
	case "cuboid", "box":
		return probe.Box{Label: name, Shape: geom.NewCuboid(b, or(t.Width, 1), or(t.Height, 1), or(t.Depth, 1))}, nil
	}
	return nil, &FieldError{Field: field + ".kind", Wrapped: fmt.Errorf("%w %q", ErrTargetKind, t.Kind)}
}

func (s SweepConfig) sweep(unit geom.Unit) (probe.Sweep, error) {
	origin, err := vec3(s.Origin, "sweep.origin")
	if err != nil {
		return probe.Sweep{}, err
	}
	dir, err := vec3(s.Direction, "sweep.direction")
	if err != nil {
		return probe.Sweep{}, err
	}
	span, err := geom.NewAngle(s.Span, unit)
	if err != nil {
		return probe.Sweep{}, err
	}
	pitch, err := geom.NewAngle(s.Pitch, unit)
	if err != nil {
		return probe.Sweep{}, err
	}
	return probe.Sweep{Origin: origin.Point(), Direction: dir, Span: span, Pitch: pitch, Count: s.Count}, nil
}

func body(pos []float64, rot RotationConfig, unit geom.Unit, field string) (geom.Rigidbody, error) {
	p, err := vec3(pos, field+".position")
	if err != nil {
		return geom.Rigidbody{}, err
	}
	r, err := geom.RotationOf(rot.Pitch, rot.Yaw, rot.Roll, unit)
	if err != nil {
		return geom.Rigidbody{}, &FieldError{Field: field + ".rotation", Wrapped: err}
	}
	return geom.NewRigidbody(p, geom.NewOrientation(r)), nil
}

// vec3 treats a missing list as the zero vector.
func vec3(v []float64, field string) (geom.Vector3, error) {
	switch len(v) {
	case 0:
		return geom.Vector3{}, nil
	case 3:
		return geom.Vec3(v[0], v[1], v[2]), nil
	}
	return geom.Vector3{}, &FieldError{Field: field, Wrapped: ErrVectorLength}
}

func or(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
