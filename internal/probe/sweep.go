package probe

import (
	"errors"

	"github.com/san-kum/affine/internal/geom"
)

// ErrSweepCount indicates a sweep with fewer than one ray.
var ErrSweepCount = errors.New("probe: sweep needs at least one ray")

// Sweep fans rays out from Origin by yawing Direction across Span, centred on
// Direction itself. Pitch tilts the whole fan.
type Sweep struct {
	Origin    geom.Point3
	Direction geom.Vector3
	Span      geom.Angle
	Pitch     geom.Angle
	Count     int
}

// Rays returns Count rays, the first at -Span/2 and the last at +Span/2. A
// single ray points along Direction.
func (s Sweep) Rays() ([]geom.Ray, error) {
	if s.Count < 1 {
		return nil, ErrSweepCount
	}
	rays := make([]geom.Ray, s.Count)
	for i := range rays {
		rays[i] = geom.Ray{Origin: s.Origin, Direction: s.rotation(i).Matrix().MulVec(s.Direction)}
	}
	return rays, nil
}

// Yaw is the yaw offset of ray i.
func (s Sweep) Yaw(i int) geom.Angle {
	if s.Count == 1 {
		return geom.Rad(0)
	}
	step := s.Span.Div(float64(s.Count - 1))
	return s.Span.Div(-2).Add(step.Mul(float64(i)))
}

func (s Sweep) rotation(i int) geom.Rotation {
	return geom.NewRotation(s.Pitch, s.Yaw(i), geom.Rad(0))
}
