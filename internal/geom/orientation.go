package geom

import "encoding/json"

// Orientation is a rotation seen as a local frame. Its basis vectors are the
// images of the world axes.
type Orientation struct {
	rotation Rotation
}

func NewOrientation(r Rotation) Orientation {
	return Orientation{rotation: r}
}

// OrientationFromMatrix decomposes m, which must be orthonormal.
func OrientationFromMatrix(m Matrix3) Orientation {
	return Orientation{rotation: RotationFromMatrix(m)}
}

func (o Orientation) Rotation() Rotation { return o.rotation }
func (o Orientation) Matrix() Matrix3    { return o.rotation.Matrix() }

func (o Orientation) WithRotation(r Rotation) Orientation {
	return Orientation{rotation: r}
}

func (o Orientation) Right() UnitVector3 {
	return NewUnitVector(o.Matrix().MulVec(WorldRight.Vector()))
}

func (o Orientation) Up() UnitVector3 {
	return NewUnitVector(o.Matrix().MulVec(WorldUp.Vector()))
}

func (o Orientation) Forward() UnitVector3 {
	return NewUnitVector(o.Matrix().MulVec(WorldForward.Vector()))
}

// Flip turns half a revolution about the world up axis. Flipping twice gives
// back an equal orientation.
func (o Orientation) Flip() Orientation {
	return o.FlipAbout(WorldUp)
}

// FlipAbout turns half a revolution about a world-space axis.
func (o Orientation) FlipAbout(axis UnitVector3) Orientation {
	return o.Turn(AxisRotation(Rad(Pi), axis))
}

// Turn applies a rotation given in world space.
func (o Orientation) Turn(world Matrix3) Orientation {
	return OrientationFromMatrix(world.Mul(o.Matrix()))
}

// Rotate applies a rotation given in the local frame, so AxisRotation about
// WorldUp spins around o.Up().
func (o Orientation) Rotate(local Matrix3) Orientation {
	return OrientationFromMatrix(o.Matrix().Mul(local))
}

// Equal compares rotation matrices, so Euler triples that coincide after
// gimbal lock or wrapping are equal.
func (o Orientation) Equal(p Orientation) bool {
	return o.Matrix().Equal(p.Matrix())
}

func (o Orientation) Inspect(debug bool) map[string]any {
	out := map[string]any{
		"rotation": o.rotation.Inspect(debug),
	}
	if debug {
		out["debug"] = map[string]any{
			"right":   o.Right(),
			"up":      o.Up(),
			"forward": o.Forward(),
		}
	}
	return out
}

func (o Orientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Inspect(false))
}
