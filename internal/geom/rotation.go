package geom

import (
	"encoding/json"
	"math"
)

// gimbalLimit is how close |sin(yaw)| may come to 1 before the decomposition
// treats pitch and roll as one degree of freedom.
const gimbalLimit = 1 - 1e-12

// Rotation holds Euler angles about x (pitch), y (yaw) and z (roll). Pitch is
// applied first, then yaw, then roll, all in the left-handed frame.
type Rotation struct {
	pitch, yaw, roll Angle
}

func NewRotation(pitch, yaw, roll Angle) Rotation {
	return Rotation{pitch: pitch, yaw: yaw, roll: roll}
}

// RotationOf builds a rotation from three values in the same unit.
func RotationOf(pitch, yaw, roll float64, unit Unit) (Rotation, error) {
	var r Rotation
	if err := r.pitch.Set(pitch, unit); err != nil {
		return Rotation{}, err
	}
	if err := r.yaw.Set(yaw, unit); err != nil {
		return Rotation{}, err
	}
	if err := r.roll.Set(roll, unit); err != nil {
		return Rotation{}, err
	}
	return r, nil
}

func (r Rotation) Pitch() Angle { return r.pitch }
func (r Rotation) Yaw() Angle   { return r.yaw }
func (r Rotation) Roll() Angle  { return r.roll }

func (r Rotation) WithPitch(a Angle) Rotation { r.pitch = a; return r }
func (r Rotation) WithYaw(a Angle) Rotation   { r.yaw = a; return r }
func (r Rotation) WithRoll(a Angle) Rotation  { r.roll = a; return r }

// Matrix is roll * yaw * pitch multiplied out. Each factor is the
// right-handed axis matrix of the negated angle, which leaves the sine terms
// with flipped signs compared to textbook tables.
func (r Rotation) Matrix() Matrix3 {
	sx, cx := math.Sincos(r.pitch.Radians())
	sy, cy := math.Sincos(r.yaw.Radians())
	sz, cz := math.Sincos(r.roll.Radians())
	return Mat3([3][3]float64{
		{cy * cz, cz*sx*sy + cx*sz, sx*sz - cx*cz*sy},
		{-cy * sz, cx*cz - sx*sy*sz, cz*sx + cx*sy*sz},
		{sy, -cy * sx, cx * cy},
	})
}

// RotationFromMatrix recovers Euler angles from a rotation matrix. Yaw lies in
// [-π/2, π/2]. At gimbal lock pitch is reported as 0 and roll absorbs the
// combined turn.
func RotationFromMatrix(m Matrix3) Rotation {
	s := max(-1, min(1, m.e[2][0]))
	yaw := math.Asin(s)
	if math.Abs(s) > gimbalLimit {
		return Rotation{
			yaw:  Rad(yaw),
			roll: Rad(math.Atan2(m.e[0][1], m.e[1][1])),
		}
	}
	return Rotation{
		pitch: Rad(math.Atan2(-m.e[2][1], m.e[2][2])),
		yaw:   Rad(yaw),
		roll:  Rad(math.Atan2(-m.e[1][0], m.e[0][0])),
	}
}

// Add sums the angles component-wise. This is not composition of rotations.
func (r Rotation) Add(o Rotation) Rotation {
	return Rotation{
		pitch: r.pitch.Add(o.pitch),
		yaw:   r.yaw.Add(o.yaw),
		roll:  r.roll.Add(o.roll),
	}
}

func (r Rotation) Mod(m Angle) Rotation {
	return Rotation{pitch: r.pitch.Mod(m), yaw: r.yaw.Mod(m), roll: r.roll.Mod(m)}
}

func (r Rotation) Wrap() Rotation {
	return r.Mod(Turn(1))
}

// Equal compares the angles within Epsilon. Two triples describing the same
// matrix are not necessarily equal; compare orientations for that.
func (r Rotation) Equal(o Rotation) bool {
	return r.pitch.ApproxEqual(o.pitch, Epsilon) &&
		r.yaw.ApproxEqual(o.yaw, Epsilon) &&
		r.roll.ApproxEqual(o.roll, Epsilon)
}

func (r Rotation) Inspect(debug bool) map[string]any {
	out := map[string]any{
		"pitch": r.pitch,
		"yaw":   r.yaw,
		"roll":  r.roll,
	}
	if debug {
		out["debug"] = map[string]any{
			"matrix": r.Matrix(),
		}
	}
	return out
}

func (r Rotation) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Inspect(false))
}
