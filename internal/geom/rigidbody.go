package geom

import "encoding/json"

// Rigidbody places an orientation at a position. Its matrix maps local
// coordinates to world coordinates by rotating first and translating second.
type Rigidbody struct {
	position    Vector3
	orientation Orientation
}

func NewRigidbody(position Vector3, orientation Orientation) Rigidbody {
	return Rigidbody{position: position, orientation: orientation}
}

func (b Rigidbody) Position() Vector3        { return b.position }
func (b Rigidbody) Orientation() Orientation { return b.orientation }

func (b Rigidbody) WithPosition(p Vector3) Rigidbody {
	b.position = p
	return b
}

func (b Rigidbody) WithOrientation(o Orientation) Rigidbody {
	b.orientation = o
	return b
}

func (b Rigidbody) Translate(delta Vector3) Rigidbody {
	b.position = b.position.Add(delta)
	return b
}

func (b Rigidbody) Matrix() Matrix4 {
	return TranslationMatrix3(b.position).Mul(Resize[D4](b.orientation.Matrix()))
}

// Transform maps a local point to world space.
func (b Rigidbody) Transform(p Point3) Point3 {
	return b.orientation.Matrix().MulPoint(p).Translate(b.position)
}

func (b Rigidbody) Right() UnitVector3   { return b.orientation.Right() }
func (b Rigidbody) Up() UnitVector3      { return b.orientation.Up() }
func (b Rigidbody) Forward() UnitVector3 { return b.orientation.Forward() }

func (b Rigidbody) Equal(o Rigidbody) bool {
	return b.position.Equal(o.position) && b.orientation.Equal(o.orientation)
}

func (b Rigidbody) Inspect(debug bool) map[string]any {
	out := map[string]any{
		"position":    b.position,
		"orientation": b.orientation.Inspect(debug),
	}
	if debug {
		out["debug"] = map[string]any{
			"matrix": b.Matrix(),
		}
	}
	return out
}

func (b Rigidbody) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Inspect(false))
}

// Compose chains a child's local matrix under its parent's world matrix.
func Compose(parentWorld, local Matrix4) Matrix4 {
	return parentWorld.Mul(local)
}
