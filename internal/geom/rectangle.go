package geom

import "encoding/json"

// Rectangle is a width x height quad centred on its rigidbody and lying in
// the plane spanned by the rigidbody's right and up axes. Corners are derived
// on construction; every With method rebuilds them.
type Rectangle struct {
	body          Rigidbody
	width, height float64

	topLeft, topRight, botLeft, botRight Point3
}

func NewRectangle(body Rigidbody, width, height float64) Rectangle {
	r := Rectangle{body: body, width: width, height: height}
	r.corners()
	return r
}

// DefaultRectangle is a 1x1 rectangle at the origin facing WorldForward.
func DefaultRectangle() Rectangle {
	return NewRectangle(Rigidbody{}, 1, 1)
}

func (r *Rectangle) corners() {
	m := r.body.Matrix()
	x := WorldRight.Scale(r.width / 2)
	y := WorldUp.Scale(r.height / 2)
	at := func(v Vector3) Point3 {
		return Truncate(m.MulVec(Extend(v, 1))).Point()
	}
	r.topLeft = at(x.Add(y))
	r.topRight = at(y.Sub(x))
	r.botLeft = at(x.Sub(y))
	r.botRight = at(x.Add(y).Neg())
}

func (r Rectangle) Rigidbody() Rigidbody { return r.body }
func (r Rectangle) Width() float64       { return r.width }
func (r Rectangle) Height() float64      { return r.height }

func (r Rectangle) TopLeft() Point3  { return r.topLeft }
func (r Rectangle) TopRight() Point3 { return r.topRight }
func (r Rectangle) BotLeft() Point3  { return r.botLeft }
func (r Rectangle) BotRight() Point3 { return r.botRight }

// Corners lists topleft, topright, botright and botleft, the order of a
// closed outline.
func (r Rectangle) Corners() [4]Point3 {
	return [4]Point3{r.topLeft, r.topRight, r.botRight, r.botLeft}
}

func (r Rectangle) Center() Point3 {
	return r.body.Position().Point()
}

func (r Rectangle) WithRigidbody(b Rigidbody) Rectangle {
	return NewRectangle(b, r.width, r.height)
}

func (r Rectangle) WithSize(width, height float64) Rectangle {
	return NewRectangle(r.body, width, height)
}

// Plane is the infinite plane through the rectangle.
func (r Rectangle) Plane() Plane {
	return Plane{Point: r.botLeft, Normal: r.body.Forward()}
}

func (r Rectangle) Equal(o Rectangle) bool {
	return r.body.Equal(o.body) && r.width == o.width && r.height == o.height
}

func (r Rectangle) Inspect(debug bool) map[string]any {
	out := map[string]any{
		"rigidbody": r.body.Inspect(debug),
		"width":     r.width,
		"height":    r.height,
	}
	if debug {
		out["debug"] = map[string]any{
			"topleft":  r.topLeft,
			"topright": r.topRight,
			"botleft":  r.botLeft,
			"botright": r.botRight,
		}
	}
	return out
}

func (r Rectangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Inspect(false))
}

// Plane is an infinite plane through Point with unit Normal.
type Plane struct {
	Point  Point3      `json:"point"`
	Normal UnitVector3 `json:"normal"`
}

// DefaultPlane is the ground plane through the origin.
func DefaultPlane() Plane {
	return Plane{Normal: WorldUp}
}

// Distance is the signed distance of p along the normal.
func (p Plane) Distance(q Point3) float64 {
	return p.Normal.Vector().Dot(q.Sub(p.Point))
}
