package geom

import "encoding/json"

// Face names one side of a Cuboid.
type Face int

const (
	FaceFront Face = iota
	FaceBack
	FaceLeft
	FaceRight
	FaceBottom
	FaceTop
)

var faceNames = [...]string{"front", "back", "left", "right", "bottom", "top"}

func (f Face) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return "face(?)"
	}
	return faceNames[f]
}

// Cuboid is a box centred on its rigidbody. Width runs along right, height
// along up and depth along forward.
type Cuboid struct {
	body                 Rigidbody
	width, height, depth float64
}

func NewCuboid(body Rigidbody, width, height, depth float64) Cuboid {
	return Cuboid{body: body, width: width, height: height, depth: depth}
}

// DefaultCuboid is the unit cube at the origin.
func DefaultCuboid() Cuboid {
	return NewCuboid(Rigidbody{}, 1, 1, 1)
}

func (c Cuboid) Rigidbody() Rigidbody { return c.body }
func (c Cuboid) Width() float64       { return c.width }
func (c Cuboid) Height() float64      { return c.height }
func (c Cuboid) Depth() float64       { return c.depth }

func (c Cuboid) WithRigidbody(b Rigidbody) Cuboid {
	c.body = b
	return c
}

// Face builds the rectangle of one side. Its forward axis points out of the
// box.
func (c Cuboid) Face(f Face) Rectangle {
	var (
		turn          Matrix3
		extent        float64
		width, height float64
	)
	switch f {
	case FaceFront:
		turn, extent, width, height = Identity[D3](), c.depth, c.width, c.height
	case FaceBack:
		turn, extent, width, height = AxisRotation(Rad(Pi), WorldUp), c.depth, c.width, c.height
	case FaceLeft:
		turn, extent, width, height = AxisRotation(Rad(Pi/2), WorldUp), c.width, c.depth, c.height
	case FaceRight:
		turn, extent, width, height = AxisRotation(Rad(-Pi/2), WorldUp), c.width, c.depth, c.height
	case FaceBottom:
		turn, extent, width, height = AxisRotation(Rad(-Pi/2), WorldRight), c.height, c.width, c.depth
	case FaceTop:
		turn, extent, width, height = AxisRotation(Rad(Pi/2), WorldRight), c.height, c.width, c.depth
	default:
		panic("geom: unknown cuboid face " + f.String())
	}
	o := c.body.Orientation().Rotate(turn)
	pos := c.body.Position().Add(o.Forward().Scale(extent / 2))
	return NewRectangle(NewRigidbody(pos, o), width, height)
}

func (c Cuboid) Front() Rectangle  { return c.Face(FaceFront) }
func (c Cuboid) Back() Rectangle   { return c.Face(FaceBack) }
func (c Cuboid) Left() Rectangle   { return c.Face(FaceLeft) }
func (c Cuboid) Right() Rectangle  { return c.Face(FaceRight) }
func (c Cuboid) Bottom() Rectangle { return c.Face(FaceBottom) }
func (c Cuboid) Top() Rectangle    { return c.Face(FaceTop) }

// Faces lists front, back, left, right, bottom and top.
func (c Cuboid) Faces() [6]Rectangle {
	var out [6]Rectangle
	for f := FaceFront; f <= FaceTop; f++ {
		out[f] = c.Face(f)
	}
	return out
}

func (c Cuboid) Inspect(debug bool) map[string]any {
	out := map[string]any{
		"rigidbody": c.body.Inspect(debug),
		"width":     c.width,
		"height":    c.height,
		"depth":     c.depth,
	}
	if debug {
		faces := map[string]any{}
		for f, r := range c.Faces() {
			faces[Face(f).String()] = r.Corners()
		}
		out["debug"] = map[string]any{"faces": faces}
	}
	return out
}

func (c Cuboid) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Inspect(false))
}
