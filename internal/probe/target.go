package probe

import "github.com/san-kum/affine/internal/geom"

// Target is a named shape rays can hit.
type Target interface {
	Name() string
	Intersect(ray geom.Ray) (geom.Point3, bool)
	// Edges outlines the shape, for drawing.
	Edges() []geom.Segment[geom.D3]
	Body() geom.Rigidbody
	// WithBody returns the same shape placed at b.
	WithBody(b geom.Rigidbody) Target
}

// Rect is a single oriented rectangle.
type Rect struct {
	Label string
	Shape geom.Rectangle
}

func (r Rect) Name() string { return r.Label }

func (r Rect) Intersect(ray geom.Ray) (geom.Point3, bool) {
	return geom.RayRectangleIntersection(ray, r.Shape)
}

func (r Rect) Edges() []geom.Segment[geom.D3] {
	return outline(r.Shape)
}

func (r Rect) Body() geom.Rigidbody { return r.Shape.Rigidbody() }

func (r Rect) WithBody(b geom.Rigidbody) Target {
	r.Shape = r.Shape.WithRigidbody(b)
	return r
}

// Box is a cuboid.
type Box struct {
	Label string
	Shape geom.Cuboid
}

func (b Box) Name() string { return b.Label }

func (b Box) Intersect(ray geom.Ray) (geom.Point3, bool) {
	return geom.RayCuboidIntersection(ray, b.Shape)
}

// Edges draws every face, so shared edges appear twice.
func (b Box) Edges() []geom.Segment[geom.D3] {
	var out []geom.Segment[geom.D3]
	for _, face := range b.Shape.Faces() {
		out = append(out, outline(face)...)
	}
	return out
}

func (b Box) Body() geom.Rigidbody { return b.Shape.Rigidbody() }

func (b Box) WithBody(body geom.Rigidbody) Target {
	b.Shape = b.Shape.WithRigidbody(body)
	return b
}

func outline(r geom.Rectangle) []geom.Segment[geom.D3] {
	c := r.Corners()
	out := make([]geom.Segment[geom.D3], len(c))
	for i := range c {
		out[i] = geom.NewSegment(c[i], c[(i+1)%len(c)])
	}
	return out
}
