package viz

import (
	"math"
	"sort"

	"github.com/san-kum/affine/internal/geom"
	"github.com/san-kum/affine/internal/probe"
)

const (
	DefaultNear = 0.1
	minZoom     = 0.1
	maxZoom     = 10
)

var DefaultFOV = geom.Deg(60)

// Camera is a pinhole camera mounted on a rigid body. It looks along the
// body's forward axis with right to the right of the screen and up at the top.
type Camera struct {
	Body geom.Rigidbody
	FOV  geom.Angle
	Near float64
	Zoom float64
}

func NewCamera(body geom.Rigidbody) *Camera {
	return &Camera{Body: body, FOV: DefaultFOV, Near: DefaultNear, Zoom: 1}
}

// Turn rotates the camera about its own axes.
func (c *Camera) Turn(pitch, yaw, roll geom.Angle) {
	local := geom.NewRotation(pitch, yaw, roll).Matrix()
	c.Body = c.Body.WithOrientation(c.Body.Orientation().Rotate(local))
}

// Move translates the camera by a delta given in camera space.
func (c *Camera) Move(local geom.Vector3) {
	c.Body = c.Body.Translate(c.Body.Orientation().Matrix().MulVec(local))
}

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(maxZoom, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(minZoom, c.Zoom/1.2) }

// View maps a world point into camera space. The inverse of a rotation is its
// transpose, so no general inverse is needed.
func (c *Camera) View(p geom.Point3) geom.Vector3 {
	rel := p.Vector().Sub(c.Body.Position())
	return c.Body.Orientation().Matrix().Transpose().MulVec(rel)
}

// focal is the pixel distance of the image plane for a sw x sh screen.
func (c *Camera) focal(sw, sh int) float64 {
	half := float64(min(sw, sh)) / 2
	return half / math.Tan(c.FOV.Radians()/2) * c.Zoom
}

func (c *Camera) screen(v geom.Vector3, sw, sh int) (float64, float64) {
	f := c.focal(sw, sh)
	return float64(sw)/2 + v.X()*f/v.Z(), float64(sh)/2 - v.Y()*f/v.Z()
}

// Project converts a world point to screen pixels. It returns x, y, the camera
// space depth and whether the point is in front of the camera and on screen.
func (c *Camera) Project(p geom.Point3, sw, sh int) (int, int, float64, bool) {
	v := c.View(p)
	if v.Z() < c.Near {
		return 0, 0, v.Z(), false
	}
	fx, fy := c.screen(v, sw, sh)
	x, y := int(math.Round(fx)), int(math.Round(fy))
	return x, y, v.Z(), x >= 0 && x < sw && y >= 0 && y < sh
}

// ProjectSegment clips a segment against the near plane and the screen, then
// projects what is left. ok is false when nothing of it is visible.
func (c *Camera) ProjectSegment(s geom.Segment[geom.D3], sw, sh int) (ProjectedEdge, bool) {
	a, b := c.View(s.A()), c.View(s.B())
	if a.Z() < c.Near && b.Z() < c.Near {
		return ProjectedEdge{}, false
	}
	if a.Z() < c.Near {
		a = clipNear(b, a, c.Near)
	} else if b.Z() < c.Near {
		b = clipNear(a, b, c.Near)
	}
	x1, y1 := c.screen(a, sw, sh)
	x2, y2 := c.screen(b, sw, sh)
	t0, t1, ok := clipRect(x1, y1, x2-x1, y2-y1, float64(sw-1), float64(sh-1))
	if !ok {
		return ProjectedEdge{}, false
	}
	dx, dy := x2-x1, y2-y1
	return ProjectedEdge{
		X1:    int(math.Round(x1 + t0*dx)),
		Y1:    int(math.Round(y1 + t0*dy)),
		X2:    int(math.Round(x1 + t1*dx)),
		Y2:    int(math.Round(y1 + t1*dy)),
		Depth: (a.Z() + b.Z()) / 2,
	}, true
}

// clipRect is Liang-Barsky clipping of p + t*d, t in [0, 1], against the box
// [0, maxX] x [0, maxY].
func clipRect(x, y, dx, dy, maxX, maxY float64) (float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{{-dx, x}, {dx, maxX - x}, {-dy, y}, {dy, maxY - y}} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = math.Max(t0, t)
		} else {
			t1 = math.Min(t1, t)
		}
		if t0 > t1 {
			return 0, 0, false
		}
	}
	return t0, t1, true
}

// clipNear moves out, which lies behind the near plane, along the segment
// until it touches the plane.
func clipNear(in, out geom.Vector3, near float64) geom.Vector3 {
	t := (in.Z() - near) / (in.Z() - out.Z())
	return in.Add(out.Sub(in).Scale(t))
}

// EdgeKind tags what an edge depicts so renderers can style it.
type EdgeKind int

const (
	EdgeShape EdgeKind = iota
	EdgeSelected
	EdgeRay
	EdgeHit
	EdgeAxis
)

type Edge struct {
	Segment geom.Segment[geom.D3]
	Kind    EdgeKind
}

// Point reports whether the edge is a single marker.
func (e Edge) Point() bool { return e.Segment.A().Equal(e.Segment.B()) }

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }

func (w *Wireframe) AddEdge(a, b geom.Point3, k EdgeKind) {
	w.Edges = append(w.Edges, Edge{geom.NewSegment(a, b), k})
}
func (w *Wireframe) AddPoint(p geom.Point3, k EdgeKind) { w.AddEdge(p, p, k) }
func (w *Wireframe) Clear()                             { w.Edges = w.Edges[:0] }

func (w *Wireframe) AddTarget(t probe.Target, k EdgeKind) {
	for _, s := range t.Edges() {
		w.Edges = append(w.Edges, Edge{s, k})
	}
}

// AddRay draws a ray out to length along its direction.
func (w *Wireframe) AddRay(r geom.Ray, length float64) {
	dir := r.Direction
	if l := dir.Length(); l != 0 {
		dir = dir.Scale(length / l)
	}
	w.AddEdge(r.Origin, r.Origin.Translate(dir), EdgeRay)
}

// AddResults draws each ray up to its hit, marking the hit point. Misses are
// drawn out to missLength.
func (w *Wireframe) AddResults(results []probe.Result, missLength float64) {
	for _, r := range results {
		if r.Hit == nil {
			w.AddRay(r.Ray, missLength)
			continue
		}
		w.AddEdge(r.Ray.Origin, r.Hit.Point, EdgeRay)
		w.AddPoint(r.Hit.Point, EdgeHit)
	}
}

// AddAxes draws the world right, up and forward axes from the origin.
func (w *Wireframe) AddAxes(length float64) {
	o := geom.Pt3(0, 0, 0)
	for _, axis := range []geom.UnitVector3{geom.WorldRight, geom.WorldUp, geom.WorldForward} {
		w.AddEdge(o, o.Translate(axis.Scale(length)), EdgeAxis)
	}
}

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Kind           EdgeKind
}

// Project returns the visible edges, far ones first.
func (w *Wireframe) Project(cam *Camera, sw, sh int) []ProjectedEdge {
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		p, ok := cam.ProjectSegment(e.Segment, sw, sh)
		if !ok {
			continue
		}
		p.Kind = e.Kind
		proj = append(proj, p)
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].Depth > proj[j].Depth })
	return proj
}

// Render3D draws the wireframe to the canvas using a simple painter's algorithm.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.Pixels()
	for _, e := range w.Project(cam, sw, sh) {
		switch {
		case e.Kind == EdgeHit:
			c.DrawCross(e.X1, e.Y1, 1)
		case e.X1 == e.X2 && e.Y1 == e.Y2:
			c.Set(e.X1, e.Y1)
		default:
			c.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
		}
	}
}
