package geom

// Line is the infinite line through two distinct points.
type Line[N Dim] struct {
	origin    Point[N]
	direction UnitVector[N]
}

func NewLine[N Dim](a, b Point[N]) Line[N] {
	return Line[N]{origin: a, direction: UnitVectorBetween(a, b)}
}

func (l Line[N]) Origin() Point[N]           { return l.origin }
func (l Line[N]) Direction() UnitVector[N]   { return l.direction }
func (l Line[N]) At(t float64) Point[N]      { return l.origin.Translate(l.direction.Scale(t)) }
func (l Line[N]) Contains(p Point[N]) bool   { return l.Distance(p) <= Epsilon }
func (l Line[N]) Project(p Point[N]) float64 { return p.Sub(l.origin).Dot(l.direction.Vector()) }

// Distance is the shortest distance from p to the line.
func (l Line[N]) Distance(p Point[N]) float64 {
	return l.At(l.Project(p)).EuclideanDistance(p)
}

// Equal reports whether both lines are the same set of points, whatever the
// points they were built from.
func (l Line[N]) Equal(o Line[N]) bool {
	d := l.direction.Dot(o.direction)
	return 1-d*d <= Epsilon && l.Contains(o.origin)
}

// Segment is the part of a line between A and B.
type Segment[N Dim] struct {
	a, b Point[N]
}

func NewSegment[N Dim](a, b Point[N]) Segment[N] {
	return Segment[N]{a: a, b: b}
}

func (s Segment[N]) A() Point[N]        { return s.a }
func (s Segment[N]) B() Point[N]        { return s.b }
func (s Segment[N]) Length() float64    { return s.a.EuclideanDistance(s.b) }
func (s Segment[N]) Midpoint() Point[N] { return s.a.Translate(s.b.Sub(s.a).Scale(0.5)) }

// Line extends the segment. A and B must differ.
func (s Segment[N]) Line() Line[N] {
	return NewLine(s.a, s.b)
}
