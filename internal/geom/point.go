package geom

import (
	"encoding/json"
	"fmt"
	"math"
)

// Point is a position in N-dimensional space. The zero value is the origin.
type Point[N Dim] struct {
	e [maxDim]float64
}

type (
	Point1 = Point[D1]
	Point2 = Point[D2]
	Point3 = Point[D3]
	Point4 = Point[D4]
)

// NewPoint panics unless exactly N coordinates are given.
func NewPoint[N Dim](coords ...float64) Point[N] {
	return NewVector[N](coords...).Point()
}

func Pt1(x float64) Point1          { return Point1{e: [maxDim]float64{x}} }
func Pt2(x, y float64) Point2       { return Point2{e: [maxDim]float64{x, y}} }
func Pt3(x, y, z float64) Point3    { return Point3{e: [maxDim]float64{x, y, z}} }
func Pt4(x, y, z, w float64) Point4 { return Point4{e: [maxDim]float64{x, y, z, w}} }

// CastPoint converts between dimensions the same way Cast does for vectors.
func CastPoint[M, N Dim](p Point[N]) Point[M] {
	return Cast[M](p.Vector()).Point()
}

func (p Point[N]) Dim() int          { return size[N]() }
func (p Point[N]) At(i int) float64  { return p.e[:size[N]()][i] }
func (p Point[N]) Vector() Vector[N] { return Vector[N](p) }

func (p *Point[N]) Set(i int, x float64) { p.e[:size[N]()][i] = x }

func (p Point[N]) X() float64 { return p.At(0) }
func (p Point[N]) Y() float64 { return p.At(1) }
func (p Point[N]) Z() float64 { return p.At(2) }

// Sub is the displacement from o to p.
func (p Point[N]) Sub(o Point[N]) Vector[N] {
	return p.Vector().Sub(o.Vector())
}

// Translate returns the tip of v placed at p.
func (p Point[N]) Translate(v Vector[N]) Point[N] {
	return p.Vector().Add(v).Point()
}

func (p Point[N]) EuclideanDistanceSquared(o Point[N]) float64 {
	return p.Sub(o).LengthSquared()
}

func (p Point[N]) EuclideanDistance(o Point[N]) float64 {
	return math.Sqrt(p.EuclideanDistanceSquared(o))
}

func (p Point[N]) ManhattanDistance(o Point[N]) float64 {
	var sum float64
	for i := range size[N]() {
		sum += math.Abs(p.e[i] - o.e[i])
	}
	return sum
}

// Equal compares coordinates within Epsilon.
func (p Point[N]) Equal(o Point[N]) bool {
	return nearlyEqual(p.e[:size[N]()], o.e[:size[N]()])
}

func (p Point[N]) String() string {
	return formatCoords(p.e[:size[N]()])
}

func (p Point[N]) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.e[:size[N]()])
}

// UnitVector is a direction of length 1. Construction normalizes, so the
// invariant holds for every value built through NewUnitVector or
// UnitVectorBetween.
type UnitVector[N Dim] struct {
	v Vector[N]
}

type (
	UnitVector2 = UnitVector[D2]
	UnitVector3 = UnitVector[D3]
)

// NewUnitVector normalizes v. v must not be the zero vector.
func NewUnitVector[N Dim](v Vector[N]) UnitVector[N] {
	return UnitVector[N]{v: v.Normalized()}
}

// UnitVectorBetween is the direction from a to b. a and b must differ.
func UnitVectorBetween[N Dim](a, b Point[N]) UnitVector[N] {
	return NewUnitVector(b.Sub(a))
}

// World reference axes.
var (
	WorldRight   = UnitVector3{v: Vec3(1, 0, 0)}
	WorldUp      = UnitVector3{v: Vec3(0, 1, 0)}
	WorldForward = UnitVector3{v: Vec3(0, 0, 1)}
)

func (u UnitVector[N]) Vector() Vector[N]          { return u.v }
func (u UnitVector[N]) At(i int) float64           { return u.v.At(i) }
func (u UnitVector[N]) Neg() UnitVector[N]         { return UnitVector[N]{v: u.v.Neg()} }
func (u UnitVector[N]) Equal(o UnitVector[N]) bool { return u.v.Equal(o.v) }
func (u UnitVector[N]) String() string             { return u.v.String() }

func (u UnitVector[N]) Dot(o UnitVector[N]) float64 {
	return u.v.Dot(o.v)
}

func (u UnitVector[N]) MarshalJSON() ([]byte, error) {
	return u.v.MarshalJSON()
}

// Scale leaves the unit sphere, so the result is a plain vector.
func (u UnitVector[N]) Scale(s float64) Vector[N] {
	return u.v.Scale(s)
}

func (u UnitVector[N]) GoString() string {
	return fmt.Sprintf("UnitVector%v", u.v)
}
