package geom

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vector is an N-dimensional direction or displacement.
type Vector[N Dim] struct {
	e [maxDim]float64
}

type (
	Vector1 = Vector[D1]
	Vector2 = Vector[D2]
	Vector3 = Vector[D3]
	Vector4 = Vector[D4]
)

// NewVector panics unless exactly N coordinates are given.
func NewVector[N Dim](coords ...float64) Vector[N] {
	n := size[N]()
	if len(coords) != n {
		panic(fmt.Sprintf("geom: %d coordinates given for a %d-dimensional vector", len(coords), n))
	}
	var v Vector[N]
	copy(v.e[:], coords)
	return v
}

func Vec1(x float64) Vector1          { return Vector1{e: [maxDim]float64{x}} }
func Vec2(x, y float64) Vector2       { return Vector2{e: [maxDim]float64{x, y}} }
func Vec3(x, y, z float64) Vector3    { return Vector3{e: [maxDim]float64{x, y, z}} }
func Vec4(x, y, z, w float64) Vector4 { return Vector4{e: [maxDim]float64{x, y, z, w}} }

// Cast converts between dimensions. Leading coordinates are copied, missing
// ones are zero.
func Cast[M, N Dim](v Vector[N]) Vector[M] {
	var out Vector[M]
	copy(out.e[:size[M]()], v.e[:size[N]()])
	return out
}

// Extend lifts v into homogeneous coordinates with the given w.
func Extend(v Vector3, w float64) Vector4 {
	return Vec4(v.e[0], v.e[1], v.e[2], w)
}

// Truncate drops the homogeneous coordinate.
func Truncate(v Vector4) Vector3 {
	return Cast[D3](v)
}

func (v Vector[N]) Dim() int { return size[N]() }

// At panics when i is outside [0, N).
func (v Vector[N]) At(i int) float64 { return v.e[:size[N]()][i] }

func (v *Vector[N]) Set(i int, x float64) { v.e[:size[N]()][i] = x }

func (v Vector[N]) X() float64 { return v.At(0) }
func (v Vector[N]) Y() float64 { return v.At(1) }
func (v Vector[N]) Z() float64 { return v.At(2) }
func (v Vector[N]) W() float64 { return v.At(3) }

// Slice returns a copy of the coordinates.
func (v Vector[N]) Slice() []float64 {
	out := make([]float64, size[N]())
	copy(out, v.e[:])
	return out
}

func (v Vector[N]) Point() Point[N] { return Point[N](v) }

func (v Vector[N]) Add(o Vector[N]) Vector[N] {
	for i := range size[N]() {
		v.e[i] += o.e[i]
	}
	return v
}

func (v Vector[N]) Sub(o Vector[N]) Vector[N] {
	for i := range size[N]() {
		v.e[i] -= o.e[i]
	}
	return v
}

func (v Vector[N]) Scale(s float64) Vector[N] {
	for i := range size[N]() {
		v.e[i] *= s
	}
	return v
}

func (v Vector[N]) Div(s float64) Vector[N] {
	for i := range size[N]() {
		v.e[i] /= s
	}
	return v
}

func (v Vector[N]) Neg() Vector[N] {
	return v.Scale(-1)
}

// MulElem multiplies component-wise.
func (v Vector[N]) MulElem(o Vector[N]) Vector[N] {
	for i := range size[N]() {
		v.e[i] *= o.e[i]
	}
	return v
}

// Sum adds all components, the manhattan length for non-negative vectors.
func (v Vector[N]) Sum() float64 {
	var s float64
	for i := range size[N]() {
		s += v.e[i]
	}
	return s
}

func (v Vector[N]) Dot(o Vector[N]) float64 {
	return v.MulElem(o).Sum()
}

func (v Vector[N]) LengthSquared() float64 { return v.Dot(v) }
func (v Vector[N]) Length() float64        { return math.Sqrt(v.Dot(v)) }

// Normalized divides by the length. A zero vector yields NaN components.
func (v Vector[N]) Normalized() Vector[N] {
	return v.Div(v.Length())
}

// Equal compares component-wise within Epsilon.
func (v Vector[N]) Equal(o Vector[N]) bool {
	return nearlyEqual(v.e[:size[N]()], o.e[:size[N]()])
}

func (v Vector[N]) String() string {
	return formatCoords(v.e[:size[N]()])
}

func (v Vector[N]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.e[:size[N]()])
}

// Cross is the 3D cross product.
func Cross(a, b Vector3) Vector3 {
	return Vec3(
		a.e[1]*b.e[2]-a.e[2]*b.e[1],
		a.e[2]*b.e[0]-a.e[0]*b.e[2],
		a.e[0]*b.e[1]-a.e[1]*b.e[0],
	)
}

// Outer builds the R x C matrix a bᵀ.
func Outer[R, C Dim](a Vector[R], b Vector[C]) Matrix[R, C] {
	var m Matrix[R, C]
	for r := range size[R]() {
		for c := range size[C]() {
			m.e[r][c] = a.e[r] * b.e[c]
		}
	}
	return m
}

func nearlyEqual(a, b []float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > Epsilon {
			return false
		}
	}
	return true
}

func formatCoords(c []float64) string {
	parts := make([]string, len(c))
	for i, x := range c {
		parts[i] = strconv.FormatFloat(x, 'g', 6, 64)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
