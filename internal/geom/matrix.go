package geom

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Matrix is a row-major R x C matrix.
type Matrix[R, C Dim] struct {
	e [maxDim][maxDim]float64
}

type (
	Matrix2 = Matrix[D2, D2]
	Matrix3 = Matrix[D3, D3]
	Matrix4 = Matrix[D4, D4]
)

// NewMatrix returns the identity for square shapes and the zero matrix
// otherwise.
func NewMatrix[R, C Dim]() Matrix[R, C] {
	var m Matrix[R, C]
	if size[R]() == size[C]() {
		for i := range size[R]() {
			m.e[i][i] = 1
		}
	}
	return m
}

func Identity[N Dim]() Matrix[N, N] {
	return NewMatrix[N, N]()
}

// FromRows panics unless rows is exactly R rows of C values.
func FromRows[R, C Dim](rows ...[]float64) Matrix[R, C] {
	nr, nc := size[R](), size[C]()
	if len(rows) != nr {
		panic(fmt.Sprintf("geom: %d rows given for a %dx%d matrix", len(rows), nr, nc))
	}
	var m Matrix[R, C]
	for r, row := range rows {
		if len(row) != nc {
			panic(fmt.Sprintf("geom: row %d has %d values for a %dx%d matrix", r, len(row), nr, nc))
		}
		copy(m.e[r][:], row)
	}
	return m
}

func Mat2(a [2][2]float64) Matrix2 {
	var m Matrix2
	for r := range a {
		copy(m.e[r][:], a[r][:])
	}
	return m
}

func Mat3(a [3][3]float64) Matrix3 {
	var m Matrix3
	for r := range a {
		copy(m.e[r][:], a[r][:])
	}
	return m
}

func Mat4(a [4][4]float64) Matrix4 {
	return Matrix4{e: a}
}

func (m Matrix[R, C]) Rows() int { return size[R]() }
func (m Matrix[R, C]) Cols() int { return size[C]() }

// At panics when r or c is out of range.
func (m Matrix[R, C]) At(r, c int) float64 {
	return m.e[:size[R]()][r][:size[C]()][c]
}

func (m *Matrix[R, C]) Set(r, c int, x float64) {
	m.e[:size[R]()][r][:size[C]()][c] = x
}

func (m Matrix[R, C]) Row(r int) Vector[C] {
	return Vector[C]{e: m.e[:size[R]()][r]}
}

func (m Matrix[R, C]) Col(c int) Vector[R] {
	var v Vector[R]
	_ = m.e[0][:size[C]()][c]
	for r := range size[R]() {
		v.e[r] = m.e[r][c]
	}
	return v
}

func (m Matrix[R, C]) Transpose() Matrix[C, R] {
	var t Matrix[C, R]
	for r := range size[R]() {
		for c := range size[C]() {
			t.e[c][r] = m.e[r][c]
		}
	}
	return t
}

// Mul multiplies by a square matrix on the right. Use Product for general
// shapes.
func (m Matrix[R, C]) Mul(o Matrix[C, C]) Matrix[R, C] {
	return Product(m, o)
}

func (m Matrix[R, C]) MulVec(v Vector[C]) Vector[R] {
	var out Vector[R]
	for r := range size[R]() {
		var s float64
		for c := range size[C]() {
			s += m.e[r][c] * v.e[c]
		}
		out.e[r] = s
	}
	return out
}

// MulPoint treats p as a position vector. No homogeneous coordinate is added.
func (m Matrix[R, C]) MulPoint(p Point[C]) Point[R] {
	return m.MulVec(p.Vector()).Point()
}

func (m Matrix[R, C]) Add(o Matrix[R, C]) Matrix[R, C] {
	for r := range size[R]() {
		for c := range size[C]() {
			m.e[r][c] += o.e[r][c]
		}
	}
	return m
}

func (m Matrix[R, C]) Sub(o Matrix[R, C]) Matrix[R, C] {
	return m.Add(o.Neg())
}

func (m Matrix[R, C]) Scale(s float64) Matrix[R, C] {
	for r := range size[R]() {
		for c := range size[C]() {
			m.e[r][c] *= s
		}
	}
	return m
}

func (m Matrix[R, C]) Div(s float64) Matrix[R, C] { return m.Scale(1 / s) }
func (m Matrix[R, C]) Neg() Matrix[R, C]          { return m.Scale(-1) }

// Equal compares element-wise within Epsilon.
func (m Matrix[R, C]) Equal(o Matrix[R, C]) bool {
	return m.EqualWithin(o, Epsilon)
}

func (m Matrix[R, C]) EqualWithin(o Matrix[R, C], tol float64) bool {
	for r := range size[R]() {
		for c := range size[C]() {
			d := m.e[r][c] - o.e[r][c]
			if d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}

// Slice returns a copy of the rows.
func (m Matrix[R, C]) Slice() [][]float64 {
	rows := make([][]float64, size[R]())
	for r := range rows {
		rows[r] = m.Row(r).Slice()
	}
	return rows
}

func (m Matrix[R, C]) String() string {
	rows := make([]string, size[R]())
	for r := range rows {
		rows[r] = formatCoords(m.e[r][:size[C]()])
	}
	return "[" + strings.Join(rows, ", ") + "]"
}

func (m Matrix[R, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Slice())
}

// Product multiplies an R x K matrix by a K x C matrix.
func Product[R, K, C Dim](a Matrix[R, K], b Matrix[K, C]) Matrix[R, C] {
	var out Matrix[R, C]
	for r := range size[R]() {
		for c := range size[C]() {
			var s float64
			for k := range size[K]() {
				s += a.e[r][k] * b.e[k][c]
			}
			out.e[r][c] = s
		}
	}
	return out
}

func Trace[N Dim](m Matrix[N, N]) float64 {
	var s float64
	for i := range size[N]() {
		s += m.e[i][i]
	}
	return s
}

func MainDiagonal[N Dim](m Matrix[N, N]) Vector[N] {
	var v Vector[N]
	for i := range size[N]() {
		v.e[i] = m.e[i][i]
	}
	return v
}

// Determinant expands along the first row.
func Determinant[N Dim](m Matrix[N, N]) float64 {
	return det(m.e, size[N]())
}

// Minor is the determinant of m with row r and column c removed.
func Minor[N Dim](m Matrix[N, N], r, c int) float64 {
	n := size[N]()
	_ = m.e[:n][r][:n][c]
	return det(minorOf(m.e, n, r, c), n-1)
}

func Cofactor[N Dim](m Matrix[N, N], r, c int) float64 {
	if (r+c)%2 == 1 {
		return -Minor(m, r, c)
	}
	return Minor(m, r, c)
}

func CofactorMatrix[N Dim](m Matrix[N, N]) Matrix[N, N] {
	var out Matrix[N, N]
	for r := range size[N]() {
		for c := range size[N]() {
			out.e[r][c] = Cofactor(m, r, c)
		}
	}
	return out
}

func Adjugate[N Dim](m Matrix[N, N]) Matrix[N, N] {
	return CofactorMatrix(m).Transpose()
}

// Inverse returns ErrSingularMatrix when the determinant is exactly 0.
func Inverse[N Dim](m Matrix[N, N]) (Matrix[N, N], error) {
	d := Determinant(m)
	if d == 0 {
		return Matrix[N, N]{}, ErrSingularMatrix
	}
	return Adjugate(m).Div(d), nil
}

// MinorMatrix removes row r and column c. R1 and C1 must be one smaller than
// R and C; the shape is checked at run time.
func MinorMatrix[R1, C1, R, C Dim](m Matrix[R, C], r, c int) Matrix[R1, C1] {
	nr, nc := size[R](), size[C]()
	if size[R1]() != nr-1 || size[C1]() != nc-1 {
		panic(fmt.Sprintf("geom: minor of a %dx%d matrix is %dx%d, not %dx%d",
			nr, nc, nr-1, nc-1, size[R1](), size[C1]()))
	}
	_ = m.e[:nr][r][:nc][c]
	var out Matrix[R1, C1]
	for i, oi := 0, 0; i < nr; i++ {
		if i == r {
			continue
		}
		for j, oj := 0, 0; j < nc; j++ {
			if j == c {
				continue
			}
			out.e[oi][oj] = m.e[i][j]
			oj++
		}
		oi++
	}
	return out
}

// Resize embeds m in the top-left corner of an N2 x N2 identity. Shrinking
// keeps the top-left block.
func Resize[N2, N Dim](m Matrix[N, N]) Matrix[N2, N2] {
	out := Identity[N2]()
	n := min(size[N](), size[N2]())
	for r := range n {
		copy(out.e[r][:n], m.e[r][:n])
	}
	return out
}

func minorOf(e [maxDim][maxDim]float64, n, r, c int) [maxDim][maxDim]float64 {
	var out [maxDim][maxDim]float64
	for i, oi := 0, 0; i < n; i++ {
		if i == r {
			continue
		}
		for j, oj := 0, 0; j < n; j++ {
			if j == c {
				continue
			}
			out[oi][oj] = e[i][j]
			oj++
		}
		oi++
	}
	return out
}

// det of an empty matrix is 1 so that a 1x1 matrix has cofactors.
func det(e [maxDim][maxDim]float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return e[0][0]
	case 2:
		return e[0][0]*e[1][1] - e[0][1]*e[1][0]
	}
	var s float64
	sign := 1.0
	for c := range n {
		s += sign * e[0][c] * det(minorOf(e, n, 0, c), n-1)
		sign = -sign
	}
	return s
}
