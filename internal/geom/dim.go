package geom

// Dim fixes the number of coordinates of a vector, point or matrix axis at
// compile time. Only 1 to 4 dimensions are supported.
type Dim interface {
	D1 | D2 | D3 | D4
	Size() int
}

type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
)

func (D1) Size() int { return 1 }
func (D2) Size() int { return 2 }
func (D3) Size() int { return 3 }
func (D4) Size() int { return 4 }

// maxDim is the backing storage of every vector and matrix. Coordinates past
// the value's own dimension are kept at zero.
const maxDim = 4

// Epsilon is the component-wise tolerance used by Equal on vectors, points and
// matrices.
const Epsilon = 1e-6

func size[N Dim]() int {
	var n N
	return n.Size()
}
