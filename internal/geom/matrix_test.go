package geom

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

var squareMatrices = []struct {
	name string
	m    Matrix3
}{
	{"identity", Identity[D3]()},
	{"integer", Mat3([3][3]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}})},
	{"fractional", Mat3([3][3]float64{{0.5, 1.25, -2}, {3, 0.1, 7}, {-1, 2, 0.75}})},
	{"singular", Mat3([3][3]float64{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}})},
}

func TestNewMatrix(t *testing.T) {
	if got := NewMatrix[D3, D3](); !got.Equal(Identity[D3]()) {
		t.Errorf("NewMatrix[D3, D3]() = %v, want identity", got)
	}
	zero := NewMatrix[D2, D3]()
	for r := range 2 {
		for c := range 3 {
			if zero.At(r, c) != 0 {
				t.Fatalf("NewMatrix[D2, D3]() = %v, want zero", zero)
			}
		}
	}
}

func TestFromRowsPanicsOnShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a short row")
		}
	}()
	FromRows[D2, D2]([]float64{1, 2}, []float64{3})
}

func TestTransposeInvolution(t *testing.T) {
	for _, tt := range squareMatrices {
		if got := tt.m.Transpose().Transpose(); !got.Equal(tt.m) {
			t.Errorf("%s: transpose(transpose(M)) = %v, want %v", tt.name, got, tt.m)
		}
	}

	rect := FromRows[D2, D3]([]float64{1, 2, 3}, []float64{4, 5, 6})
	want := FromRows[D3, D2]([]float64{1, 4}, []float64{2, 5}, []float64{3, 6})
	if got := rect.Transpose(); !got.Equal(want) {
		t.Errorf("Transpose() = %v, want %v", got, want)
	}
}

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"1x1", Determinant(FromRows[D1, D1]([]float64{-7})), -7},
		{"2x2", Determinant(Mat2([2][2]float64{{1, 2}, {3, 4}})), -2},
		{"3x3", Determinant(squareMatrices[1].m), 49},
		{"singular", Determinant(squareMatrices[3].m), 0},
		{"4x4", Determinant(Mat4([4][4]float64{
			{1, 0, 2, -1},
			{3, 0, 0, 5},
			{2, 1, 4, -3},
			{1, 0, 5, 0},
		})), 30},
		{"identity", Determinant(Identity[D4]()), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: Determinant() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

// Expansion along any row must agree with the first-row expansion.
func TestDeterminantAnyRow(t *testing.T) {
	for _, tt := range squareMatrices {
		want := Determinant(tt.m)
		for r := range 3 {
			var got float64
			for c := range 3 {
				got += tt.m.At(r, c) * Cofactor(tt.m, r, c)
			}
			if diff := got - want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("%s: expansion along row %d = %v, want %v", tt.name, r, got, want)
			}
		}
	}
}

func TestMinorMatrix(t *testing.T) {
	m := squareMatrices[1].m
	got := MinorMatrix[D2, D2](m, 1, 0)
	want := Mat2([2][2]float64{{-3, 1}, {4, 5}})
	if !got.Equal(want) {
		t.Errorf("MinorMatrix(1, 0) = %v, want %v", got, want)
	}
	if Minor(m, 1, 0) != -19 {
		t.Errorf("Minor(1, 0) = %v, want -19", Minor(m, 1, 0))
	}
	if Cofactor(m, 1, 0) != 19 {
		t.Errorf("Cofactor(1, 0) = %v, want 19", Cofactor(m, 1, 0))
	}

	rect := MinorMatrix[D1, D2](FromRows[D2, D3]([]float64{1, 2, 3}, []float64{4, 5, 6}), 0, 1)
	if !rect.Equal(FromRows[D1, D2]([]float64{4, 6})) {
		t.Errorf("MinorMatrix of 2x3 = %v", rect)
	}
}

func TestMinorMatrixPanicsOnShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a 3x3 target shape")
		}
	}()
	MinorMatrix[D3, D3](Identity[D3](), 0, 0)
}

func TestCofactorMatrixAndInverse(t *testing.T) {
	m := Mat2([2][2]float64{{1, 2}, {3, 4}})
	if got := CofactorMatrix(m); !got.Equal(Mat2([2][2]float64{{4, -3}, {-2, 1}})) {
		t.Errorf("CofactorMatrix() = %v", got)
	}
	if got := Adjugate(m); !got.Equal(Mat2([2][2]float64{{4, -2}, {-3, 1}})) {
		t.Errorf("Adjugate() = %v", got)
	}

	for _, tt := range squareMatrices[:3] {
		inv, err := Inverse(tt.m)
		if err != nil {
			t.Fatalf("%s: Inverse() error = %v", tt.name, err)
		}
		if got := tt.m.Mul(inv); !got.Equal(Identity[D3]()) {
			t.Errorf("%s: M x M⁻¹ = %v, want identity", tt.name, got)
		}
	}

	if _, err := Inverse(squareMatrices[3].m); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Inverse(singular) error = %v, want ErrSingularMatrix", err)
	}
}

func TestTraceAndDiagonal(t *testing.T) {
	m := squareMatrices[1].m
	if Trace(m) != 7 {
		t.Errorf("Trace() = %v, want 7", Trace(m))
	}
	if got := MainDiagonal(m); !got.Equal(Vec3(2, 0, 5)) {
		t.Errorf("MainDiagonal() = %v", got)
	}
	if got := m.Row(2); !got.Equal(Vec3(1, 4, 5)) {
		t.Errorf("Row(2) = %v", got)
	}
	if got := m.Col(1); !got.Equal(Vec3(-3, 0, 4)) {
		t.Errorf("Col(1) = %v", got)
	}
}

func TestProduct(t *testing.T) {
	a := FromRows[D2, D3]([]float64{1, 2, 3}, []float64{4, 5, 6})
	b := FromRows[D3, D2]([]float64{7, 8}, []float64{9, 10}, []float64{11, 12})
	want := Mat2([2][2]float64{{58, 64}, {139, 154}})
	if got := Product(a, b); !got.Equal(want) {
		t.Errorf("Product() = %v, want %v", got, want)
	}
	if got := a.MulVec(Vec3(1, 0, -1)); !got.Equal(Vec2(-2, -2)) {
		t.Errorf("MulVec() = %v", got)
	}
}

func TestScalarOps(t *testing.T) {
	m := Mat2([2][2]float64{{1, 2}, {3, 4}})
	if got := m.Add(m).Sub(m.Scale(3)); !got.Equal(m.Neg()) {
		t.Errorf("2M - 3M = %v, want -M", got)
	}
	if got := m.Div(2); !got.Equal(Mat2([2][2]float64{{0.5, 1}, {1.5, 2}})) {
		t.Errorf("Div() = %v", got)
	}
}

func TestBuilders(t *testing.T) {
	if got := ScaleMatrix[D3](2).MulVec(Vec3(1, 2, 3)); !got.Equal(Vec3(2, 4, 6)) {
		t.Errorf("ScaleMatrix(2) x v = %v", got)
	}
	if got := ScaleMatrixVec(Vec3(1, 2, 3)).MulVec(Vec3(1, 1, 1)); !got.Equal(Vec3(1, 2, 3)) {
		t.Errorf("ScaleMatrixVec() x ones = %v", got)
	}

	tr := TranslationMatrix3(Vec3(1, 2, 3))
	want := Mat4([4][4]float64{{1, 0, 0, 1}, {0, 1, 0, 2}, {0, 0, 1, 3}, {0, 0, 0, 1}})
	if !tr.Equal(want) {
		t.Errorf("TranslationMatrix3() = %v, want %v", tr, want)
	}
	if got := TranslationMatrix2(Vec2(-1, 4)).MulVec(Vec3(1, 1, 1)); !got.Equal(Vec3(0, 5, 1)) {
		t.Errorf("TranslationMatrix2() x (1, 1, 1) = %v", got)
	}
}

func TestResize(t *testing.T) {
	m := Mat2([2][2]float64{{1, 2}, {3, 4}})
	got := Resize[D3](m)
	want := Mat3([3][3]float64{{1, 2, 0}, {3, 4, 0}, {0, 0, 1}})
	if !got.Equal(want) {
		t.Errorf("Resize[D3]() = %v, want %v", got, want)
	}
	if back := Resize[D2](got); !back.Equal(m) {
		t.Errorf("Resize[D2]() = %v, want %v", back, m)
	}
}

func TestMglRoundTrip(t *testing.T) {
	m := Mat4([4][4]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}})
	g := ToMgl(m)
	if g.At(0, 3) != 4 || g[3] != 13 {
		t.Errorf("ToMgl() = %v, want column-major storage", g)
	}
	if back := FromMgl(g); !back.Equal(m) {
		t.Errorf("FromMgl(ToMgl()) = %v", back)
	}

	tr := TranslationMatrix3(Vec3(1, 2, 3))
	if !ToMgl(tr).ApproxEqual(mgl64.Translate3D(1, 2, 3)) {
		t.Errorf("ToMgl(translation) = %v", ToMgl(tr))
	}
}

func TestMatrixJSON(t *testing.T) {
	data, err := json.Marshal(Mat2([2][2]float64{{1, 2}, {3, 4}}))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[[1,2],[3,4]]" {
		t.Errorf("Marshal() = %s", data)
	}
}
