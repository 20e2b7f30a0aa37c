package geom

import "math"

// ScaleMatrix scales every axis by s.
func ScaleMatrix[N Dim](s float64) Matrix[N, N] {
	return Identity[N]().Scale(s)
}

// ScaleMatrixVec scales axis i by v[i].
func ScaleMatrixVec[N Dim](v Vector[N]) Matrix[N, N] {
	var m Matrix[N, N]
	for i := range size[N]() {
		m.e[i][i] = v.e[i]
	}
	return m
}

// TranslationMatrix3 is the homogeneous 4x4 translation by v.
func TranslationMatrix3(v Vector3) Matrix4 {
	return translation[D4](v)
}

// TranslationMatrix2 is the homogeneous 3x3 translation by v.
func TranslationMatrix2(v Vector2) Matrix3 {
	return translation[D3](v)
}

// translation builds an identity with v in the last column. H must be one
// larger than N.
func translation[H, N Dim](v Vector[N]) Matrix[H, H] {
	n := size[N]()
	if size[H]() != n+1 {
		panic("geom: translation matrix must be one dimension larger than its vector")
	}
	m := Identity[H]()
	for i := range n {
		m.e[i][n] = v.e[i]
	}
	return m
}

// leftHanded maps an angle of the left-handed frame onto the right-handed
// formulas. Every rotation builder goes through it.
func leftHanded(theta float64) float64 {
	return -theta
}

// AxisRotation rotates by angle about axis in the left-handed frame. With the
// world axes it yields the single-axis pitch, yaw and roll matrices.
func AxisRotation(angle Angle, axis UnitVector3) Matrix3 {
	theta := leftHanded(angle.Radians())
	s, c := math.Sincos(theta)
	a := axis.Vector()
	x, y, z := a.e[0], a.e[1], a.e[2]
	skew := Mat3([3][3]float64{
		{0, -z, y},
		{z, 0, -x},
		{-y, x, 0},
	})
	return Identity[D3]().Scale(c).
		Add(Outer(a, a).Scale(1 - c)).
		Add(skew.Scale(s))
}
