package geom

import "github.com/go-gl/mathgl/mgl64"

// ToMgl converts to the column-major layout GL uploads expect.
func ToMgl(m Matrix4) mgl64.Mat4 {
	var out mgl64.Mat4
	for r := range 4 {
		for c := range 4 {
			out.Set(r, c, m.e[r][c])
		}
	}
	return out
}

func FromMgl(m mgl64.Mat4) Matrix4 {
	var out Matrix4
	for r := range 4 {
		for c := range 4 {
			out.e[r][c] = m.At(r, c)
		}
	}
	return out
}

func ToMgl3(m Matrix3) mgl64.Mat3 {
	var out mgl64.Mat3
	for r := range 3 {
		for c := range 3 {
			out.Set(r, c, m.e[r][c])
		}
	}
	return out
}

func FromMgl3(m mgl64.Mat3) Matrix3 {
	var out Matrix3
	for r := range 3 {
		for c := range 3 {
			out.e[r][c] = m.At(r, c)
		}
	}
	return out
}

// MglVec3 is v as an mgl64 vector.
func MglVec3(v Vector3) mgl64.Vec3 {
	return mgl64.Vec3{v.e[0], v.e[1], v.e[2]}
}
