package geom

import (
	"math"
	"testing"
)

func TestOrientationBasis(t *testing.T) {
	tests := []struct {
		name               string
		rotation           Rotation
		right, up, forward Vector3
	}{
		{"identity", Rotation{}, Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1)},
		{"pitch", NewRotation(Rad(Pi/2), Rad(0), Rad(0)), Vec3(1, 0, 0), Vec3(0, 0, -1), Vec3(0, 1, 0)},
		{"yaw", NewRotation(Rad(0), Rad(Pi/2), Rad(0)), Vec3(0, 0, 1), Vec3(0, 1, 0), Vec3(-1, 0, 0)},
		{"roll", NewRotation(Rad(0), Rad(0), Rad(Pi/2)), Vec3(0, -1, 0), Vec3(1, 0, 0), Vec3(0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOrientation(tt.rotation)
			if got := o.Right().Vector(); !got.Equal(tt.right) {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := o.Up().Vector(); !got.Equal(tt.up) {
				t.Errorf("Up() = %v, want %v", got, tt.up)
			}
			if got := o.Forward().Vector(); !got.Equal(tt.forward) {
				t.Errorf("Forward() = %v, want %v", got, tt.forward)
			}
		})
	}
}

func TestOrientationOrthonormal(t *testing.T) {
	for _, r := range rotationGrid() {
		o := NewOrientation(r)
		axes := []UnitVector3{o.Right(), o.Up(), o.Forward()}
		for i, a := range axes {
			if l := a.Vector().Length(); math.Abs(l-1) > 1e-9 {
				t.Errorf("%v: axis %d length = %v", r.Inspect(false), i, l)
			}
			for _, b := range axes[i+1:] {
				if d := a.Dot(b); math.Abs(d) > 1e-9 {
					t.Errorf("%v: axes not orthogonal, dot = %v", r.Inspect(false), d)
				}
			}
		}
		if got := Cross(o.Right().Vector(), o.Up().Vector()); !got.Equal(o.Forward().Vector()) {
			t.Errorf("%v: right × up = %v, want forward %v", r.Inspect(false), got, o.Forward())
		}
	}
}

func TestOrientationFlip(t *testing.T) {
	o := NewOrientation(NewRotation(Rad(Pi/4), Rad(0), Rad(0)))
	s := math.Sqrt2 / 2
	if got := o.Up().Vector(); !got.Equal(Vec3(0, s, -s)) {
		t.Fatalf("Up() before flip = %v", got)
	}
	if got := o.Flip().Up().Vector(); !got.Equal(Vec3(0, s, s)) {
		t.Errorf("Up() after flip = %v, want (0, %v, %v)", got, s, s)
	}

	o = NewOrientation(NewRotation(Rad(0), Rad(Pi/2), Rad(0)))
	flipped := o.Flip()
	if got := flipped.Right().Vector(); !got.Equal(Vec3(0, 0, -1)) {
		t.Errorf("Right() after flip = %v, want (0, 0, -1)", got)
	}
	if got := flipped.Forward().Vector(); !got.Equal(Vec3(1, 0, 0)) {
		t.Errorf("Forward() after flip = %v, want (1, 0, 0)", got)
	}
}

func TestOrientationFlipTwice(t *testing.T) {
	for _, r := range rotationGrid() {
		o := NewOrientation(r)
		if back := o.Flip().Flip(); !back.Equal(o) {
			t.Errorf("%v: flip(flip(o)) = %v", r.Inspect(false), back.Inspect(true))
		}
	}
}

func TestOrientationFlipAbout(t *testing.T) {
	o := Orientation{}
	flipped := o.FlipAbout(WorldRight)
	if got := flipped.Up().Vector(); !got.Equal(Vec3(0, -1, 0)) {
		t.Errorf("Up() after flip about x = %v, want (0, -1, 0)", got)
	}
	if got := flipped.Forward().Vector(); !got.Equal(Vec3(0, 0, -1)) {
		t.Errorf("Forward() after flip about x = %v, want (0, 0, -1)", got)
	}
}

func TestOrientationRotateIsLocal(t *testing.T) {
	pitched := NewOrientation(NewRotation(Rad(Pi/2), Rad(0), Rad(0)))
	turned := pitched.Rotate(AxisRotation(Rad(Pi/2), WorldUp))

	if got := turned.Up(); !got.Equal(pitched.Up()) {
		t.Errorf("Up() = %v, want unchanged %v", got, pitched.Up())
	}
	if got := turned.Forward().Vector(); !got.Equal(pitched.Right().Vector().Neg()) {
		t.Errorf("Forward() = %v, want -right %v", got, pitched.Right().Vector().Neg())
	}
}

func TestOrientationEqualAcrossEulerTriples(t *testing.T) {
	a := NewOrientation(NewRotation(Rad(Pi), Rad(0), Rad(Pi)))
	b := NewOrientation(NewRotation(Rad(0), Rad(Pi), Rad(0)))
	if !a.Equal(b) {
		t.Errorf("(π, 0, π) and (0, π, 0) should describe the same orientation")
	}
	if a.Rotation().Equal(b.Rotation()) {
		t.Errorf("rotations with different angles compared equal")
	}
}
