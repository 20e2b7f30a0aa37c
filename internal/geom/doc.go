// Package geom is the affine-geometry kernel: angles, points and vectors,
// small matrices, Euler rotations, rigid transforms, oriented rectangles and
// ray queries in one to four dimensions.
//
// Every type is a plain value. Dimensions are type parameters drawn from
// [D1] to [D4], so mixing a [Vector3] with a [Matrix4] does not compile.
//
// # Coordinate Frame
//
// The world is left-handed: x points right, y up and z forward. A
// [Rotation] applies pitch about x, then yaw about y, then roll about z.
// Each single-axis matrix is the right-handed one for the negated angle.
//
// # Transforms
//
// [Rigidbody.Matrix] rotates then translates. Hierarchies compose as
//
//	world = parentWorld × local
//
// which [Compose] spells out.
//
// # Equality
//
// Vectors, points and matrices compare within [Epsilon]. Angles compare
// exactly; use [Angle.ApproxEqual] after arithmetic.
package geom
