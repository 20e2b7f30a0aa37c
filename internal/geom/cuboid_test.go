package geom_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/affine/internal/geom"
)

var _ = Describe("Cuboid", func() {
	cube := geom.DefaultCuboid()

	It("puts face corners on the corners of the box", func() {
		Expect(cube.Left().BotRight()).To(BeNearPoint(geom.Pt3(-0.5, -0.5, -0.5)))
		Expect(cube.Bottom().BotRight()).To(BeNearPoint(geom.Pt3(-0.5, -0.5, -0.5)))
		Expect(cube.Front().BotRight()).To(BeNearPoint(geom.Pt3(-0.5, -0.5, 0.5)))
	})

	DescribeTable("face normals point out of the box",
		func(f geom.Face, normal geom.Vector3) {
			face := cube.Face(f)
			Expect(face.Rigidbody().Forward().Vector()).To(BeNearVector(normal))
			Expect(face.Center()).To(BeNearPoint(normal.Scale(0.5).Point()))
		},
		Entry("front", geom.FaceFront, geom.Vec3(0, 0, 1)),
		Entry("back", geom.FaceBack, geom.Vec3(0, 0, -1)),
		Entry("left", geom.FaceLeft, geom.Vec3(-1, 0, 0)),
		Entry("right", geom.FaceRight, geom.Vec3(1, 0, 0)),
		Entry("bottom", geom.FaceBottom, geom.Vec3(0, -1, 0)),
		Entry("top", geom.FaceTop, geom.Vec3(0, 1, 0)),
	)

	It("sizes each face from the matching pair of extents", func() {
		box := geom.NewCuboid(geom.Rigidbody{}, 2, 3, 4)
		Expect(box.Front().Width()).To(Equal(2.0))
		Expect(box.Front().Height()).To(Equal(3.0))
		Expect(box.Left().Width()).To(Equal(4.0))
		Expect(box.Top().Height()).To(Equal(4.0))
		Expect(box.Right().Center()).To(BeNearPoint(geom.Pt3(1, 0, 0)))
		Expect(box.Bottom().Center()).To(BeNearPoint(geom.Pt3(0, -1.5, 0)))
		Expect(box.Back().Center()).To(BeNearPoint(geom.Pt3(0, 0, -2)))
	})

	It("follows the rigidbody", func() {
		body := geom.NewRigidbody(geom.Vec3(5, 0, 0), geom.NewOrientation(
			geom.NewRotation(geom.Rad(0), geom.Rad(geom.Pi/2), geom.Rad(0))))
		box := cube.WithRigidbody(body)
		Expect(box.Front().Center()).To(BeNearPoint(geom.Pt3(4.5, 0, 0)))
		Expect(box.Front().Rigidbody().Forward().Vector()).To(BeNearVector(geom.Vec3(-1, 0, 0)))
	})

	It("lists all six faces in order", func() {
		faces := cube.Faces()
		Expect(faces).To(HaveLen(6))
		Expect(faces[geom.FaceTop].Center()).To(BeNearPoint(geom.Pt3(0, 0.5, 0)))
		Expect(geom.FaceBottom.String()).To(Equal("bottom"))
	})
})

var _ = Describe("Line", func() {
	It("contains points between and beyond its defining points", func() {
		l := geom.NewLine(geom.Pt3(0, 0, 0), geom.Pt3(1, 1, 0))
		Expect(l.Contains(geom.Pt3(3, 3, 0))).To(BeTrue())
		Expect(l.Contains(geom.Pt3(-2, -2, 0))).To(BeTrue())
		Expect(l.Contains(geom.Pt3(1, 0, 0))).To(BeFalse())
		Expect(l.Distance(geom.Pt3(1, 0, 0))).To(BeNumerically("~", 0.70710678, 1e-6))
	})

	It("is equal whatever points build it", func() {
		a := geom.NewLine(geom.Pt2(0, 1), geom.Pt2(2, 3))
		b := geom.NewLine(geom.Pt2(5, 6), geom.Pt2(-1, 0))
		c := geom.NewLine(geom.Pt2(0, 0), geom.Pt2(2, 3))
		Expect(a.Equal(b)).To(BeTrue())
		Expect(a.Equal(c)).To(BeFalse())
	})

	It("measures segments", func() {
		s := geom.NewSegment(geom.Pt2(1, 1), geom.Pt2(4, 5))
		Expect(s.Length()).To(Equal(5.0))
		Expect(s.Midpoint()).To(Equal(geom.Pt2(2.5, 3)))
		Expect(s.Line().Contains(geom.Pt2(7, 9))).To(BeTrue())
	})
})
