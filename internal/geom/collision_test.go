package geom_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/affine/internal/geom"
)

var _ = Describe("Collision", func() {
	ground := geom.Plane{Point: geom.Pt3(0, -1, 0), Normal: geom.WorldUp}
	floor := func(w, h float64) geom.Rectangle {
		body := geom.NewRigidbody(geom.Vec3(0, -1, 0), geom.NewOrientation(
			geom.NewRotation(geom.Rad(geom.Pi/2), geom.Rad(0), geom.Rad(0))))
		return geom.NewRectangle(body, w, h)
	}
	ray := func(dx, dy, dz float64) geom.Ray {
		return geom.Ray{Direction: geom.Vec3(dx, dy, dz)}
	}

	Describe("RayPlaneIntersection", func() {
		It("misses when the ray is parallel", func() {
			_, ok := geom.RayPlaneIntersection(ray(1, 0, 0), ground)
			Expect(ok).To(BeFalse())
		})

		It("misses when the ray lies in the plane", func() {
			r := geom.Ray{Origin: geom.Pt3(0, -1, 0), Direction: geom.Vec3(0, 0, 1)}
			_, ok := geom.RayPlaneIntersection(r, ground)
			Expect(ok).To(BeFalse())
		})

		It("hits where the line meets the plane", func() {
			hit, ok := geom.RayPlaneIntersection(ray(2, -1, 0), ground)
			Expect(ok).To(BeTrue())
			Expect(hit).To(BeNearPoint(geom.Pt3(2, -1, 0)))
		})

		It("reports hits behind the origin", func() {
			hit, ok := geom.RayPlaneIntersection(ray(1, 1, 0), ground)
			Expect(ok).To(BeTrue())
			Expect(hit).To(BeNearPoint(geom.Pt3(-1, -1, 0)))
		})

		It("does not need a unit direction", func() {
			hit, ok := geom.RayPlaneIntersection(ray(0, -10, 5), ground)
			Expect(ok).To(BeTrue())
			Expect(hit).To(BeNearPoint(geom.Pt3(0, -1, 0.5)))
		})
	})

	Describe("RayRectangleIntersection", func() {
		DescribeTable("against a floor tile",
			func(r geom.Ray, w, h float64, want *geom.Point3) {
				hit, ok := geom.RayRectangleIntersection(r, floor(w, h))
				if want == nil {
					Expect(ok).To(BeFalse(), "unexpected hit at %v", hit)
					return
				}
				Expect(ok).To(BeTrue())
				Expect(hit).To(BeNearPoint(*want))
			},
			Entry("parallel ray", ray(1, 0, 0), 0.5, 2.0, nil),
			Entry("plane hit outside the tile", ray(2, -1, 0), 0.5, 2.0, nil),
			Entry("inside the tile", ray(0.1, -1, 0.5), 0.5, 2.0, ptr(geom.Pt3(0.1, -1, 0.5))),
			Entry("past the far edge", ray(0, -1, 2.1), 0.5, 4.0, nil),
			Entry("just inside the far edge", ray(0, -1, 1.9), 0.5, 4.0, ptr(geom.Pt3(0, -1, 1.9))),
		)

		It("treats a hit exactly on an edge as a miss", func() {
			r := geom.Ray{Origin: geom.Pt3(0.5, 0, -1), Direction: geom.Vec3(0, 0, 1)}
			_, ok := geom.RayRectangleIntersection(r, geom.DefaultRectangle())
			Expect(ok).To(BeFalse())

			r.Origin = geom.Pt3(0.4999, 0, -1)
			hit, ok := geom.RayRectangleIntersection(r, geom.DefaultRectangle())
			Expect(ok).To(BeTrue())
			Expect(hit).To(BeNearPoint(geom.Pt3(0.4999, 0, 0)))
		})
	})

	Describe("RayCuboidIntersection", func() {
		It("returns the nearest face in front of the origin", func() {
			r := geom.Ray{Origin: geom.Pt3(0.1, 0.2, -5), Direction: geom.Vec3(0, 0, 1)}
			hit, ok := geom.RayCuboidIntersection(r, geom.DefaultCuboid())
			Expect(ok).To(BeTrue())
			Expect(hit).To(BeNearPoint(geom.Pt3(0.1, 0.2, -0.5)))
		})

		It("hits the far side from inside the box", func() {
			r := geom.Ray{Direction: geom.Vec3(0.1, 1, 0.2)}
			hit, ok := geom.RayCuboidIntersection(r, geom.DefaultCuboid())
			Expect(ok).To(BeTrue())
			Expect(hit).To(BeNearPoint(geom.Pt3(0.05, 0.5, 0.1)))
		})

		It("misses a box behind the ray", func() {
			r := geom.Ray{Origin: geom.Pt3(0, 0, 5), Direction: geom.Vec3(0, 0, 1)}
			_, ok := geom.RayCuboidIntersection(r, geom.DefaultCuboid())
			Expect(ok).To(BeFalse())
		})
	})
})

func ptr(p geom.Point3) *geom.Point3 { return &p }
