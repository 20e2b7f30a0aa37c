package geom_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/affine/internal/geom"
)

var _ = Describe("Rectangle", func() {
	It("places the corners of the default rectangle around the origin", func() {
		r := geom.DefaultRectangle()

		Expect(r.BotLeft()).To(BeNearPoint(geom.Pt3(0.5, -0.5, 0)))
		Expect(r.BotRight()).To(BeNearPoint(geom.Pt3(-0.5, -0.5, 0)))
		Expect(r.TopLeft()).To(BeNearPoint(geom.Pt3(0.5, 0.5, 0)))
		Expect(r.TopRight()).To(BeNearPoint(geom.Pt3(-0.5, 0.5, 0)))
	})

	It("carries the corners with the rigidbody's rotation", func() {
		body := geom.NewRigidbody(geom.Vec3(0, 0, 0), geom.NewOrientation(
			geom.NewRotation(geom.Rad(0), geom.Rad(geom.Pi/2), geom.Rad(0))))
		r := geom.NewRectangle(body, 2, 0.5)

		Expect(r.BotLeft()).To(BeNearPoint(geom.Pt3(0, -0.25, 1)))
		Expect(r.BotRight()).To(BeNearPoint(geom.Pt3(0, -0.25, -1)))
		Expect(r.TopLeft()).To(BeNearPoint(geom.Pt3(0, 0.25, 1)))
		Expect(r.TopRight()).To(BeNearPoint(geom.Pt3(0, 0.25, -1)))
	})

	It("matches position plus half extents along right and up", func() {
		body := geom.NewRigidbody(geom.Vec3(3, -1, 2), geom.NewOrientation(
			geom.NewRotation(geom.Rad(0.3), geom.Rad(-1.2), geom.Rad(2))))
		r := geom.NewRectangle(body, 1.5, 3)

		x := body.Right().Scale(1.5 / 2)
		y := body.Up().Scale(3.0 / 2)
		center := body.Position().Point()

		Expect(r.TopLeft()).To(BeNearPoint(center.Translate(x.Add(y))))
		Expect(r.BotRight()).To(BeNearPoint(center.Translate(x.Add(y).Neg())))
		Expect(r.Center()).To(BeNearPoint(center))
	})

	It("rebuilds the corners when the rigidbody or size change", func() {
		r := geom.DefaultRectangle()
		moved := r.WithRigidbody(geom.NewRigidbody(geom.Vec3(0, 0, 5), geom.Orientation{}))
		Expect(moved.BotLeft()).To(BeNearPoint(geom.Pt3(0.5, -0.5, 5)))
		Expect(r.BotLeft()).To(BeNearPoint(geom.Pt3(0.5, -0.5, 0)))

		wide := r.WithSize(4, 1)
		Expect(wide.BotLeft()).To(BeNearPoint(geom.Pt3(2, -0.5, 0)))
		Expect(wide.Width()).To(Equal(4.0))
	})

	It("converts to the plane through botleft facing forward", func() {
		body := geom.NewRigidbody(geom.Vec3(0, -1, 0), geom.NewOrientation(
			geom.NewRotation(geom.Rad(geom.Pi/2), geom.Rad(0), geom.Rad(0))))
		p := geom.NewRectangle(body, 0.5, 2).Plane()

		Expect(p.Normal.Vector()).To(BeNearVector(geom.Vec3(0, 1, 0)))
		Expect(p.Distance(geom.Pt3(7, -1, 3))).To(BeNumerically("~", 0, 1e-9))
		Expect(p.Distance(geom.Pt3(0, 2, 0))).To(BeNumerically("~", 3, 1e-9))
	})

	It("lists corners as a closed outline", func() {
		c := geom.DefaultRectangle().Corners()
		Expect(c[0]).To(BeNearPoint(geom.Pt3(0.5, 0.5, 0)))
		Expect(c[2]).To(BeNearPoint(geom.Pt3(-0.5, -0.5, 0)))
	})

	It("adds corners to the debug introspection", func() {
		data, err := json.Marshal(geom.DefaultRectangle().Inspect(true))
		Expect(err).NotTo(HaveOccurred())

		var out map[string]any
		Expect(json.Unmarshal(data, &out)).To(Succeed())
		Expect(out).To(HaveKeyWithValue("width", 1.0))
		Expect(out).To(HaveKey("rigidbody"))
		Expect(out["debug"]).To(HaveKeyWithValue("botright", []any{-0.5, -0.5, 0.0}))
	})
})

var _ = Describe("Plane", func() {
	It("defaults to the ground plane", func() {
		p := geom.DefaultPlane()
		Expect(p.Point).To(BeNearPoint(geom.Pt3(0, 0, 0)))
		Expect(p.Normal.Vector()).To(BeNearVector(geom.Vec3(0, 1, 0)))
	})
})
