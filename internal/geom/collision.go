package geom

import "math"

// Ray is a half line from Origin along Direction. Direction need not be unit
// length; parameters returned by the intersection tests are in its units.
type Ray struct {
	Origin    Point3  `json:"origin"`
	Direction Vector3 `json:"direction"`
}

// At is the point reached after t steps of Direction.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Translate(r.Direction.Scale(t))
}

// rayPlane solves dot(n, o + t·d) + d0 = 0 with d0 = -dot(n, p). A ray
// parallel to the plane misses, even when it lies inside it.
func rayPlane(ray Ray, plane Plane) (float64, bool) {
	n := plane.Normal.Vector()
	denom := n.Dot(ray.Direction)
	if denom == 0 {
		return 0, false
	}
	d0 := -n.Dot(plane.Point.Vector())
	return -(n.Dot(ray.Origin.Vector()) + d0) / denom, true
}

// RayPlaneIntersection returns where the ray's line meets the plane. Hits
// behind the origin are reported too.
func RayPlaneIntersection(ray Ray, plane Plane) (Point3, bool) {
	t, ok := rayPlane(ray, plane)
	if !ok {
		return Point3{}, false
	}
	return ray.At(t), true
}

// RayRectangleIntersection is RayPlaneIntersection restricted to the
// rectangle. Points exactly on an edge are outside.
func RayRectangleIntersection(ray Ray, rect Rectangle) (Point3, bool) {
	t, ok := rayRectangle(ray, rect)
	if !ok {
		return Point3{}, false
	}
	return ray.At(t), true
}

func rayRectangle(ray Ray, rect Rectangle) (float64, bool) {
	t, ok := rayPlane(ray, rect.Plane())
	if !ok {
		return 0, false
	}
	hit := ray.At(t).Vector()
	tl, bl, br := rect.topLeft.Vector(), rect.botLeft.Vector(), rect.botRight.Vector()

	oa := tl.Sub(bl)
	ob := br.Sub(bl)
	u := hit.Dot(oa)
	v := hit.Dot(ob)
	if bl.Dot(oa) < u && u < tl.Dot(oa) && bl.Dot(ob) < v && v < br.Dot(ob) {
		return t, true
	}
	return 0, false
}

// RayCuboidIntersection returns the nearest face hit in front of the origin.
func RayCuboidIntersection(ray Ray, c Cuboid) (Point3, bool) {
	best, found := math.Inf(1), false
	for _, face := range c.Faces() {
		if t, ok := rayRectangle(ray, face); ok && t >= 0 && t < best {
			best, found = t, true
		}
	}
	if !found {
		return Point3{}, false
	}
	return ray.At(best), true
}
