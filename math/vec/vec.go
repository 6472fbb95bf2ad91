// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"math"
)

type Vec3 [3]float64

func (v Vec3) Idx(i int) float64 {
	switch i {
	default:
		return v[0]
	case 1:
		return v[1]
	case 2:
		return v[2]
	}
}

// Length returns the length of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(Dot(v, v))
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		a[0] + b[0],
		a[1] + b[1],
		a[2] + b[2],
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		a[0] - b[0],
		a[1] - b[1],
		a[2] - b[2],
	}
}

// Scale returns the vector multiplied by the skalar s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{
		v[0] * s,
		v[1] * s,
		v[2] * s,
	}
}

// Normalize returns the normalized vector
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Dot returns a dot b
func Dot(a Vec3, b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a cross b
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Equal returns a == b
func Equal(a Vec3, b Vec3) bool {
	return a == b
}

// AlmostEqual compares component wise with the tolerance eps
func AlmostEqual(a, b Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// Plane is the set of points p with Dot(Normal, p) == Dist.
type Plane struct {
	Normal Vec3
	Dist   float64
}

// PlaneFromPoints returns the plane through the three points. The normal
// points to the side from which p1, p2, p3 appear clockwise. ok is false if
// the points are collinear.
func PlaneFromPoints(p1, p2, p3 Vec3) (p Plane, ok bool) {
	n := Cross(Sub(p3, p1), Sub(p2, p1))
	if n.Length() < 1e-9 {
		return Plane{}, false
	}
	n = n.Normalize()
	return Plane{Normal: n, Dist: Dot(p1, n)}, true
}

// Distance returns the signed distance of v to the plane.
func (p Plane) Distance(v Vec3) float64 {
	return Dot(p.Normal, v) - p.Dist
}
