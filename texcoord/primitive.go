// SPDX-License-Identifier: GPL-2.0-or-later

package texcoord

import (
	"math"

	"quakemap/math/vec"
)

// primitiveBase is the axis base brush primitive texture matrices are
// relative to.
func primitiveBase(normal vec.Vec3) (vec.Vec3, vec.Vec3) {
	for i := range normal {
		if math.Abs(normal[i]) < 1e-6 {
			normal[i] = 0
		}
	}
	rotY := -math.Atan2(normal[2], math.Sqrt(normal[1]*normal[1]+normal[0]*normal[0]))
	rotZ := math.Atan2(normal[1], normal[0])
	sinY, cosY := math.Sincos(rotY)
	sinZ, cosZ := math.Sincos(rotZ)
	s := vec.Vec3{-sinZ, cosZ, 0}
	t := vec.Vec3{-sinY * cosZ, -sinY * sinZ, -cosY}
	return s, t
}

// FromPrimitive converts a brush primitive texture matrix into an explicit
// projection. The coordinates are in texture space, 1 is one texture
// width or height.
func FromPrimitive(normal vec.Vec3, m [2][3]float64) Projection {
	s, t := primitiveBase(normal)
	u := vec.Add(s.Scale(m[0][0]), t.Scale(m[0][1]))
	v := vec.Add(s.Scale(m[1][0]), t.Scale(m[1][1]))
	p := Projection{
		Offset: [2]float64{m[0][2], m[1][2]},
		Scale:  [2]float64{1, 1},
	}
	if l := u.Length(); l > 0 {
		u = div(u, l)
		p.Scale[0] = 1 / l
	}
	if l := v.Length(); l > 0 {
		v = div(v, l)
		p.Scale[1] = 1 / l
	}
	p.Axes = &Axes{U: u, V: v}
	return p
}
