// SPDX-License-Identifier: GPL-2.0-or-later

// Package texcoord computes texture projections of brush faces.
//
// A face projects its texture either implicitly (paraxial, the classic Quake
// way: one of six base axis pairs picked by the plane normal, rotated,
// scaled and shifted) or explicitly (parallel, Valve 220: two axis vectors
// with their own offsets and scales).
package texcoord

import (
	"math"

	qmath "quakemap/math"
	"quakemap/math/vec"
)

const correctEpsilon = 1e-9

type Axes struct {
	U, V vec.Vec3
}

// Projection is the texture projection of a face as stored in a map file.
// Axes is nil for implicit projections.
type Projection struct {
	Offset   [2]float64
	Rotation float64
	Scale    [2]float64
	Axes     *Axes
}

func Default() Projection {
	return Projection{Scale: [2]float64{1, 1}}
}

func (p Projection) Explicit() bool {
	return p.Axes != nil
}

// Quake base axes: normal, u axis, v axis
var baseAxes = [6][3]vec.Vec3{
	{{0, 0, 1}, {1, 0, 0}, {0, -1, 0}},  // floor
	{{0, 0, -1}, {1, 0, 0}, {0, -1, 0}}, // ceiling
	{{1, 0, 0}, {0, 1, 0}, {0, 0, -1}},  // west wall
	{{-1, 0, 0}, {0, 1, 0}, {0, 0, -1}}, // east wall
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},  // south wall
	{{0, -1, 0}, {1, 0, 0}, {0, 0, -1}}, // north wall
}

// BaseAxes returns the index and the u and v axis of the base axis triple
// whose normal is closest to the given one. Ties go to the earlier triple.
func BaseAxes(normal vec.Vec3) (int, vec.Vec3, vec.Vec3) {
	best := 0
	bestDot := 0.0
	for i, b := range baseAxes {
		if d := vec.Dot(normal, b[0]); d > bestDot {
			bestDot = d
			best = i
		}
	}
	return best, baseAxes[best][1], baseAxes[best][2]
}

// major returns the index of the only non-zero component of a base axis.
func major(a vec.Vec3) int {
	switch {
	case a[0] != 0:
		return 0
	case a[1] != 0:
		return 1
	default:
		return 2
	}
}

func safeScale(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}

func div(v vec.Vec3, s float64) vec.Vec3 {
	return vec.Vec3{v[0] / s, v[1] / s, v[2] / s}
}

// rotatedBase rotates the base axes of normal by deg degrees within the
// plane of their non-zero components.
func rotatedBase(normal vec.Vec3, deg float64) (vec.Vec3, vec.Vec3) {
	_, u, v := BaseAxes(normal)
	sv, tv := major(u), major(v)
	sin, cos := qmath.SinCos(deg)
	rot := func(a vec.Vec3) vec.Vec3 {
		ns := cos*a[sv] - sin*a[tv]
		nt := sin*a[sv] + cos*a[tv]
		a[sv] = ns
		a[tv] = nt
		return a
	}
	return rot(u), rot(v)
}

// Basis maps points to texture coordinates: u = p·U + Offset[0].
type Basis struct {
	U, V   vec.Vec3
	Offset [2]float64
}

func (b Basis) Project(p vec.Vec3) [2]float64 {
	return [2]float64{
		vec.Dot(p, b.U) + b.Offset[0],
		vec.Dot(p, b.V) + b.Offset[1],
	}
}

// Resolve computes the texture basis of a face with the given plane normal.
func Resolve(normal vec.Vec3, p Projection) Basis {
	var u, v vec.Vec3
	if p.Axes != nil {
		u = p.Axes.U.Normalize()
		v = p.Axes.V.Normalize()
	} else {
		u, v = rotatedBase(normal, p.Rotation)
	}
	return Basis{
		U:      div(u, safeScale(p.Scale[0])),
		V:      div(v, safeScale(p.Scale[1])),
		Offset: p.Offset,
	}
}

// ToParallel returns p with explicit axes. The axes are the rotated base
// axes, offsets, rotation and scale stay the same, so the projected
// coordinates do not change.
func ToParallel(normal vec.Vec3, p Projection) Projection {
	if p.Axes != nil {
		return p
	}
	u, v := rotatedBase(normal, p.Rotation)
	return Projection{
		Offset:   p.Offset,
		Rotation: p.Rotation,
		Scale:    [2]float64{safeScale(p.Scale[0]), safeScale(p.Scale[1])},
		Axes:     &Axes{U: u, V: v},
	}
}

// ToParaxial returns p without explicit axes.
//
// On the plane p·n = dist an axis a and a + k·n project to coordinates that
// differ by the constant k·dist. Each axis is moved along n into the plane
// of the base axes and the difference goes into the offset. The rotation
// comes from the u axis, the scales from the length of u and the length of
// v along the rotated base v axis. The result is exact if the moved axes
// are perpendicular, otherwise v is approximated.
func ToParaxial(plane vec.Plane, p Projection) Projection {
	if p.Axes == nil {
		return p
	}
	n := plane.Normal
	b := Resolve(n, p)
	_, bu, bv := BaseAxes(n)
	sv, tv := major(bu), major(bv)
	w := 3 - sv - tv

	shift := func(a vec.Vec3) (vec.Vec3, float64) {
		k := -a[w] / n[w]
		return vec.Add(a, n.Scale(k)), k
	}
	u, ku := shift(b.U)
	v, kv := shift(b.V)
	off := [2]float64{
		b.Offset[0] - ku*plane.Dist,
		b.Offset[1] - kv*plane.Dist,
	}

	lu := math.Hypot(u[sv], u[tv])
	if lu == 0 {
		return Projection{Offset: correct2(off), Scale: [2]float64{1, 1}}
	}
	bx, by := bu[sv], bv[tv]
	rot := qmath.RadToDeg(math.Atan2(u[tv]*bx, u[sv]*bx))
	rot = qmath.AngleMod(qmath.Correct(qmath.AngleMod(rot), correctEpsilon))
	sin, cos := qmath.SinCos(rot)

	sx := 1 / lu
	sy := 1.0
	if d := v[sv]*(-sin*by) + v[tv]*(cos*by); math.Abs(d) > 1e-12 {
		sy = 1 / d
	}
	return Projection{
		Offset:   correct2(off),
		Rotation: rot,
		Scale:    correct2([2]float64{sx, sy}),
	}
}

func correct2(a [2]float64) [2]float64 {
	return [2]float64{
		qmath.Correct(a[0], correctEpsilon),
		qmath.Correct(a[1], correctEpsilon),
	}
}
