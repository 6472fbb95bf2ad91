// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"quakemap/math/vec"
	"quakemap/texcoord"
)

type Property struct {
	Key   string
	Value string
}

// SurfaceAttributes are the Quake 2 style face flags.
type SurfaceAttributes struct {
	Contents int
	Flags    int
	Value    float64
}

// Color is the Daikatana surface color.
type Color struct {
	R, G, B int
}

// Face is one bounding plane of a brush.
type Face struct {
	Line       int
	Points     [3]vec.Vec3
	Texture    string
	Projection texcoord.Projection
	Surface    *SurfaceAttributes
	Color      *Color
}

// Plane returns the plane through the three face points.
func (f *Face) Plane() (vec.Plane, bool) {
	return vec.PlaneFromPoints(f.Points[0], f.Points[1], f.Points[2])
}

// UV returns the texture coordinates of a point on the face.
func (f *Face) UV(p vec.Vec3) [2]float64 {
	pl, _ := f.Plane()
	return texcoord.Resolve(pl.Normal, f.Projection).Project(p)
}

type ControlPoint struct {
	Position vec.Vec3
	UV       [2]float64
}

// Patch is a quadratic bezier patch. Points are stored row by row.
type Patch struct {
	Line    int
	Texture string
	Rows    int
	Columns int
	Points  []ControlPoint
}

// At returns the control point in row r and column c.
func (p *Patch) At(r, c int) ControlPoint {
	return p.Points[r*p.Columns+c]
}
