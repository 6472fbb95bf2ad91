// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"quakemap/mapformat"
	"quakemap/texcoord"
)

// Convert rewrites a face read in format from for format to. The texture
// projection always takes the axis style of to so faces from brush
// primitives end up in the target style too. Attributes to can not
// represent are dropped, those it requires are zeroed.
func Convert(f *Face, from, to mapformat.Format) {
	if plane, ok := f.Plane(); ok {
		if to.ExplicitAxes() {
			f.Projection = texcoord.ToParallel(plane.Normal, f.Projection)
		} else {
			f.Projection = texcoord.ToParaxial(plane, f.Projection)
		}
	}
	if from == to {
		return
	}
	switch {
	case !to.SurfaceAttributes():
		f.Surface = nil
	case f.Surface == nil:
		f.Surface = &SurfaceAttributes{}
	}
	switch {
	case !to.Color():
		f.Color = nil
	case f.Color == nil:
		f.Color = &Color{}
	}
}
