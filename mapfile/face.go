// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"

	"github.com/pkg/errors"

	"quakemap/mapformat"
	"quakemap/maptoken"
	"quakemap/math/vec"
	"quakemap/texcoord"
)

// parseFace reads one face. ok is false if the face was dropped without
// affecting its brush.
func (p *Parser) parseFace(primitive bool) (f Face, ok bool, err error) {
	t, err := p.cur.Peek()
	if err != nil {
		return f, false, err
	}
	f.Line = t.Line
	for i := range f.Points {
		if f.Points[i], err = p.parseVector(); err != nil {
			return f, false, err
		}
	}
	var prim *[2][3]float64
	if primitive {
		prim, err = p.parsePrimitiveFace(&f)
	} else {
		err = p.parseDialectFace(&f)
	}
	if err != nil {
		return f, false, err
	}

	plane, valid := f.Plane()
	if !valid {
		p.status.Error(f.Line, "skipping face: points are collinear")
		return f, false, nil
	}
	if prim != nil {
		f.Projection = texcoord.FromPrimitive(plane.Normal, *prim)
	}
	Convert(&f, p.source, p.target)
	if err := p.builder.OnFaceComplete(f); err != nil {
		p.status.Error(f.Line, fmt.Sprintf("skipping face: %v", err))
		return f, false, nil
	}
	return f, true, nil
}

func (p *Parser) parseDialectFace(f *Face) error {
	switch p.source {
	case mapformat.Standard:
		return p.parseQuakeFace(f)
	case mapformat.Valve:
		return p.parseValveFace(f)
	case mapformat.Quake2:
		return p.parseQuake2Face(f, false)
	case mapformat.Quake2Valve:
		return p.parseQuake2ValveFace(f)
	case mapformat.Hexen2:
		return p.parseHexen2Face(f)
	case mapformat.Daikatana:
		return p.parseQuake2Face(f, true)
	}
	return errors.Errorf("unsupported map format %v", p.source)
}

// parseTexture accepts numbers too, texture names like 128 are common.
func (p *Parser) parseTexture() (string, error) {
	t, err := p.expect(maptoken.String | maptoken.Number)
	return t.Text, err
}

// parseParaxial reads "offX offY rotation scaleX scaleY".
func (p *Parser) parseParaxial() (texcoord.Projection, error) {
	var v [5]float64
	for i := range v {
		f, err := p.parseFloat()
		if err != nil {
			return texcoord.Projection{}, err
		}
		v[i] = f
	}
	return texcoord.Projection{
		Offset:   [2]float64{v[0], v[1]},
		Rotation: v[2],
		Scale:    [2]float64{v[3], v[4]},
	}, nil
}

// parseParallel reads "[ ux uy uz offX ] [ vx vy vz offY ] rotation
// scaleX scaleY".
func (p *Parser) parseParallel() (texcoord.Projection, error) {
	var u, v, rs [4]float64
	if err := p.parseFloats(maptoken.OBracket, maptoken.CBracket, u[:]); err != nil {
		return texcoord.Projection{}, err
	}
	if err := p.parseFloats(maptoken.OBracket, maptoken.CBracket, v[:]); err != nil {
		return texcoord.Projection{}, err
	}
	for i := 0; i < 3; i++ {
		f, err := p.parseFloat()
		if err != nil {
			return texcoord.Projection{}, err
		}
		rs[i] = f
	}
	return texcoord.Projection{
		Offset:   [2]float64{u[3], v[3]},
		Rotation: rs[0],
		Scale:    [2]float64{rs[1], rs[2]},
		Axes: &texcoord.Axes{
			U: vec.Vec3{u[0], u[1], u[2]},
			V: vec.Vec3{v[0], v[1], v[2]},
		},
	}, nil
}

// trailing runs fn with line ends significant. Optional values at the end
// of a face must be on the same line.
func (p *Parser) trailing(fn func() error) error {
	old := p.cur.SetSkipEOL(false)
	defer p.cur.SetSkipEOL(old)
	return fn()
}

func (p *Parser) parseSurface() (*SurfaceAttributes, error) {
	contents, err := p.parseInt()
	if err != nil {
		return nil, err
	}
	flags, err := p.parseInt()
	if err != nil {
		return nil, err
	}
	value, err := p.parseFloat()
	if err != nil {
		return nil, err
	}
	return &SurfaceAttributes{Contents: contents, Flags: flags, Value: value}, nil
}

func (p *Parser) optionalSurface(f *Face) error {
	ok, err := p.peekIs(maptoken.Integer)
	if err != nil || !ok {
		return err
	}
	f.Surface, err = p.parseSurface()
	return err
}

// extraSurface keeps surface attributes found in a format that has none.
func (p *Parser) extraSurface(f *Face) error {
	if err := p.optionalSurface(f); err != nil || f.Surface == nil {
		return err
	}
	p.status.Warn(f.Line, fmt.Sprintf("%v faces have no surface attributes, keeping them", p.source))
	return nil
}

func (p *Parser) parseQuakeFace(f *Face) (err error) {
	if f.Texture, err = p.parseTexture(); err != nil {
		return err
	}
	if f.Projection, err = p.parseParaxial(); err != nil {
		return err
	}
	return p.trailing(func() error { return p.extraSurface(f) })
}

func (p *Parser) parseValveFace(f *Face) (err error) {
	if f.Texture, err = p.parseTexture(); err != nil {
		return err
	}
	if f.Projection, err = p.parseParallel(); err != nil {
		return err
	}
	return p.trailing(func() error { return p.extraSurface(f) })
}

func (p *Parser) parseHexen2Face(f *Face) (err error) {
	if f.Texture, err = p.parseTexture(); err != nil {
		return err
	}
	if f.Projection, err = p.parseParaxial(); err != nil {
		return err
	}
	return p.trailing(func() error {
		// Hexen 2 maps may carry one more number. It is not used.
		ok, err := p.peekIs(maptoken.Number)
		if err != nil || !ok {
			return err
		}
		_, err = p.parseFloat()
		return err
	})
}

func (p *Parser) parseQuake2Face(f *Face, color bool) (err error) {
	if f.Texture, err = p.parseTexture(); err != nil {
		return err
	}
	if f.Projection, err = p.parseParaxial(); err != nil {
		return err
	}
	return p.trailing(func() error {
		if err := p.optionalSurface(f); err != nil || f.Surface == nil || !color {
			return err
		}
		ok, err := p.peekIs(maptoken.Integer)
		if err != nil || !ok {
			return err
		}
		var c [3]int
		for i := range c {
			if c[i], err = p.parseInt(); err != nil {
				return err
			}
		}
		f.Color = &Color{R: c[0], G: c[1], B: c[2]}
		return nil
	})
}

func (p *Parser) parseQuake2ValveFace(f *Face) (err error) {
	if f.Texture, err = p.parseTexture(); err != nil {
		return err
	}
	if f.Projection, err = p.parseParallel(); err != nil {
		return err
	}
	return p.trailing(func() error { return p.optionalSurface(f) })
}

// parsePrimitiveFace reads "( ( a b c ) ( d e f ) ) texture" and the
// optional surface attributes. The matrix needs the face plane so it is
// returned to the caller.
func (p *Parser) parsePrimitiveFace(f *Face) (*[2][3]float64, error) {
	var m [2][3]float64
	if _, err := p.expect(maptoken.OParenthesis); err != nil {
		return nil, err
	}
	for i := range m {
		if err := p.parseFloats(maptoken.OParenthesis, maptoken.CParenthesis, m[i][:]); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(maptoken.CParenthesis); err != nil {
		return nil, err
	}
	var err error
	if f.Texture, err = p.parseTexture(); err != nil {
		return nil, err
	}
	if err := p.trailing(func() error { return p.optionalSurface(f) }); err != nil {
		return nil, err
	}
	return &m, nil
}
