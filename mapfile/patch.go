// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"github.com/pkg/errors"

	"quakemap/maptoken"
)

// parsePatch reads "patchDef2 { texture ( rows cols 0 0 0 ) ( rows ) } }"
// where every row is "( ( x y z u v ) ... )".
func (p *Parser) parsePatch(line int) error {
	if _, err := p.cur.Next(); err != nil {
		return err
	}
	if _, err := p.expect(maptoken.OBrace); err != nil {
		return err
	}
	texture, err := p.parseTexture()
	if err != nil {
		return err
	}
	var dims [5]float64
	if err := p.parseFloats(maptoken.OParenthesis, maptoken.CParenthesis, dims[:]); err != nil {
		return err
	}
	rows, cols := int(dims[0]), int(dims[1])
	grid := func(l int, reason string) error {
		return &MalformedPatchGridError{Line: l, Rows: rows, Columns: cols, Reason: reason}
	}
	if float64(rows) != dims[0] || float64(cols) != dims[1] {
		return grid(line, "dimensions must be integers")
	}
	if rows < 3 || cols < 3 || rows%2 == 0 || cols%2 == 0 {
		return grid(line, "rows and columns must be odd and at least 3")
	}

	if _, err := p.expect(maptoken.OParenthesis); err != nil {
		return err
	}
	// Grown as points are read, the declared size is untrusted.
	var points []ControlPoint
	for r := 0; r < rows; r++ {
		t, err := p.cur.Peek()
		if err != nil {
			return err
		}
		if t.Kind == maptoken.CParenthesis {
			return grid(t.Line, "too few rows")
		}
		if _, err := p.expect(maptoken.OParenthesis); err != nil {
			return err
		}
		for c := 0; c < cols; c++ {
			t, err := p.cur.Peek()
			if err != nil {
				return err
			}
			if t.Kind == maptoken.CParenthesis {
				return grid(t.Line, "too few control points in a row")
			}
			var v [5]float64
			if err := p.parseFloats(maptoken.OParenthesis, maptoken.CParenthesis, v[:]); err != nil {
				return err
			}
			var cp ControlPoint
			copy(cp.Position[:], v[:3])
			cp.UV = [2]float64{v[3], v[4]}
			points = append(points, cp)
		}
		if err := p.endOfList(grid, "too many control points in a row"); err != nil {
			return err
		}
	}
	if err := p.endOfList(grid, "too many rows"); err != nil {
		return err
	}
	if _, err := p.expect(maptoken.CBrace); err != nil {
		return err
	}
	if _, err := p.expect(maptoken.CBrace); err != nil {
		return err
	}

	patch := Patch{Line: line, Texture: texture, Rows: rows, Columns: cols, Points: points}
	if err := p.builder.OnPatchComplete(patch, line); err != nil {
		return errors.Wrap(err, "skipping patch")
	}
	return nil
}

// endOfList expects the ')' closing a list of parenthesised items.
func (p *Parser) endOfList(grid func(int, string) error, reason string) error {
	t, err := p.cur.Peek()
	if err != nil {
		return err
	}
	if t.Kind == maptoken.OParenthesis {
		return grid(t.Line, reason)
	}
	_, err = p.expect(maptoken.CParenthesis)
	return err
}
