// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"fmt"

	"github.com/pkg/errors"

	"quakemap/mapformat"
	"quakemap/maptoken"
	"quakemap/math/vec"
)

const (
	brushPrimitiveID = "brushDef"
	patchID          = "patchDef2"
)

// Parser reads map text in a source format and delivers it to a Builder
// with the texture projections converted to a target format. A Parser
// consumes its text, it is meant to be used for a single parse.
type Parser struct {
	cur     *maptoken.Cursor
	source  mapformat.Format
	target  mapformat.Format
	builder Builder
	status  Status
}

func New(text string, source, target mapformat.Format) (*Parser, error) {
	if !source.Valid() {
		return nil, errors.Errorf("invalid source format %v", source)
	}
	if !target.Valid() {
		return nil, errors.Errorf("invalid target format %v", target)
	}
	return &Parser{
		cur:    maptoken.NewCursor(text),
		source: source,
		target: target,
	}, nil
}

// Parse reads the entities of a map text in format.
func Parse(text string, format mapformat.Format, b Builder, s Status) error {
	p, err := New(text, format, format)
	if err != nil {
		return err
	}
	return p.Parse(b, s)
}

// Parse reads a sequence of entities. A returned error is a *ParseError,
// every other problem is sent to the Status.
func (p *Parser) Parse(b Builder, s Status) error {
	p.builder, p.status = b, s
	return p.fatal(p.parseTopLevel(p.parseEntity))
}

// ParseBrushes reads a sequence of brushes and patches which are not
// enclosed in an entity, as found in a clipboard.
func (p *Parser) ParseBrushes(b Builder, s Status) error {
	p.builder, p.status = b, s
	return p.fatal(p.parseTopLevel(p.parseBrushOrPatch))
}

// ParseFaces reads a sequence of faces which are not enclosed in a brush.
func (p *Parser) ParseFaces(b Builder, s Status) error {
	p.builder, p.status = b, s
	return p.fatal(p.parseLooseFaces())
}

func (p *Parser) fatal(err error) error {
	if err == nil {
		return nil
	}
	var te *maptoken.TokenizerError
	if errors.As(err, &te) {
		return &ParseError{Line: te.Line, Column: te.Column, Err: te}
	}
	return err
}

func (p *Parser) expect(k maptoken.Kind) (maptoken.Token, error) {
	t, err := p.cur.Next()
	if err != nil {
		return t, err
	}
	if !t.Is(k) {
		return t, &UnexpectedTokenError{Expected: k, Got: t}
	}
	return t, nil
}

func (p *Parser) peekIs(k maptoken.Kind) (bool, error) {
	t, err := p.cur.Peek()
	if err != nil {
		return false, err
	}
	return t.Is(k), nil
}

func (p *Parser) parseFloat() (float64, error) {
	t, err := p.expect(maptoken.Number)
	if err != nil {
		return 0, err
	}
	v, err := t.Float()
	if err != nil {
		return 0, &UnexpectedTokenError{Expected: maptoken.Number, Got: t}
	}
	return v, nil
}

func (p *Parser) parseInt() (int, error) {
	t, err := p.expect(maptoken.Integer)
	if err != nil {
		return 0, err
	}
	v, err := t.Int()
	if err != nil {
		return 0, &UnexpectedTokenError{Expected: maptoken.Integer, Got: t}
	}
	return v, nil
}

// parseFloats reads len(dst) numbers enclosed by open and close.
func (p *Parser) parseFloats(open, close maptoken.Kind, dst []float64) error {
	if _, err := p.expect(open); err != nil {
		return err
	}
	for i := range dst {
		v, err := p.parseFloat()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	_, err := p.expect(close)
	return err
}

func (p *Parser) parseVector() (vec.Vec3, error) {
	var v vec.Vec3
	err := p.parseFloats(maptoken.OParenthesis, maptoken.CParenthesis, v[:])
	return v, err
}

// guard reports a non fatal error and skips the rest of the block that was
// open at depth.
func (p *Parser) guard(depth, line int, err error) error {
	if err == nil || isFatal(err) {
		return err
	}
	p.status.Error(errorLine(err, line), err.Error())
	return p.skipBlock(depth)
}

func (p *Parser) skipBlock(depth int) error {
	for p.cur.Depth() >= depth {
		t, err := p.cur.Next()
		if err != nil {
			return err
		}
		if t.Kind == maptoken.EOF {
			return nil
		}
	}
	return nil
}

// parseTopLevel calls block for every top level '{'. Anything else is
// reported once and skipped up to the next block.
func (p *Parser) parseTopLevel(block func() error) error {
	for {
		t, err := p.cur.Peek()
		if err != nil {
			return err
		}
		switch t.Kind {
		case maptoken.EOF:
			return nil
		case maptoken.OBrace:
			if err := block(); err != nil {
				return err
			}
		default:
			p.status.Error(t.Line, (&UnexpectedTokenError{
				Expected: maptoken.OBrace | maptoken.EOF,
				Got:      t,
			}).Error())
			if err := p.skipJunk(); err != nil {
				return err
			}
		}
	}
}

func (p *Parser) skipJunk() error {
	for {
		t, err := p.cur.Peek()
		if err != nil {
			return err
		}
		if t.Kind == maptoken.EOF || (t.Kind == maptoken.OBrace && p.cur.Depth() == 0) {
			return nil
		}
		if _, err := p.cur.Next(); err != nil {
			return err
		}
	}
}

func (p *Parser) parseEntity() error {
	open, err := p.expect(maptoken.OBrace)
	if err != nil {
		return err
	}
	depth := p.cur.Depth()
	props, err := p.parseEntityBody()
	if err != nil {
		p.builder.OnEntityDiscarded(open.Line)
		return p.guard(depth, open.Line, err)
	}
	if err := p.builder.OnEntityComplete(props, open.Line); err != nil {
		p.status.Error(open.Line, fmt.Sprintf("skipping entity: %v", err))
	}
	return nil
}

func (p *Parser) parseEntityBody() ([]Property, error) {
	var props []Property
	seen := make(map[string]struct{})
	for {
		t, err := p.cur.Peek()
		if err != nil {
			return nil, err
		}
		switch t.Kind {
		case maptoken.String:
			pr, err := p.parseProperty()
			if err != nil {
				return nil, err
			}
			if _, ok := seen[pr.Key]; ok {
				p.status.Warn(t.Line, fmt.Sprintf("ignoring duplicate entity property %q", pr.Key))
				continue
			}
			seen[pr.Key] = struct{}{}
			props = append(props, pr)
		case maptoken.OBrace:
			if err := p.parseBrushOrPatch(); err != nil {
				return nil, err
			}
		case maptoken.CBrace:
			_, err := p.cur.Next()
			return props, err
		default:
			p.cur.Next()
			return nil, &UnexpectedTokenError{
				Expected: maptoken.String | maptoken.OBrace | maptoken.CBrace,
				Got:      t,
			}
		}
	}
}

func (p *Parser) parseProperty() (Property, error) {
	key, err := p.expect(maptoken.String)
	if err != nil {
		return Property{}, err
	}
	val, err := p.expect(maptoken.String)
	if err != nil {
		return Property{}, err
	}
	return Property{Key: key.Text, Value: val.Text}, nil
}

// structure looks at the token after a brush or patch '{'.
func (p *Parser) structure() (mapformat.Structure, error) {
	t, err := p.cur.Peek()
	if err != nil {
		return mapformat.Brush, err
	}
	if t.Kind == maptoken.String {
		switch t.Text {
		case brushPrimitiveID:
			return mapformat.BrushPrimitive, nil
		case patchID:
			return mapformat.Patch, nil
		}
	}
	return mapformat.Brush, nil
}

// parseBrushOrPatch reads one block inside an entity. Only fatal errors
// are returned.
func (p *Parser) parseBrushOrPatch() error {
	open, err := p.expect(maptoken.OBrace)
	if err != nil {
		return err
	}
	depth := p.cur.Depth()
	s, err := p.structure()
	if err == nil {
		switch s {
		case mapformat.Brush:
			err = p.parseBrush(open.Line)
		case mapformat.BrushPrimitive:
			err = p.parseBrushPrimitive(open.Line)
		case mapformat.Patch:
			err = p.parsePatch(open.Line)
		}
	}
	return p.guard(depth, open.Line, err)
}

// primitiveFace looks past the three points of the next face. Another '('
// there starts a brush primitive texture matrix.
func (p *Parser) primitiveFace() (bool, error) {
	m := p.cur.Mark()
	defer p.cur.Reset(m)
	for i := 0; i < 3; i++ {
		if _, err := p.parseVector(); err != nil {
			if isFatal(err) {
				return false, err
			}
			return false, nil
		}
	}
	return p.peekIs(maptoken.OParenthesis)
}

func (p *Parser) parseBrush(line int) error {
	prim, err := p.primitiveFace()
	if err != nil {
		return err
	}
	faces, err := p.parseFaces(prim)
	if err != nil {
		return err
	}
	return p.brushDone(faces, line)
}

func (p *Parser) parseBrushPrimitive(line int) error {
	if _, err := p.cur.Next(); err != nil {
		return err
	}
	if _, err := p.expect(maptoken.OBrace); err != nil {
		return err
	}
	faces, err := p.parseFaces(true)
	if err != nil {
		return err
	}
	if _, err := p.expect(maptoken.CBrace); err != nil {
		return err
	}
	return p.brushDone(faces, line)
}

func (p *Parser) brushDone(faces []Face, line int) error {
	if len(faces) < 3 {
		p.status.Warn(line, fmt.Sprintf("brush has %d valid faces, a closed brush needs at least 3", len(faces)))
	}
	if err := p.builder.OnBrushComplete(faces, line); err != nil {
		return errors.Wrap(err, "skipping brush")
	}
	return nil
}

// parseFaces reads faces up to and including the closing '}'.
func (p *Parser) parseFaces(primitive bool) ([]Face, error) {
	var faces []Face
	for {
		t, err := p.cur.Peek()
		if err != nil {
			return nil, err
		}
		switch t.Kind {
		case maptoken.CBrace:
			_, err := p.cur.Next()
			return faces, err
		case maptoken.OParenthesis:
			f, ok, err := p.parseFace(primitive)
			if err != nil {
				return nil, err
			}
			if ok {
				faces = append(faces, f)
			}
		default:
			p.cur.Next()
			return nil, &UnexpectedTokenError{
				Expected: maptoken.OParenthesis | maptoken.CBrace,
				Got:      t,
			}
		}
	}
}

// parseLooseFaces reads faces without an enclosing brush. A broken face
// is skipped up to the end of its line.
func (p *Parser) parseLooseFaces() error {
	for {
		t, err := p.cur.Peek()
		if err != nil {
			return err
		}
		if t.Kind == maptoken.EOF {
			return nil
		}
		if t.Kind != maptoken.OParenthesis {
			p.cur.Next()
			err = &UnexpectedTokenError{Expected: maptoken.OParenthesis | maptoken.EOF, Got: t}
		} else {
			var prim bool
			if prim, err = p.primitiveFace(); err == nil {
				_, _, err = p.parseFace(prim)
			}
		}
		if err == nil {
			continue
		}
		if isFatal(err) {
			return err
		}
		p.status.Error(errorLine(err, t.Line), err.Error())
		if err := p.skipLine(); err != nil {
			return err
		}
	}
}

func (p *Parser) skipLine() error {
	old := p.cur.SetSkipEOL(false)
	defer p.cur.SetSkipEOL(old)
	for {
		t, err := p.cur.Peek()
		if err != nil {
			return err
		}
		if t.Kind == maptoken.EOF {
			return nil
		}
		p.cur.Next()
		if t.Kind == maptoken.EOL {
			return nil
		}
	}
}
