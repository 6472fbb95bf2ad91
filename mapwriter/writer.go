// SPDX-License-Identifier: GPL-2.0-or-later

package mapwriter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"quakemap/mapfile"
	"quakemap/mapformat"
	qmath "quakemap/math"
	"quakemap/math/vec"
	"quakemap/model"
)

// Writer writes maps in Format. A non empty Game is written as a header
// comment next to the format.
type Writer struct {
	Format mapformat.Format
	Game   string
}

type printer struct {
	f   mapformat.Format
	w   *bufio.Writer
	err error
}

func (p *printer) printf(format string, v ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, v...)
}

func (w Writer) Write(out io.Writer, m *model.Map) error {
	if !w.Format.Valid() {
		return errors.Errorf("cannot write map format %v", w.Format)
	}
	p := &printer{f: w.Format, w: bufio.NewWriter(out)}
	if w.Game != "" {
		p.printf("// Game: %s\n", w.Game)
	}
	p.printf("// Format: %v\n", w.Format)
	for i, e := range m.Entities {
		p.entity(i, e)
	}
	for i, b := range m.Brushes {
		p.brush(i, b.Faces)
	}
	for _, pt := range m.Patches {
		p.patch(pt)
	}
	for _, f := range m.Faces {
		p.face(f)
	}
	if p.err != nil {
		return p.err
	}
	return p.w.Flush()
}

func (p *printer) entity(n int, e *model.Entity) {
	p.printf("// entity %d\n{\n", n)
	for _, pr := range e.Properties() {
		p.printf("%s %s\n", quote(pr.Key), quote(pr.Value))
	}
	for i, b := range e.Brushes {
		p.brush(i, b.Faces)
	}
	for _, pt := range e.Patches {
		p.patch(pt)
	}
	p.printf("}\n")
}

func (p *printer) brush(n int, faces []mapfile.Face) {
	p.printf("// brush %d\n{\n", n)
	for _, f := range faces {
		p.face(f)
	}
	p.printf("}\n")
}

func (p *printer) face(f mapfile.Face) {
	mapfile.Convert(&f, p.f, p.f)
	for _, pt := range f.Points {
		p.printf("( %s ) ", vector(pt))
	}
	p.printf("%s ", texture(f.Texture))

	pr := f.Projection
	if pr.Axes != nil {
		p.printf("[ %s %s ] [ %s %s ] ",
			vector(pr.Axes.U), number(pr.Offset[0]),
			vector(pr.Axes.V), number(pr.Offset[1]))
	} else {
		p.printf("%s %s ", number(pr.Offset[0]), number(pr.Offset[1]))
	}
	p.printf("%s %s %s", number(pr.Rotation), number(pr.Scale[0]), number(pr.Scale[1]))

	if s := f.Surface; s != nil && p.f.SurfaceAttributes() {
		p.printf(" %d %d %s", s.Contents, s.Flags, number(s.Value))
		if c := f.Color; c != nil && p.f.Color() {
			p.printf(" %d %d %d", channel(c.R), channel(c.G), channel(c.B))
		}
	}
	p.printf("\n")
}

func (p *printer) patch(pt mapfile.Patch) {
	p.printf("{\npatchDef2\n{\n%s\n( %d %d 0 0 0 )\n(\n", texture(pt.Texture), pt.Rows, pt.Columns)
	for r := 0; r < pt.Rows; r++ {
		p.printf("(")
		for c := 0; c < pt.Columns; c++ {
			cp := pt.At(r, c)
			p.printf(" ( %s %s %s )", vector(cp.Position), number(cp.UV[0]), number(cp.UV[1]))
		}
		p.printf(" )\n")
	}
	p.printf(")\n}\n}\n")
}

func channel(c int) int {
	return qmath.Clamp(0, c, 255)
}

// number formats v so that it reads back to the same value.
func number(v float64) string {
	if v == 0 {
		// no -0
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func vector(v vec.Vec3) string {
	return number(v[0]) + " " + number(v[1]) + " " + number(v[2])
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// texture quotes names the tokenizer would not read back as one word.
func texture(name string) string {
	if name == "" || strings.HasPrefix(name, "//") || strings.ContainsAny(name, " \t\r\n\"()[]{}") {
		return quote(name)
	}
	return name
}
