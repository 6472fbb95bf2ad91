// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"fmt"

	"github.com/pkg/errors"

	"quakemap/mapfile"
	"quakemap/mapformat"
	"quakemap/pack"
)

// Mode selects what a text is expected to contain.
type Mode int

const (
	Entities Mode = iota
	Brushes
	Faces
)

func (m Mode) String() string {
	switch m {
	case Entities:
		return "entities"
	case Brushes:
		return "brushes"
	case Faces:
		return "faces"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

type ReadFunc func(*mapfile.Parser, mapfile.Builder, mapfile.Status) error

var (
	readers map[Mode]ReadFunc
)

func init() {
	readers = map[Mode]ReadFunc{
		Entities: (*mapfile.Parser).Parse,
		Brushes:  (*mapfile.Parser).ParseBrushes,
		Faces:    (*mapfile.Parser).ParseFaces,
	}
}

// Options configure a read. A zero Source is detected from the text, a
// zero Target is the source format.
type Options struct {
	Mode   Mode
	Source mapformat.Format
	Target mapformat.Format
}

// Sniff guesses the format of a text holding content of mode m.
func Sniff(text string, m Mode) (mapformat.Format, bool) {
	read, ok := readers[m]
	if !ok {
		return mapformat.Unknown, false
	}
	return mapfile.SniffWith(text, read)
}

// Detect returns the format of a text holding content of mode m. The
// "// Format:" comment wins over guessing. A "// Game:" comment naming a
// game that does not support the format is reported as a warning.
func Detect(text string, m Mode, s mapfile.Status) (mapformat.Format, error) {
	game := mapformat.ReadGameComment(text)
	name := mapformat.ReadFormatComment(text)
	f := mapformat.FromName(name)
	if name != "" && f == mapformat.Unknown {
		s.Warn(1, fmt.Sprintf("unknown map format %q", name))
	}
	if f == mapformat.Unknown {
		var ok bool
		if f, ok = Sniff(text, m); !ok {
			return mapformat.Unknown, errors.New("cannot detect the map format")
		}
	}
	if game == "" {
		return f, nil
	}
	if g, ok := mapformat.FindGame(game); !ok {
		s.Warn(1, fmt.Sprintf("unknown game %q", game))
	} else if !g.Supports(f) {
		s.Warn(1, fmt.Sprintf("game %s does not support the %v format", g.Name, f))
	}
	return f, nil
}

// Read parses a map text.
func Read(text string, o Options, s mapfile.Status) (*Map, error) {
	read, ok := readers[o.Mode]
	if !ok {
		return nil, errors.Errorf("unknown read mode %v", o.Mode)
	}
	if o.Source == mapformat.Unknown {
		f, err := Detect(text, o.Mode, s)
		if err != nil {
			return nil, err
		}
		o.Source = f
	}
	if o.Target == mapformat.Unknown {
		o.Target = o.Source
	}
	p, err := mapfile.New(text, o.Source, o.Target)
	if err != nil {
		return nil, err
	}
	b := NewBuilder(o.Mode)
	if err := read(p, b, s); err != nil {
		return nil, err
	}
	return b.Map(), nil
}

// Load reads a map file. The name may point into a pak archive, see
// pack.SplitPath.
func Load(name string, o Options, s mapfile.Status) (*Map, error) {
	data, err := pack.ReadFile(name)
	if err != nil {
		return nil, err
	}
	m, err := Read(string(data), o, s)
	if err != nil {
		return nil, errors.Wrapf(err, "File %s", name)
	}
	return m, nil
}
