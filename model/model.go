// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"quakemap/mapfile"
)

// Map is everything read from one text. Brushes, Patches and Faces are
// only set for clipboard text that has no enclosing entity.
type Map struct {
	Entities []*Entity
	Brushes  []Brush
	Patches  []mapfile.Patch
	Faces    []mapfile.Face
}

type Stats struct {
	Entities int
	Brushes  int
	Patches  int
	Faces    int
}

// World returns the first worldspawn entity.
func (m *Map) World() (*Entity, bool) {
	for _, e := range m.Entities {
		if e.Kind() == World {
			return e, true
		}
	}
	return nil, false
}

func (m *Map) Stats() Stats {
	var s Stats
	count := func(bs []Brush, ps []mapfile.Patch) {
		s.Brushes += len(bs)
		s.Patches += len(ps)
		for _, b := range bs {
			s.Faces += len(b.Faces)
		}
	}
	s.Entities = len(m.Entities)
	for _, e := range m.Entities {
		count(e.Brushes, e.Patches)
	}
	count(m.Brushes, m.Patches)
	s.Faces += len(m.Faces)
	return s
}
