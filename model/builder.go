// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"quakemap/mapfile"
)

// Builder collects the constructs of a parse into a Map.
type Builder struct {
	m         Map
	mode      Mode
	brushes   []Brush
	patches   []mapfile.Patch
	discarded int
}

func NewBuilder(mode Mode) *Builder {
	return &Builder{mode: mode}
}

func (b *Builder) OnFaceComplete(f mapfile.Face) error {
	if b.mode == Faces {
		b.m.Faces = append(b.m.Faces, f)
	}
	return nil
}

func (b *Builder) OnBrushComplete(faces []mapfile.Face, line int) error {
	b.brushes = append(b.brushes, Brush{Line: line, Faces: faces})
	return nil
}

func (b *Builder) OnPatchComplete(p mapfile.Patch, line int) error {
	b.patches = append(b.patches, p)
	return nil
}

func (b *Builder) OnEntityComplete(p []mapfile.Property, line int) error {
	e := NewEntity(len(b.m.Entities)+b.discarded, line, p)
	e.Brushes, e.Patches = b.brushes, b.patches
	b.brushes, b.patches = nil, nil
	b.m.Entities = append(b.m.Entities, e)
	return nil
}

func (b *Builder) OnEntityDiscarded(line int) {
	b.brushes, b.patches = nil, nil
	b.discarded++
}

// Map returns the result. Brushes and patches outside of entities end up
// in the Map itself.
func (b *Builder) Map() *Map {
	m := b.m
	m.Brushes = append(m.Brushes, b.brushes...)
	m.Patches = append(m.Patches, b.patches...)
	return &m
}
