// SPDX-License-Identifier: GPL-2.0-or-later

// Package mapformat describes the face dialects of .map files and the block
// structures that can appear in any of them.
package mapformat

import (
	"strings"
)

// Format is the face dialect of a map file.
type Format int

const (
	Unknown Format = iota
	Standard
	Valve
	Quake2
	Quake2Valve
	Hexen2
	Daikatana
)

// Formats lists all known formats. Plain dialects come before the ones
// extending them, so guessing by content prefers the simpler reading.
func Formats() []Format {
	return []Format{Standard, Quake2, Valve, Quake2Valve, Hexen2, Daikatana}
}

func (f Format) String() string {
	switch f {
	case Standard:
		return "Standard"
	case Valve:
		return "Valve"
	case Quake2:
		return "Quake2"
	case Quake2Valve:
		return "Quake2 (Valve)"
	case Hexen2:
		return "Hexen2"
	case Daikatana:
		return "Daikatana"
	default:
		return "Unknown"
	}
}

func (f Format) Valid() bool {
	switch f {
	case Standard, Valve, Quake2, Quake2Valve, Hexen2, Daikatana:
		return true
	default:
		return false
	}
}

// ExplicitAxes reports whether faces carry their texture axes as vectors.
func (f Format) ExplicitAxes() bool {
	switch f {
	case Valve, Quake2Valve:
		return true
	case Standard, Quake2, Hexen2, Daikatana:
		return false
	default:
		return false
	}
}

// SurfaceAttributes reports whether faces carry content flags, surface flags
// and a surface value.
func (f Format) SurfaceAttributes() bool {
	switch f {
	case Quake2, Quake2Valve, Daikatana:
		return true
	case Standard, Valve, Hexen2:
		return false
	default:
		return false
	}
}

// Color reports whether faces carry a surface color.
func (f Format) Color() bool {
	switch f {
	case Daikatana:
		return true
	default:
		return false
	}
}

var aliases = map[string]Format{
	"standard":       Standard,
	"quake":          Standard,
	"valve":          Valve,
	"valve220":       Valve,
	"quake2":         Quake2,
	"q2":             Quake2,
	"quake2 (valve)": Quake2Valve,
	"quake2valve":    Quake2Valve,
	"q2valve":        Quake2Valve,
	"hexen2":         Hexen2,
	"daikatana":      Daikatana,
}

// FromName returns the format with the given name or Unknown.
func FromName(name string) Format {
	if f, ok := aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f
	}
	return Unknown
}

// Structure is the kind of a block nested in an entity. It is independent of
// the face format, a file can mix all of them.
type Structure int

const (
	Brush Structure = iota
	BrushPrimitive
	Patch
)

func (s Structure) String() string {
	switch s {
	case Brush:
		return "brush"
	case BrushPrimitive:
		return "brush primitive"
	case Patch:
		return "patch"
	default:
		return "unknown"
	}
}
