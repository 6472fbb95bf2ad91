// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

// Status receives the diagnostics of a parse. Parsing continues after both
// warnings and errors, an error means the construct at line was dropped.
type Status interface {
	Warn(line int, msg string)
	Error(line int, msg string)
}

// Builder receives the parsed constructs. The parser keeps nothing, every
// value passed to a Builder is owned by it.
//
// Faces are passed to OnFaceComplete first and then, collected, to
// OnBrushComplete. Brushes and patches belong to the entity passed to the
// next OnEntityComplete. If that entity turns out to be broken
// OnEntityDiscarded is called instead and they should be dropped.
//
// An error returned from a Builder method drops the construct it was called
// for, the parse continues.
type Builder interface {
	OnFaceComplete(face Face) error
	OnBrushComplete(faces []Face, line int) error
	OnPatchComplete(patch Patch, line int) error
	OnEntityComplete(properties []Property, line int) error
	OnEntityDiscarded(line int)
}
