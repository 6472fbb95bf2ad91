// SPDX-License-Identifier: GPL-2.0-or-later

package mapfile

import (
	"quakemap/mapformat"
)

type counter struct {
	warnings int
	errors   int
}

func (c *counter) Warn(int, string) { c.warnings++ }
func (c *counter) Error(int, string) { c.errors++ }

type discard struct{}

func (discard) OnFaceComplete(Face) error { return nil }
func (discard) OnBrushComplete([]Face, int) error { return nil }
func (discard) OnPatchComplete(Patch, int) error { return nil }
func (discard) OnEntityComplete([]Property, int) error { return nil }
func (discard) OnEntityDiscarded(int) {}

// Sniff guesses the format of a map text by parsing it in every format.
// The format without errors and the fewest warnings wins, a tie goes to
// the format listed first by mapformat.Formats.
func Sniff(text string) (mapformat.Format, bool) {
	return SniffWith(text, (*Parser).Parse)
}

// SniffWith is Sniff for text read by another entry point, such as
// (*Parser).ParseBrushes for pasted brushes.
func SniffWith(text string, read func(*Parser, Builder, Status) error) (mapformat.Format, bool) {
	best, bestWarnings := mapformat.Unknown, 0
	for _, f := range mapformat.Formats() {
		p, err := New(text, f, f)
		if err != nil {
			continue
		}
		var c counter
		if err := read(p, discard{}, &c); err != nil {
			// Tokenizer errors do not depend on the format.
			return mapformat.Unknown, false
		}
		if c.errors > 0 {
			continue
		}
		if best == mapformat.Unknown || c.warnings < bestWarnings {
			best, bestWarnings = f, c.warnings
		}
	}
	return best, best != mapformat.Unknown
}
