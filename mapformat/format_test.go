// SPDX-License-Identifier: GPL-2.0-or-later

package mapformat

import "testing"

func TestFromName(t *testing.T) {
	for _, f := range Formats() {
		if got := FromName(f.String()); got != f {
			t.Errorf("FromName(%q) = %v want %v", f.String(), got, f)
		}
	}
	for _, tc := range []struct {
		in   string
		want Format
	}{
		{"quake", Standard},
		{" Valve220 ", Valve},
		{"q2valve", Quake2Valve},
		{"quake3", Unknown},
		{"", Unknown},
	} {
		if got := FromName(tc.in); got != tc.want {
			t.Errorf("FromName(%q) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestCapabilities(t *testing.T) {
	for _, tc := range []struct {
		f                      Format
		explicit, surface, col bool
	}{
		{Standard, false, false, false},
		{Valve, true, false, false},
		{Quake2, false, true, false},
		{Quake2Valve, true, true, false},
		{Hexen2, false, false, false},
		{Daikatana, false, true, true},
		{Unknown, false, false, false},
	} {
		if tc.f.ExplicitAxes() != tc.explicit || tc.f.SurfaceAttributes() != tc.surface || tc.f.Color() != tc.col {
			t.Errorf("capabilities of %v = %v %v %v want %v %v %v", tc.f,
				tc.f.ExplicitAxes(), tc.f.SurfaceAttributes(), tc.f.Color(),
				tc.explicit, tc.surface, tc.col)
		}
	}
	if Unknown.Valid() {
		t.Errorf("Unknown is valid")
	}
}

func TestHints(t *testing.T) {
	text := "// Game: Quake 2\n// Format: Quake2\n// entity 0\n{\n\"classname\" \"worldspawn\"\n}\n"
	game, f := Hints(text)
	if game != "Quake 2" || f != Quake2 {
		t.Errorf("Hints = %q, %v want \"Quake 2\", Quake2", game, f)
	}
	game, f = Hints("// Game: Doom 7\n// Format: Valve\n{\n}\n")
	if game != "" || f != Valve {
		t.Errorf("Hints = %q, %v want \"\", Valve", game, f)
	}
	game, f = Hints("{\n// Format: Valve\n}\n")
	if game != "" || f != Unknown {
		t.Errorf("Hints after first block = %q, %v", game, f)
	}
}

func TestGameSupports(t *testing.T) {
	g, ok := FindGame("half-life")
	if !ok {
		t.Fatalf("FindGame(half-life) failed")
	}
	if !g.Supports(Valve) || g.Supports(Standard) {
		t.Errorf("Half-Life formats = %v", g.Formats)
	}
}

func TestFormatsOrder(t *testing.T) {
	want := []Format{Standard, Quake2, Valve, Quake2Valve, Hexen2, Daikatana}
	got := Formats()
	if len(got) != len(want) {
		t.Fatalf("Formats() = %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Formats()[%d] = %v want %v", i, got[i], want[i])
		}
	}
}
