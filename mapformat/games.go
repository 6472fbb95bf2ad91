// SPDX-License-Identifier: GPL-2.0-or-later

package mapformat

import (
	"bufio"
	"strings"
)

type Game struct {
	Name    string
	Formats []Format
}

var (
	GameQuake     = Game{"Quake", []Format{Standard, Valve}}
	GameQuake2    = Game{"Quake 2", []Format{Quake2, Quake2Valve}}
	GameHexen2    = Game{"Hexen 2", []Format{Hexen2, Standard, Valve}}
	GameDaikatana = Game{"Daikatana", []Format{Daikatana}}
	GameHalfLife  = Game{"Half-Life", []Format{Valve}}
	GameGeneric   = Game{"Generic", []Format{Standard, Valve, Quake2, Quake2Valve, Hexen2, Daikatana}}

	knownGame = []Game{GameQuake, GameQuake2, GameHexen2, GameDaikatana, GameHalfLife, GameGeneric}
)

func Games() []Game {
	return knownGame
}

// FindGame returns the known game with the given name.
func FindGame(name string) (Game, bool) {
	for _, g := range knownGame {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return Game{}, false
}

// Supports reports whether maps for g can be written in f.
func (g Game) Supports(f Format) bool {
	for _, gf := range g.Formats {
		if gf == f {
			return true
		}
	}
	return false
}

// readComment looks for "// <key>: value" among the comment lines at the
// start of text.
func readComment(text, key string) string {
	s := bufio.NewScanner(strings.NewReader(text))
	for s.Scan() {
		l := strings.TrimSpace(s.Text())
		if l == "" {
			continue
		}
		if !strings.HasPrefix(l, "//") {
			return ""
		}
		l = strings.TrimSpace(strings.TrimPrefix(l, "//"))
		if v, ok := strings.CutPrefix(l, key+":"); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// ReadGameComment returns the value of a leading "// Game: " comment.
func ReadGameComment(text string) string {
	return readComment(text, "Game")
}

// ReadFormatComment returns the value of a leading "// Format: " comment.
func ReadFormatComment(text string) string {
	return readComment(text, "Format")
}

// Hints returns the game and format named by the header comments of a map
// file. Unknown game names are dropped.
func Hints(text string) (string, Format) {
	game := ReadGameComment(text)
	if _, ok := FindGame(game); !ok {
		game = ""
	}
	return game, FromName(ReadFormatComment(text))
}
