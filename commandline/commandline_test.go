// SPDX-License-Identifier: GPL-2.0-or-later

package commandline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"quakemap/pack"
)

const face = "( 0 0 0 ) ( 0 1 0 ) ( 1 0 0 ) tex 0 0 0 1 1\n"

const startMap = "// Game: Quake\n{\n\"classname\" \"worldspawn\"\n{\n" + face + face + face + "}\n}\n" +
	"{\n\"classname\" \"light\"\n\"origin\" \"0 0 64\"\n}\n"

func writeMap(t *testing.T, text string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "test.map")
	require.NoError(t, os.WriteFile(name, []byte(text), 0o644))
	return name
}

func run(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDetect(t *testing.T) {
	out, err := run("detect", writeMap(t, startMap))
	require.NoError(t, err)
	assert.Equal(t, "game: Quake\nformat: Standard (from content)\n", out)

	out, err = run("detect", writeMap(t, "// Format: Valve\n"))
	require.NoError(t, err)
	assert.Equal(t, "format: Valve (from header)\n", out)

	_, err = run("detect", writeMap(t, "{ ( 1 ) }"))
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	name := writeMap(t, startMap)
	out, err := run("check", name)
	require.NoError(t, err)
	assert.Equal(t, name+": 2 entities, 1 brushes, 0 patches, 3 faces\n", out)

	bad := writeMap(t, "{\n\"classname\" \"worldspawn\"\n{\n"+face+"( 0 0 0 ) ( 1 1 1 ) ( 2 2 2 ) tex 0 0 0 1 1\n}\n}\n")
	out, err = run("check", "-f", "standard", bad)
	assert.Error(t, err)
	assert.Contains(t, out, bad+":5: error: skipping face: points are collinear")
	assert.Contains(t, out, bad+":3: warning: ")
}

func TestCheckYAML(t *testing.T) {
	name := writeMap(t, "{\n\"a\" \"1\"\n\"a\" \"2\"\n}\n")
	out, err := run("check", "--report", "yaml", name)
	require.NoError(t, err)
	var r struct {
		File        string `yaml:"file"`
		Format      string `yaml:"format"`
		Stats       map[string]int
		Diagnostics []struct {
			Severity string `yaml:"severity"`
			Line     int    `yaml:"line"`
			Message  string `yaml:"message"`
		}
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, name, r.File)
	assert.Equal(t, "Standard", r.Format)
	assert.Equal(t, 1, r.Stats["entities"])
	require.Len(t, r.Diagnostics, 1)
	assert.Equal(t, "warning", r.Diagnostics[0].Severity)
	assert.Equal(t, 3, r.Diagnostics[0].Line)

	_, err = run("check", "--report", "xml", name)
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	name := writeMap(t, startMap)
	out, err := run("convert", "-t", "valve", name)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "// Game: Quake\n// Format: Valve\n"), out)
	assert.Contains(t, out, "tex [ 1 0 0 0 ] [ 0 -1 0 0 ] 0 1 1\n")

	dest := filepath.Join(t.TempDir(), "out.map")
	_, err = run("convert", "-t", "quake2", "-o", dest, name)
	require.NoError(t, err)
	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	// Quake has no Quake 2 format maps
	assert.True(t, strings.HasPrefix(string(data), "// Format: Quake2\n"), string(data))
	assert.Contains(t, string(data), "tex 0 0 0 1 1 0 0 0\n")

	_, err = run("convert", name)
	assert.Error(t, err)
	_, err = run("convert", "-t", "doom", name)
	assert.Error(t, err)
}

func TestDump(t *testing.T) {
	out, err := run("dump", writeMap(t, startMap))
	require.NoError(t, err)
	var v struct {
		Entities []struct {
			Kind       string `json:"kind"`
			Properties []struct {
				Key   string `json:"key"`
				Value string `json:"value"`
			} `json:"properties"`
		} `json:"entities"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Len(t, v.Entities, 2)
	assert.Equal(t, "world", v.Entities[0].Kind)
	assert.Equal(t, "origin", v.Entities[1].Properties[1].Key)
}

func TestMode(t *testing.T) {
	name := writeMap(t, face+face)
	out, err := run("check", "--mode", "faces", "-f", "standard", name)
	require.NoError(t, err)
	assert.Contains(t, out, "0 brushes, 0 patches, 2 faces")

	out, err = run("check", "--mode", "faces", name)
	require.NoError(t, err)
	assert.Contains(t, out, "0 brushes, 0 patches, 2 faces")

	out, err = run("detect", "--mode", "faces", name)
	require.NoError(t, err)
	assert.Contains(t, out, "format: Standard (from content)")

	_, err = run("check", "--mode", "planes", name)
	assert.Error(t, err)
}

func TestPak(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, pack.Write(&b, []pack.File{
		{Name: "maps/start.map", Data: []byte(startMap)},
		{Name: "progs.dat", Data: []byte{0}},
	}))
	name := filepath.Join(t.TempDir(), "pak0.pak")
	require.NoError(t, os.WriteFile(name, b.Bytes(), 0o644))

	out, err := run("list", name)
	require.NoError(t, err)
	assert.Equal(t, name+":maps/start.map\n", out)

	out, err = run("check", name+":maps/start.map")
	require.NoError(t, err)
	assert.Contains(t, out, "2 entities, 1 brushes")
}
