// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"google.golang.org/protobuf/types/known/structpb"

	"quakemap/mapfile"
	"quakemap/math/vec"
)

// Struct returns the map as a protobuf Struct, for dumping as JSON.
func (m *Map) Struct() (*structpb.Struct, error) {
	ents := make([]interface{}, 0, len(m.Entities))
	for _, e := range m.Entities {
		ents = append(ents, entityValue(e))
	}
	return structpb.NewStruct(map[string]interface{}{
		"entities": ents,
		"brushes":  brushValues(m.Brushes),
		"patches":  patchValues(m.Patches),
		"faces":    faceValues(m.Faces),
	})
}

func entityValue(e *Entity) map[string]interface{} {
	props := make([]interface{}, 0, len(e.properties))
	for _, p := range e.properties {
		props = append(props, map[string]interface{}{"key": p.Key, "value": p.Value})
	}
	v := map[string]interface{}{
		"id":         e.ID.String(),
		"line":       e.Line,
		"kind":       e.Kind().String(),
		"properties": props,
		"brushes":    brushValues(e.Brushes),
		"patches":    patchValues(e.Patches),
	}
	if p, ok := e.Parent(); ok {
		v["parent"] = p
	}
	return v
}

func vector(v vec.Vec3) []interface{} {
	return []interface{}{v[0], v[1], v[2]}
}

func pair(v [2]float64) []interface{} {
	return []interface{}{v[0], v[1]}
}

func brushValues(bs []Brush) []interface{} {
	r := make([]interface{}, 0, len(bs))
	for _, b := range bs {
		r = append(r, map[string]interface{}{
			"line":  b.Line,
			"faces": faceValues(b.Faces),
		})
	}
	return r
}

func faceValues(fs []mapfile.Face) []interface{} {
	r := make([]interface{}, 0, len(fs))
	for _, f := range fs {
		pr := f.Projection
		v := map[string]interface{}{
			"line":     f.Line,
			"points":   []interface{}{vector(f.Points[0]), vector(f.Points[1]), vector(f.Points[2])},
			"texture":  f.Texture,
			"offset":   pair(pr.Offset),
			"rotation": pr.Rotation,
			"scale":    pair(pr.Scale),
		}
		if pr.Axes != nil {
			v["uAxis"] = vector(pr.Axes.U)
			v["vAxis"] = vector(pr.Axes.V)
		}
		if s := f.Surface; s != nil {
			v["surface"] = map[string]interface{}{
				"contents": s.Contents,
				"flags":    s.Flags,
				"value":    s.Value,
			}
		}
		if c := f.Color; c != nil {
			v["color"] = []interface{}{c.R, c.G, c.B}
		}
		r = append(r, v)
	}
	return r
}

func patchValues(ps []mapfile.Patch) []interface{} {
	r := make([]interface{}, 0, len(ps))
	for _, p := range ps {
		points := make([]interface{}, 0, len(p.Points))
		for _, cp := range p.Points {
			points = append(points, []interface{}{
				cp.Position[0], cp.Position[1], cp.Position[2], cp.UV[0], cp.UV[1],
			})
		}
		r = append(r, map[string]interface{}{
			"line":    p.Line,
			"texture": p.Texture,
			"rows":    p.Rows,
			"columns": p.Columns,
			"points":  points,
		})
	}
	return r
}
