// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"fmt"

	"github.com/google/uuid"

	"quakemap/mapfile"
)

type Kind int

const (
	PointEntity Kind = iota
	BrushEntity
	World
	Layer
	Group
)

func (k Kind) String() string {
	switch k {
	case PointEntity:
		return "point"
	case BrushEntity:
		return "brush"
	case World:
		return "world"
	case Layer:
		return "layer"
	case Group:
		return "group"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

const (
	worldspawn  = "worldspawn"
	groupClass  = "func_group"
	typeKey     = "_tb_type"
	layerType   = "_tb_layer"
	groupType   = "_tb_group"
	layerParent = "_tb_layer"
	groupParent = "_tb_group"
)

// entityNamespace makes entity ids stable across parses of the same text.
var entityNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("quakemap:entity"))

type Brush struct {
	Line  int
	Faces []mapfile.Face
}

type Entity struct {
	ID         uuid.UUID
	Line       int
	properties []mapfile.Property
	Brushes    []Brush
	Patches    []mapfile.Patch
}

func NewEntity(ordinal, line int, p []mapfile.Property) *Entity {
	return &Entity{
		ID:         uuid.NewSHA1(entityNamespace, []byte(fmt.Sprintf("%d:%d", ordinal, line))),
		Line:       line,
		properties: p,
	}
}

func (e *Entity) Property(name string) (string, bool) {
	for _, p := range e.properties {
		if p.Key == name {
			return p.Value, true
		}
	}
	return "", false
}

func (e *Entity) Name() (string, bool) {
	return e.Property("classname")
}

// PropertyNames returns the keys in file order.
func (e *Entity) PropertyNames() []string {
	n := make([]string, 0, len(e.properties))
	for _, p := range e.properties {
		n = append(n, p.Key)
	}
	return n
}

func (e *Entity) Properties() []mapfile.Property {
	return e.properties
}

// Kind tells the world and the editor layers and groups, which are all
// stored as entities, from game entities.
func (e *Entity) Kind() Kind {
	name, _ := e.Name()
	switch name {
	case worldspawn:
		return World
	case groupClass:
		t, _ := e.Property(typeKey)
		switch t {
		case layerType:
			return Layer
		case groupType:
			return Group
		}
	}
	if len(e.Brushes) > 0 || len(e.Patches) > 0 {
		return BrushEntity
	}
	return PointEntity
}

// Parent returns the id of the group or layer the entity belongs to.
func (e *Entity) Parent() (string, bool) {
	if v, ok := e.Property(groupParent); ok {
		return v, true
	}
	return e.Property(layerParent)
}
