// Package factory assembles game entities from components.
package factory

import (
	"github.com/gdamore/tcell/v2"

	"gloamspire/internal/component"
	"gloamspire/internal/ecs"
)

// NewPlayer creates the player entity at (x, y) with the given base
// light radius.
func NewPlayer(w *ecs.World, x, y, lightRadius int, revealRooms bool) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Sight{Radius: lightRadius, RevealRooms: revealRooms})
	w.Add(id, component.Effects{})
	w.Add(id, component.Renderable{
		Glyph:       "🧝",
		Name:        "you",
		FGColor:     tcell.ColorYellow,
		RenderOrder: 10,
	})
	w.Add(id, component.TagPlayer{})
	w.Add(id, component.TagBlocking{})
	return id
}

// MonsterDef describes one monster kind.
type MonsterDef struct {
	Glyph      string
	Name       string
	SightRange int
	GazeBlinds bool
}

// NewMonster creates a monster entity at (x, y).
func NewMonster(w *ecs.World, def MonsterDef, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		Name:        def.Name,
		FGColor:     tcell.ColorRed,
		RenderOrder: 5,
	})
	w.Add(id, component.AI{SightRange: def.SightRange, GazeBlinds: def.GazeBlinds})
	w.Add(id, component.Effects{})
	w.Add(id, component.TagBlocking{})
	return id
}
