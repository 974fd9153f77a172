package system

import (
	"gloamspire/internal/component"
	"gloamspire/internal/ecs"
	"gloamspire/internal/gamemap"
)

// MoveResult describes the outcome of a TryMove call.
type MoveResult uint8

const (
	MoveOK      MoveResult = iota // position updated
	MoveBlocked                   // wall, out-of-bounds, or occupied
)

// TryMove attempts to move entity id by (dx, dy) on m. The move is
// refused when the destination is impassable terrain or held by a
// blocking entity.
func TryMove(w *ecs.World, m *gamemap.Map, id ecs.EntityID, dx, dy int) MoveResult {
	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return MoveBlocked
	}
	pos := posComp.(component.Position)
	nx, ny := pos.X+dx, pos.Y+dy

	for _, other := range w.Query(component.CTagBlocking, component.CPosition) {
		if other == id {
			continue
		}
		otherPos := w.Get(other, component.CPosition).(component.Position)
		if otherPos.X == nx && otherPos.Y == ny {
			return MoveBlocked
		}
	}

	if !m.IsWalkable(nx, ny) {
		return MoveBlocked
	}

	w.Add(id, component.Position{X: nx, Y: ny})
	return MoveOK
}
