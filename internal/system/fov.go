package system

import (
	"gloamspire/internal/component"
	"gloamspire/internal/ecs"
	"gloamspire/internal/gamemap"
	"gloamspire/internal/vision"
)

// FOVResult carries the outputs of one FOV pass: the fresh visible set
// and the explored grid with this turn's sightings merged in. The input
// grid is never mutated; the caller installs Explored on its level state.
type FOVResult struct {
	Visible  vision.Set
	Explored *vision.ExploredGrid
}

// entityStatus adapts an entity's status effects to vision.ActorStatus.
type entityStatus struct {
	w  *ecs.World
	id ecs.EntityID
}

func (s entityStatus) Blind() bool {
	return HasEffect(s.w, s.id, component.EffectBlind)
}

// UpdateFOV recomputes what entity id can see on m and folds the result
// into explored. The pipeline runs the blindness gate, the shadowcasting
// sweep, the optional room reveal, then the exploration merge. A nil
// explored grid is
// created to match the map, so the first call on a fresh level works.
func UpdateFOV(w *ecs.World, m *gamemap.Map, id ecs.EntityID, explored *vision.ExploredGrid) FOVResult {
	if explored == nil {
		explored = vision.NewExploredGrid(m.Width, m.Height)
	}

	posComp := w.Get(id, component.CPosition)
	if posComp == nil {
		return FOVResult{Visible: vision.NewSet(), Explored: explored}
	}
	pos := posComp.(component.Position)

	radius := 0
	revealRooms := false
	if c := w.Get(id, component.CSight); c != nil {
		sight := c.(component.Sight)
		radius = sight.Radius + GetLightBonus(w, id)
		revealRooms = sight.RevealRooms
	}

	status := entityStatus{w: w, id: id}
	visible := vision.ComputeFOV(m, pos.X, pos.Y, radius, status)
	// Blindness beats room reveal: a blind actor sees nothing even when
	// standing in a lit room.
	if revealRooms && !status.Blind() {
		visible = vision.ExpandRoomReveal(visible, m, pos.X, pos.Y, radius, m.Rooms)
	}

	return FOVResult{Visible: visible, Explored: explored.Merge(visible)}
}
