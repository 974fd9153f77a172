package system

import (
	"gloamspire/internal/component"
	"gloamspire/internal/ecs"
	"gloamspire/internal/vision"
)

// Sighting reports a monster entering the player's field of view.
type Sighting struct {
	ID   ecs.EntityID
	Name string
}

// UpdateAwareness keeps each monster's Noticed flag in sync with the
// player's visible set and returns the monsters newly sighted this turn.
// Membership in the visible set is the only criterion; the notification
// layer decides what to do with a sighting.
func UpdateAwareness(w *ecs.World, visible vision.Set) []Sighting {
	var sightings []Sighting
	for _, id := range w.Query(component.CAI, component.CPosition) {
		ai := w.Get(id, component.CAI).(component.AI)
		pos := w.Get(id, component.CPosition).(component.Position)

		seen := visible.Has(vision.Point{X: pos.X, Y: pos.Y})
		if seen && !ai.Noticed {
			sightings = append(sightings, Sighting{ID: id, Name: entityName(w, id)})
		}
		if seen != ai.Noticed {
			ai.Noticed = seen
			w.Add(id, ai)
		}
	}
	return sightings
}

func entityName(w *ecs.World, id ecs.EntityID) string {
	c := w.Get(id, component.CRenderable)
	if c == nil {
		return "something"
	}
	return c.(component.Renderable).Name
}
