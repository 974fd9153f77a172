package component

import "gloamspire/internal/ecs"

const CSight ecs.ComponentType = 3

// Sight holds an actor's vision parameters. Radius is the base light
// radius; the effective radius also counts active lantern effects.
// RevealRooms switches the actor to room-reveal sight, where standing
// inside a lit room discloses the whole room.
type Sight struct {
	Radius      int
	RevealRooms bool
}

func (Sight) Type() ecs.ComponentType { return CSight }
