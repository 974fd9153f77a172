package component

import "gloamspire/internal/ecs"

const CAI ecs.ComponentType = 5

// AI marks a monster that reacts to being seen. Noticed persists while
// the monster stays in the player's sight and resets once it drops out.
type AI struct {
	SightRange int
	GazeBlinds bool // standing next to this monster blinds the player
	Noticed    bool
}

func (AI) Type() ecs.ComponentType { return CAI }
