package component

import "gloamspire/internal/ecs"

const CEffects ecs.ComponentType = 4

// EffectKind describes what an active effect does.
type EffectKind uint8

const (
	EffectBlind   EffectKind = iota // suppresses all vision
	EffectLantern                   // adds Magnitude to light radius
)

// ActiveEffect is a timed status applied to an entity.
type ActiveEffect struct {
	Kind           EffectKind
	Magnitude      int
	TurnsRemaining int
}

type Effects struct {
	Active []ActiveEffect
}

func (Effects) Type() ecs.ComponentType { return CEffects }
