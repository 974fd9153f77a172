package system

import (
	"gloamspire/internal/component"
	"gloamspire/internal/ecs"
)

// TickEffects decrements all active effects by one turn and removes
// expired ones.
func TickEffects(w *ecs.World) {
	for _, id := range w.Query(component.CEffects) {
		eff := w.Get(id, component.CEffects).(component.Effects)
		active := eff.Active[:0]
		for _, e := range eff.Active {
			e.TurnsRemaining--
			if e.TurnsRemaining > 0 {
				active = append(active, e)
			}
		}
		eff.Active = active
		w.Add(id, eff)
	}
}

// ApplyEffect adds an effect to an entity. An existing effect of the
// same kind is replaced when the new duration is longer.
func ApplyEffect(w *ecs.World, id ecs.EntityID, eff component.ActiveEffect) {
	effs := component.Effects{}
	if c := w.Get(id, component.CEffects); c != nil {
		effs = c.(component.Effects)
	}
	for i, e := range effs.Active {
		if e.Kind == eff.Kind {
			if eff.TurnsRemaining > e.TurnsRemaining {
				effs.Active[i] = eff
			}
			w.Add(id, effs)
			return
		}
	}
	effs.Active = append(effs.Active, eff)
	w.Add(id, effs)
}

// HasEffect reports whether an entity currently has an effect of the
// given kind.
func HasEffect(w *ecs.World, id ecs.EntityID, kind component.EffectKind) bool {
	c := w.Get(id, component.CEffects)
	if c == nil {
		return false
	}
	for _, e := range c.(component.Effects).Active {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// GetLightBonus returns the extra light radius from active lantern
// effects.
func GetLightBonus(w *ecs.World, id ecs.EntityID) int {
	c := w.Get(id, component.CEffects)
	if c == nil {
		return 0
	}
	total := 0
	for _, e := range c.(component.Effects).Active {
		if e.Kind == component.EffectLantern {
			total += e.Magnitude
		}
	}
	return total
}
