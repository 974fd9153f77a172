package system

import (
	"testing"

	"gloamspire/internal/component"
	"gloamspire/internal/ecs"
)

func TestApplyEffectAndHasEffect(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()

	if HasEffect(w, id, component.EffectBlind) {
		t.Fatal("fresh entity should have no effects")
	}

	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectBlind, TurnsRemaining: 4})
	if !HasEffect(w, id, component.EffectBlind) {
		t.Error("blind effect should be active after apply")
	}
	if HasEffect(w, id, component.EffectLantern) {
		t.Error("lantern effect was never applied")
	}
}

func TestApplyEffectKeepsLongerDuration(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()

	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectBlind, TurnsRemaining: 5})
	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectBlind, TurnsRemaining: 2})

	eff := w.Get(id, component.CEffects).(component.Effects)
	if len(eff.Active) != 1 {
		t.Fatalf("same-kind effects should not stack, got %d entries", len(eff.Active))
	}
	if eff.Active[0].TurnsRemaining != 5 {
		t.Errorf("shorter reapplication should not shorten the effect, got %d turns", eff.Active[0].TurnsRemaining)
	}

	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectBlind, TurnsRemaining: 9})
	eff = w.Get(id, component.CEffects).(component.Effects)
	if eff.Active[0].TurnsRemaining != 9 {
		t.Errorf("longer reapplication should extend the effect, got %d turns", eff.Active[0].TurnsRemaining)
	}
}

func TestTickEffectsExpires(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()
	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectBlind, TurnsRemaining: 2})
	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectLantern, Magnitude: 2, TurnsRemaining: 5})

	TickEffects(w)
	if !HasEffect(w, id, component.EffectBlind) {
		t.Fatal("blind effect should survive the first tick")
	}

	TickEffects(w)
	if HasEffect(w, id, component.EffectBlind) {
		t.Error("blind effect should expire after two ticks")
	}
	if !HasEffect(w, id, component.EffectLantern) {
		t.Error("lantern effect should still be running")
	}
}

func TestGetLightBonus(t *testing.T) {
	w := ecs.NewWorld()
	id := w.CreateEntity()

	if GetLightBonus(w, id) != 0 {
		t.Error("no effects means no bonus")
	}

	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectLantern, Magnitude: 3, TurnsRemaining: 10})
	ApplyEffect(w, id, component.ActiveEffect{Kind: component.EffectBlind, TurnsRemaining: 2})

	if got := GetLightBonus(w, id); got != 3 {
		t.Errorf("lantern magnitude should be 3, got %d", got)
	}
}
