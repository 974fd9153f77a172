package system

import (
	"gloamspire/internal/component"
	"gloamspire/internal/ecs"
	"gloamspire/internal/gamemap"
	"gloamspire/internal/vision"
)

// ProcessAI advances every monster one step. A monster chases the
// player while it stands in the player's visible set (sight in open
// space is reciprocal, so seeing the monster means it can see back) and
// the player is within its own sight range; otherwise it stays put.
func ProcessAI(w *ecs.World, m *gamemap.Map, playerID ecs.EntityID, visible vision.Set) {
	playerPosComp := w.Get(playerID, component.CPosition)
	if playerPosComp == nil {
		return
	}
	playerPos := playerPosComp.(component.Position)

	for _, id := range w.Query(component.CAI, component.CPosition) {
		ai := w.Get(id, component.CAI).(component.AI)
		pos := w.Get(id, component.CPosition).(component.Position)

		if !visible.Has(vision.Point{X: pos.X, Y: pos.Y}) {
			continue
		}
		dx := playerPos.X - pos.X
		dy := playerPos.Y - pos.Y
		if dx*dx+dy*dy > ai.SightRange*ai.SightRange {
			continue
		}

		stepX, stepY := sign(dx), sign(dy)
		// Don't walk onto the player's cell.
		if pos.X+stepX == playerPos.X && pos.Y+stepY == playerPos.Y {
			continue
		}
		if TryMove(w, m, id, stepX, stepY) == MoveOK {
			continue
		}
		// Slide along whichever axis is open.
		if stepX != 0 && TryMove(w, m, id, stepX, 0) == MoveOK {
			continue
		}
		if stepY != 0 {
			TryMove(w, m, id, 0, stepY)
		}
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
