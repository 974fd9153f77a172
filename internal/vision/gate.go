package vision

import (
	"github.com/sirupsen/logrus"

	"gloamspire/internal/logger"
)

// ActorStatus is the snapshot of an actor's status effects the gate
// consults. The engine never interprets durations or stacking, only the
// boolean answer.
type ActorStatus interface {
	Blind() bool
}

// ComputeFOV is the front door of the engine: it applies the blindness
// override and otherwise delegates to the shadowcasting sweep.
//
// A blind actor sees nothing at all, not even its own cell, no matter
// the radius, the map, or any other status effects present. A nil
// status means no status information is available and the actor is
// treated as sighted.
func ComputeFOV(m ObstructionMap, ox, oy, radius int, status ActorStatus) Set {
	fovLog := logger.Log.WithFields(logrus.Fields{
		"component": "vision",
		"origin_x":  ox,
		"origin_y":  oy,
		"radius":    radius,
	})

	if status != nil && status.Blind() {
		fovLog.Debug("FOV suppressed for blind actor.")
		return NewSet()
	}

	visible := ComputeVisible(m, ox, oy, radius)
	fovLog.WithField("visible_cells", visible.Size()).Debug("FOV computed.")
	return visible
}
