// Package vision computes what an actor can see on a dungeon level and
// remembers what has been seen. The exported surface is a pipeline:
// ComputeFOV (blindness gate over recursive shadowcasting), optional
// ExpandRoomReveal, ExploredGrid.Merge for persistent map memory, and
// Classify for per-cell rendering/AI decisions.
package vision

import "github.com/zyedidia/generic/mapset"

// Point is a map cell coordinate. Compared and hashed by value.
type Point struct {
	X, Y int
}

// Set holds the cells visible to one actor. It is recomputed on every
// FOV pass and never persisted; ExploredGrid is the persistent side.
type Set = mapset.Set[Point]

// NewSet returns an empty visible-cell set.
func NewSet() Set {
	return mapset.New[Point]()
}
