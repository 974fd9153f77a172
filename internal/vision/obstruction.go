package vision

// ObstructionMap is the read-only view of a level the engine needs.
// Transparency, not walkability, governs sight: a closed door can be
// walkable-after-opening yet opaque, and a chasm can be impassable yet
// see-through.
type ObstructionMap interface {
	InBounds(x, y int) bool
	IsTransparent(x, y int) bool
}

// FloorMap extends ObstructionMap with the room-floor query used by the
// room-reveal expander. Corridor cells are floor but not room floor, so
// a flood fill over room floor stops at room boundaries.
type FloorMap interface {
	ObstructionMap
	IsRoomFloor(x, y int) bool
}
