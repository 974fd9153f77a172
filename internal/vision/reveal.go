package vision

// Room is an axis-aligned rectangular room on a level.
type Room struct {
	X, Y          int // top-left corner
	Width, Height int
}

// Contains reports whether (x, y) lies inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// ExpandRoomReveal implements the room-reveal sight policy: standing
// inside a room with any light discloses the whole room, not just the
// cells within sight radius.
//
// With radius 0 there is no light, so base is returned unchanged. When
// the origin is inside a room (first match wins; rooms are assumed not
// to overlap) the result is a new set holding base plus every room-floor
// cell of that room. An origin in a corridor, or with no rooms at all,
// gets plain radius-based vision: base comes back untouched.
func ExpandRoomReveal(base Set, m FloorMap, ox, oy, radius int, rooms []Room) Set {
	if radius <= 0 {
		return base
	}
	for _, r := range rooms {
		if !r.Contains(ox, oy) {
			continue
		}
		out := NewSet()
		base.Each(func(p Point) { out.Put(p) })
		for y := r.Y; y < r.Y+r.Height; y++ {
			for x := r.X; x < r.X+r.Width; x++ {
				if m.InBounds(x, y) && m.IsRoomFloor(x, y) {
					out.Put(Point{X: x, Y: y})
				}
			}
		}
		return out
	}
	return base
}

// ExpandFloodReveal is the room-reveal policy for irregular rooms: the
// room is discovered as the 4-connected component of room-floor cells
// around the origin rather than taken from a rectangle list. Corridor
// and wall cells bound the fill, so it never leaks into the rest of the
// level. An origin not on room floor gets base back unchanged.
func ExpandFloodReveal(base Set, m FloorMap, ox, oy, radius int) Set {
	if radius <= 0 || !m.InBounds(ox, oy) || !m.IsRoomFloor(ox, oy) {
		return base
	}
	out := NewSet()
	base.Each(func(p Point) { out.Put(p) })
	FloodRoom(m, ox, oy).Each(func(p Point) { out.Put(p) })
	return out
}

// FloodRoom returns the 4-connected room-floor component containing
// (ox, oy), or an empty set when the origin is not room floor.
func FloodRoom(m FloorMap, ox, oy int) Set {
	cells := NewSet()
	if !m.InBounds(ox, oy) || !m.IsRoomFloor(ox, oy) {
		return cells
	}
	cells.Put(Point{X: ox, Y: oy})
	queue := []Point{{X: ox, Y: oy}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			next := Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if cells.Has(next) || !m.InBounds(next.X, next.Y) || !m.IsRoomFloor(next.X, next.Y) {
				continue
			}
			cells.Put(next)
			queue = append(queue, next)
		}
	}
	return cells
}
