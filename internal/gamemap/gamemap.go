// Package gamemap holds the tile grid and room list for one dungeon level.
package gamemap

import "gloamspire/internal/vision"

// Map is one dungeon level's terrain. It satisfies vision.ObstructionMap
// and vision.FloorMap, so the vision engine reads it directly.
type Map struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []vision.Room
}

// New creates a Map filled with walls.
func New(width, height int) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = MakeWall()
		}
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Panics if out of bounds.
func (m *Map) At(x, y int) Tile {
	return m.Tiles[y][x]
}

// Set replaces the tile at (x, y).
func (m *Map) Set(x, y int, t Tile) {
	m.Tiles[y][x] = t
}

// IsWalkable reports whether (x, y) is in bounds and passable.
func (m *Map) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Walkable
}

// IsTransparent reports whether (x, y) is in bounds and see-through.
func (m *Map) IsTransparent(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Transparent
}

// IsRoomFloor reports whether (x, y) is in bounds and room floor.
// Corridors are walkable but not room floor; stairs sit inside rooms.
func (m *Map) IsRoomFloor(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	k := m.Tiles[y][x].Kind
	return k == TileFloor || k == TileStairsDown
}

// RoomContaining returns the first room containing (x, y), if any.
// Rooms do not overlap, so at most one can match.
func (m *Map) RoomContaining(x, y int) (vision.Room, bool) {
	for _, r := range m.Rooms {
		if r.Contains(x, y) {
			return r, true
		}
	}
	return vision.Room{}, false
}
