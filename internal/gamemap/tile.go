package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor // room floor
	TileCorridor
	TileDoor
	TileStairsDown
)

// Tile holds the terrain properties of one map cell. Walkable gates
// movement; Transparent gates sight. Visibility state is not stored
// here; the vision package owns it.
type Tile struct {
	Kind        TileKind
	Walkable    bool
	Transparent bool
}

// MakeWall returns a blocking, opaque wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Walkable: false, Transparent: false}
}

// MakeFloor returns a passable, transparent room-floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor, Walkable: true, Transparent: true}
}

// MakeCorridor returns a passable, transparent corridor tile.
func MakeCorridor() Tile {
	return Tile{Kind: TileCorridor, Walkable: true, Transparent: true}
}

// MakeDoor returns a door tile: passable but opaque.
func MakeDoor() Tile {
	return Tile{Kind: TileDoor, Walkable: true, Transparent: false}
}

// MakeStairsDown returns a downward staircase tile.
func MakeStairsDown() Tile {
	return Tile{Kind: TileStairsDown, Walkable: true, Transparent: true}
}
