package render

// FloorTiles holds the emoji glyphs used to draw one floor's terrain.
// Emoji carry their own colors, so visible vs remembered-but-dark cells
// use distinct glyphs instead of terminal FG tinting.
type FloorTiles struct {
	Wall        string
	Floor       string
	Corridor    string
	DimWall     string // explored but not currently visible wall
	DimFloor    string // explored but not currently visible floor
	DimCorridor string
}

// TileThemes maps floor number (1-indexed) to its tile set.
var TileThemes = [4]FloorTiles{
	{}, // index 0 unused
	{
		// Floor 1 — Gloamspire Gate: worked stone
		Wall:        "🪨",
		Floor:       "⬜",
		Corridor:    "🟨",
		DimWall:     "🌑",
		DimFloor:    "🔲",
		DimCorridor: "🔲",
	},
	{
		// Floor 2 — Fungal Undercroft
		Wall:        "🍄",
		Floor:       "🌿",
		Corridor:    "🟫",
		DimWall:     "🌑",
		DimFloor:    "🔲",
		DimCorridor: "🔲",
	},
	{
		// Floor 3 — The Hollow Dark
		Wall:        "🧱",
		Floor:       "🟪",
		Corridor:    "🟫",
		DimWall:     "🌑",
		DimFloor:    "🔲",
		DimCorridor: "🔲",
	},
}
