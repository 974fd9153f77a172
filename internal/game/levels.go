package game

import (
	"math/rand"

	"gloamspire/internal/factory"
	"gloamspire/internal/generate"
)

const MaxFloors = 3

// DefaultLightRadius is the light radius used when the environment does
// not override it. Radius selection policy (torches, lanterns, fuel)
// lives with the caller, not the vision engine.
const DefaultLightRadius = 6

// monsterTables lists what can spawn on each floor.
var monsterTables = [MaxFloors + 1][]factory.MonsterDef{
	{}, // index 0 unused
	{
		{Glyph: "🦇", Name: "gloom bat", SightRange: 5},
		{Glyph: "🐀", Name: "spire rat", SightRange: 4},
	},
	{
		{Glyph: "🕷️", Name: "pale weaver", SightRange: 6},
		{Glyph: "🦇", Name: "gloom bat", SightRange: 5},
	},
	{
		{Glyph: "👁️", Name: "lidless watcher", SightRange: 8, GazeBlinds: true},
		{Glyph: "🕷️", Name: "pale weaver", SightRange: 6},
	},
}

// levelConfig builds a generate.Config for the given floor number.
func levelConfig(floor int, rng *rand.Rand) *generate.Config {
	return &generate.Config{
		MapWidth:    50 + 10*floor,
		MapHeight:   26 + 6*floor,
		MinLeafSize: 8,
		MaxLeafSize: 18,
		MinRoomSize: 4,
		RoomPadding: 1,
		Rand:        rng,
	}
}
