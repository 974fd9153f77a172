// Package generate builds dungeon levels: BSP-partitioned rooms joined
// by L-shaped corridors.
package generate

import (
	"math/rand"

	"gloamspire/internal/gamemap"
	"gloamspire/internal/vision"
)

// Config drives procedural generation for one floor.
type Config struct {
	MapWidth, MapHeight int
	MinLeafSize         int
	MaxLeafSize         int
	MinRoomSize         int
	RoomPadding         int
	Rand                *rand.Rand
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *vision.Room
}

// split divides the leaf in two, returning false when it is too small.
func (l *bspLeaf) split(cfg *Config) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Split across the longer dimension; random for near-square leaves.
	splitH := cfg.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	if maxSize <= cfg.MinLeafSize*2 {
		return false
	}

	lo := cfg.MinLeafSize
	hi := maxSize - cfg.MinLeafSize
	if lo >= hi {
		return false
	}
	at := lo + cfg.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &bspLeaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &bspLeaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// carveRooms recursively places a room inside every terminal leaf.
func (l *bspLeaf) carveRooms(m *gamemap.Map, cfg *Config) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.carveRooms(m, cfg)
		}
		if l.right != nil {
			l.right.carveRooms(m, cfg)
		}
		return
	}

	pad := cfg.RoomPadding
	availW := max(cfg.MinRoomSize, l.W-2*pad)
	availH := max(cfg.MinRoomSize, l.H-2*pad)

	rw := cfg.MinRoomSize + cfg.Rand.Intn(max(1, availW-cfg.MinRoomSize+1))
	rh := cfg.MinRoomSize + cfg.Rand.Intn(max(1, availH-cfg.MinRoomSize+1))
	rw = min(rw, l.W-2*pad)
	rh = min(rh, l.H-2*pad)
	rw = max(rw, 3)
	rh = max(rh, 3)

	rx := l.X + pad + cfg.Rand.Intn(max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + cfg.Rand.Intn(max(1, l.H-rh-2*pad+1))

	// Clamp to map bounds, leaving a 1-tile wall border.
	rx = max(rx, 1)
	ry = max(ry, 1)
	if rx+rw >= m.Width {
		rw = m.Width - rx - 1
	}
	if ry+rh >= m.Height {
		rh = m.Height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	room := vision.Room{X: rx, Y: ry, Width: rw, Height: rh}
	l.room = &room
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			m.Set(x, y, gamemap.MakeFloor())
		}
	}
	m.Rooms = append(m.Rooms, room)
}

// anyRoom returns a room from this subtree, if one was placed.
func (l *bspLeaf) anyRoom() *vision.Room {
	if l.room != nil {
		return l.room
	}
	if l.left != nil {
		if r := l.left.anyRoom(); r != nil {
			return r
		}
	}
	if l.right != nil {
		return l.right.anyRoom()
	}
	return nil
}

// connectChildren carves corridors between the two halves of every split.
func (l *bspLeaf) connectChildren(m *gamemap.Map, cfg *Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(m, cfg)
	l.right.connectChildren(m, cfg)

	lRoom := l.left.anyRoom()
	rRoom := l.right.anyRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lx, ly := roomCenter(*lRoom)
	rx, ry := roomCenter(*rRoom)
	carveCorridor(m, lx, ly, rx, ry, cfg)
}

func roomCenter(r vision.Room) (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Generate builds a level and returns it with the player start position.
// The start is the center of the first room; the last room gets the
// stairs down.
func Generate(cfg *Config) (*gamemap.Map, int, int) {
	m := gamemap.New(cfg.MapWidth, cfg.MapHeight)
	root := &bspLeaf{X: 0, Y: 0, W: cfg.MapWidth, H: cfg.MapHeight}

	leaves := []*bspLeaf{root}
	for again := true; again; {
		again = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > cfg.MaxLeafSize || leaf.H > cfg.MaxLeafSize || cfg.Rand.Float64() > 0.25 {
				if leaf.split(cfg) {
					next = append(next, leaf.left, leaf.right)
					again = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.carveRooms(m, cfg)
	root.connectChildren(m, cfg)

	px, py := cfg.MapWidth/2, cfg.MapHeight/2
	if len(m.Rooms) > 0 {
		px, py = roomCenter(m.Rooms[0])
		sx, sy := roomCenter(m.Rooms[len(m.Rooms)-1])
		m.Set(sx, sy, gamemap.MakeStairsDown())
	}
	return m, px, py
}
