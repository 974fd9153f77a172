package generate

import "gloamspire/internal/gamemap"

// carveCorridor digs an L-shaped tunnel between (x1,y1) and (x2,y2).
// The elbow direction is random. Room floor already carved is left
// alone so corridors stay distinguishable from rooms.
func carveCorridor(m *gamemap.Map, x1, y1, x2, y2 int, cfg *Config) {
	if cfg.Rand.Intn(2) == 0 {
		carveH(m, x1, x2, y1)
		carveV(m, y1, y2, x2)
	} else {
		carveV(m, y1, y2, x1)
		carveH(m, x1, x2, y2)
	}
}

func carveH(m *gamemap.Map, x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		carveCell(m, x, y)
	}
}

func carveV(m *gamemap.Map, y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		carveCell(m, x, y)
	}
}

func carveCell(m *gamemap.Map, x, y int) {
	if m.InBounds(x, y) && m.At(x, y).Kind == gamemap.TileWall {
		m.Set(x, y, gamemap.MakeCorridor())
	}
}
