package vision

import "testing"

// testMap is a small ObstructionMap/FloorMap built from string rows:
// '#' wall (opaque), '.' room floor, ',' corridor (transparent floor
// that is not room floor).
type testMap struct {
	rows []string
}

func (m testMap) width() int  { return len(m.rows[0]) }
func (m testMap) height() int { return len(m.rows) }

func (m testMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width() && y < m.height()
}

func (m testMap) IsTransparent(x, y int) bool {
	return m.InBounds(x, y) && m.rows[y][x] != '#'
}

func (m testMap) IsRoomFloor(x, y int) bool {
	return m.InBounds(x, y) && m.rows[y][x] == '.'
}

// openMap returns a fully transparent square map.
func openMap(size int) testMap {
	row := ""
	for i := 0; i < size; i++ {
		row += "."
	}
	rows := make([]string, size)
	for i := range rows {
		rows[i] = row
	}
	return testMap{rows: rows}
}

func TestComputeVisibleOriginAlwaysIncluded(t *testing.T) {
	m := openMap(20)
	for _, radius := range []int{0, 1, 5, 10} {
		visible := ComputeVisible(m, 5, 5, radius)
		if !visible.Has(Point{X: 5, Y: 5}) {
			t.Errorf("radius %d: origin must be visible", radius)
		}
	}
}

func TestComputeVisibleRadiusZero(t *testing.T) {
	// No light still leaves the actor aware of its own cell, and only that.
	visible := ComputeVisible(openMap(10), 4, 7, 0)
	if visible.Size() != 1 {
		t.Fatalf("radius 0 should see exactly 1 cell, got %d", visible.Size())
	}
	if !visible.Has(Point{X: 4, Y: 7}) {
		t.Error("radius 0 should see exactly the origin")
	}
}

func TestComputeVisibleNegativeRadiusClampsToZero(t *testing.T) {
	visible := ComputeVisible(openMap(10), 5, 5, -3)
	if visible.Size() != 1 || !visible.Has(Point{X: 5, Y: 5}) {
		t.Errorf("negative radius should behave like radius 0, got %d cells", visible.Size())
	}
}

func TestComputeVisibleDistanceCutoffInclusive(t *testing.T) {
	// On an open map a cell exactly radius away along an axis is visible;
	// one step further is not.
	m := openMap(20)
	visible := ComputeVisible(m, 10, 10, 4)

	for _, p := range []Point{{10, 6}, {10, 14}, {6, 10}, {14, 10}} {
		if !visible.Has(p) {
			t.Errorf("cell %v at distance 4 should be visible with radius 4", p)
		}
	}
	for _, p := range []Point{{10, 5}, {10, 15}, {5, 10}, {15, 10}} {
		if visible.Has(p) {
			t.Errorf("cell %v at distance 5 should not be visible with radius 4", p)
		}
	}
	// Diagonal cells at Euclidean distance > radius stay dark even though
	// their row is processed.
	if visible.Has(Point{X: 14, Y: 14}) {
		t.Error("cell (14,14) at distance ~5.7 should not be visible with radius 4")
	}
}

func TestComputeVisibleTenByTenScenario(t *testing.T) {
	// 10x10 fully open level, origin (5,5), radius 3: three cells north
	// is lit, four is not.
	visible := ComputeVisible(openMap(10), 5, 5, 3)

	if visible.Size() <= 1 {
		t.Fatalf("expected more than the origin, got %d cells", visible.Size())
	}
	if !visible.Has(Point{X: 5, Y: 5}) {
		t.Error("origin (5,5) should be visible")
	}
	if !visible.Has(Point{X: 5, Y: 2}) {
		t.Error("cell (5,2) at distance 3 should be visible")
	}
	if visible.Has(Point{X: 5, Y: 1}) {
		t.Error("cell (5,1) at distance 4 should not be visible")
	}
}

func TestComputeVisibleWallBlocksCellsBehind(t *testing.T) {
	// A wall right next to the origin hides the cells straight behind it
	// while staying visible itself.
	m := testMap{rows: []string{
		"..........",
		"..........",
		"..........",
		"..........",
		".....#....",
		"..........",
		"..........",
		"..........",
		"..........",
		"..........",
	}}
	visible := ComputeVisible(m, 5, 5, 5)

	if !visible.Has(Point{X: 5, Y: 4}) {
		t.Error("the wall cell itself should be visible")
	}
	for _, p := range []Point{{5, 3}, {5, 2}, {5, 1}} {
		if visible.Has(p) {
			t.Errorf("cell %v behind the wall should be shadowed", p)
		}
	}
}

func TestComputeVisibleClosedRoom(t *testing.T) {
	// From the center of a sealed room, the interior and all its walls
	// are visible and nothing else is reachable.
	m := testMap{rows: []string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	}}
	visible := ComputeVisible(m, 2, 2, 10)

	if visible.Size() != 25 {
		t.Fatalf("sealed 5x5 room should expose all 25 cells, got %d", visible.Size())
	}
}

func TestComputeVisibleMapEdge(t *testing.T) {
	// An origin in the map corner must not panic and must only return
	// in-bounds cells.
	visible := ComputeVisible(openMap(8), 0, 0, 5)

	if !visible.Has(Point{X: 0, Y: 0}) {
		t.Error("corner origin should be visible")
	}
	visible.Each(func(p Point) {
		if p.X < 0 || p.Y < 0 || p.X >= 8 || p.Y >= 8 {
			t.Errorf("out-of-bounds cell %v in visible set", p)
		}
	})
}

func TestComputeVisibleDeterministic(t *testing.T) {
	m := testMap{rows: []string{
		"..........",
		"...#......",
		"..........",
		".....##...",
		"..........",
		"..#.......",
		"..........",
		"..........",
		"....#.....",
		"..........",
	}}
	a := ComputeVisible(m, 4, 4, 6)
	b := ComputeVisible(m, 4, 4, 6)

	if a.Size() != b.Size() {
		t.Fatalf("same input produced %d then %d cells", a.Size(), b.Size())
	}
	a.Each(func(p Point) {
		if !b.Has(p) {
			t.Errorf("cell %v present in first run only", p)
		}
	})
}

func TestComputeVisibleSymmetricInOpenSpace(t *testing.T) {
	// With nothing in the way, if A sees B then B sees A.
	m := openMap(20)
	a := Point{X: 3, Y: 4}
	b := Point{X: 7, Y: 7}

	fromA := ComputeVisible(m, a.X, a.Y, 10)
	fromB := ComputeVisible(m, b.X, b.Y, 10)

	if fromA.Has(b) != fromB.Has(a) {
		t.Errorf("open-space visibility should be reciprocal: A sees B = %v, B sees A = %v",
			fromA.Has(b), fromB.Has(a))
	}
	if !fromA.Has(b) {
		t.Error("B is well within radius and unobstructed, A should see it")
	}
}
