package vision

// ExploredGrid is the persistent per-level memory of every cell that has
// ever been visible. Cells only ever flip false→true; nothing un-explores
// a cell. One grid exists per dungeon level and lives as long as the
// level does. The zero value is unusable; create with NewExploredGrid.
type ExploredGrid struct {
	width, height int
	cells         []bool
}

// NewExploredGrid returns an all-unexplored grid of the given size.
func NewExploredGrid(width, height int) *ExploredGrid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &ExploredGrid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

// Width returns the grid width in cells.
func (g *ExploredGrid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *ExploredGrid) Height() int { return g.height }

// At reports whether (x, y) has been explored. Out-of-bounds cells read
// as unexplored.
func (g *ExploredGrid) At(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.cells[y*g.width+x]
}

// Merge returns a new grid equal to g with every cell in visible marked
// explored. The receiver is left untouched, so callers holding the old
// grid keep a consistent snapshot. Points outside the grid are ignored,
// and an empty set produces a plain copy.
func (g *ExploredGrid) Merge(visible Set) *ExploredGrid {
	out := &ExploredGrid{
		width:  g.width,
		height: g.height,
		cells:  append([]bool(nil), g.cells...),
	}
	visible.Each(func(p Point) {
		if p.X >= 0 && p.Y >= 0 && p.X < out.width && p.Y < out.height {
			out.cells[p.Y*out.width+p.X] = true
		}
	})
	return out
}

// Count returns how many cells have been explored.
func (g *ExploredGrid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}
