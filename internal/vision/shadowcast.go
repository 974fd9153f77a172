package vision

// octant transform matrices.
// For each octant, a (dx, dy) sweep pair maps to a world offset via:
//   worldX = ox + dx*xx + dy*xy
//   worldY = oy + dx*yx + dy*yy
// where dx sweeps horizontally within the row and dy is the fixed row
// index. One canonical scan routine written for a single octant serves
// all eight through these remappings.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// ComputeVisible runs recursive shadowcasting from (ox, oy) and returns
// every cell within Euclidean distance radius that has an unobstructed
// line of sight from the origin. The origin itself is always included.
// A negative radius is clamped to 0, which yields exactly {origin}.
//
// The same map, origin, and radius always produce the same set. Cells
// on slope boundaries may be visible from one side only; that float
// tie behavior is part of the contract and kept as is.
func ComputeVisible(m ObstructionMap, ox, oy, radius int) Set {
	if radius < 0 {
		radius = 0
	}
	visible := NewSet()
	visible.Put(Point{X: ox, Y: oy})
	if radius == 0 {
		return visible
	}
	for _, t := range octants {
		castOctant(m, ox, oy, 1, 1.0, 0.0, radius, t[0], t[1], t[2], t[3], visible)
	}
	return visible
}

// castOctant scans one octant row by row, tracking the slope interval
// [start, end] that bounds the unobstructed beam.
//
//   - j is the current row (distance from origin along the main axis)
//   - dy = -j is fixed for the entire inner sweep
//   - dx sweeps from -j to 0 within the row
//   - lSlope = (dx - 0.5) / (dy + 0.5)   rSlope = (dx + 0.5) / (dy - 0.5)
//
// Cells with rSlope still above start have not been reached by the beam;
// once end exceeds lSlope the beam has narrowed past the rest of the row.
// Hitting an opaque cell spawns a child scan of the next row bounded at
// the blocker's left edge, then resumes past the blocking run with the
// start slope pulled in to the run's right edge. A row that ends while
// still blocked terminates the octant branch.
func castOctant(m ObstructionMap, ox, oy, row int, start, end float64, radius, xx, xy, yx, yy int, visible Set) {
	if start < end {
		return
	}
	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dy := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			wx := ox + dx*xx + dy*xy
			wy := oy + dx*yx + dy*yy

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			// Keep the cell when it is on the map and inside the sight
			// circle. Distance exactly equal to radius counts.
			if dx*dx+dy*dy <= radiusSq && m.InBounds(wx, wy) {
				visible.Put(Point{X: wx, Y: wy})
			}

			opaque := !m.InBounds(wx, wy) || !m.IsTransparent(wx, wy)

			if blocked {
				if opaque {
					// Still inside the wall run; keep pulling the
					// resume slope along its right edge.
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				// Entered a wall run: the space beyond it is only lit
				// through the beam left of the blocker.
				blocked = true
				castOctant(m, ox, oy, j+1, start, lSlope, radius, xx, xy, yx, yy, visible)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
