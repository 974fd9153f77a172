package vision

// State is the three-way visibility classification of a cell. It is
// derived on demand and never stored.
type State uint8

const (
	Unexplored State = iota // never seen
	Explored                // seen before, currently dark
	Visible                 // in the current visible set
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Visible:
		return "visible"
	case Explored:
		return "explored"
	default:
		return "unexplored"
	}
}

// Classify decides how (x, y) should be treated this turn. Membership in
// the visible set wins over explored memory; anything else, including
// out-of-bounds positions, is unexplored. A nil explored grid reads as
// nothing explored.
func Classify(x, y int, visible Set, explored *ExploredGrid) State {
	if visible.Has(Point{X: x, Y: y}) {
		return Visible
	}
	if explored != nil && explored.At(x, y) {
		return Explored
	}
	return Unexplored
}
