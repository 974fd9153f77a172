package vision

import "testing"

func TestClassifyPriority(t *testing.T) {
	// Visible beats explored, explored beats nothing.
	visible := setOf(Point{2, 2})
	explored := NewExploredGrid(10, 10).Merge(setOf(Point{2, 2}, Point{4, 4}))

	if got := Classify(2, 2, visible, explored); got != Visible {
		t.Errorf("cell in both sets should classify Visible, got %v", got)
	}
	if got := Classify(4, 4, visible, explored); got != Explored {
		t.Errorf("explored-only cell should classify Explored, got %v", got)
	}
	if got := Classify(7, 7, visible, explored); got != Unexplored {
		t.Errorf("untouched cell should classify Unexplored, got %v", got)
	}
}

func TestClassifyOutOfBounds(t *testing.T) {
	visible := setOf(Point{0, 0})
	explored := NewExploredGrid(5, 5).Merge(visible)

	for _, p := range []Point{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if got := Classify(p.X, p.Y, visible, explored); got != Unexplored {
			t.Errorf("out-of-bounds %v should be Unexplored, got %v", p, got)
		}
	}
}

func TestClassifyNilGrid(t *testing.T) {
	visible := setOf(Point{1, 1})

	if got := Classify(1, 1, visible, nil); got != Visible {
		t.Errorf("visible cell with nil grid should still be Visible, got %v", got)
	}
	if got := Classify(2, 2, visible, nil); got != Unexplored {
		t.Errorf("nil grid should classify other cells Unexplored, got %v", got)
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		Unexplored: "unexplored",
		Explored:   "explored",
		Visible:    "visible",
	}
	for state, want := range cases {
		if state.String() != want {
			t.Errorf("State(%d).String() = %q, want %q", state, state.String(), want)
		}
	}
}
