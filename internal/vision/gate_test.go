package vision

import "testing"

type stubStatus struct {
	blind bool
}

func (s stubStatus) Blind() bool { return s.blind }

func TestComputeFOVBlindSeesNothing(t *testing.T) {
	// Blindness wins over everything, including the origin rule.
	m := openMap(20)
	visible := ComputeFOV(m, 10, 10, 10, stubStatus{blind: true})

	if visible.Size() != 0 {
		t.Fatalf("blind actor on a 20x20 open map should see 0 cells, got %d", visible.Size())
	}
	if visible.Has(Point{X: 10, Y: 10}) {
		t.Error("blind actor should not even see its own cell")
	}
}

func TestComputeFOVBlindAtRadiusZero(t *testing.T) {
	visible := ComputeFOV(openMap(10), 5, 5, 0, stubStatus{blind: true})
	if visible.Size() != 0 {
		t.Errorf("blindness overrides the radius-0 origin rule, got %d cells", visible.Size())
	}
}

func TestComputeFOVSightedDelegates(t *testing.T) {
	m := openMap(10)
	gated := ComputeFOV(m, 5, 5, 3, stubStatus{blind: false})
	direct := ComputeVisible(m, 5, 5, 3)

	if gated.Size() != direct.Size() {
		t.Fatalf("sighted gate should match the raw computation: %d vs %d", gated.Size(), direct.Size())
	}
	direct.Each(func(p Point) {
		if !gated.Has(p) {
			t.Errorf("cell %v missing from gated result", p)
		}
	})
}

func TestComputeFOVNilStatusIsSighted(t *testing.T) {
	visible := ComputeFOV(openMap(10), 5, 5, 2, nil)
	if !visible.Has(Point{X: 5, Y: 5}) {
		t.Error("nil status should be treated as sighted")
	}
}
