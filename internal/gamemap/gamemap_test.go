package gamemap

import (
	"testing"

	"gloamspire/internal/vision"
)

func TestNewMapIsAllWalls(t *testing.T) {
	m := New(10, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 10; x++ {
			if m.At(x, y).Kind != TileWall {
				t.Fatalf("tile (%d,%d) should start as wall", x, y)
			}
		}
	}
}

func TestInBounds(t *testing.T) {
	m := New(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestTileProperties(t *testing.T) {
	m := New(5, 5)
	m.Set(1, 1, MakeFloor())
	m.Set(2, 1, MakeCorridor())
	m.Set(3, 1, MakeDoor())
	m.Set(1, 2, MakeStairsDown())

	if !m.IsWalkable(1, 1) || !m.IsTransparent(1, 1) {
		t.Error("floor should be walkable and transparent")
	}
	if m.IsWalkable(0, 0) || m.IsTransparent(0, 0) {
		t.Error("wall should be neither walkable nor transparent")
	}
	if !m.IsWalkable(3, 1) {
		t.Error("door should be walkable")
	}
	if m.IsTransparent(3, 1) {
		t.Error("closed door should block sight")
	}
	if !m.IsWalkable(1, 2) || !m.IsTransparent(1, 2) {
		t.Error("stairs should be walkable and transparent")
	}
	if m.IsWalkable(-1, 2) || m.IsTransparent(7, 7) {
		t.Error("out-of-bounds cells should be solid")
	}
}

func TestIsRoomFloor(t *testing.T) {
	// Corridors connect rooms but do not belong to them, so the reveal
	// policy must not treat them as room floor. Stairs sit inside rooms.
	m := New(5, 5)
	m.Set(1, 1, MakeFloor())
	m.Set(2, 1, MakeCorridor())
	m.Set(3, 1, MakeStairsDown())

	if !m.IsRoomFloor(1, 1) {
		t.Error("floor tile should be room floor")
	}
	if m.IsRoomFloor(2, 1) {
		t.Error("corridor tile should not be room floor")
	}
	if !m.IsRoomFloor(3, 1) {
		t.Error("stairs tile should count as room floor")
	}
	if m.IsRoomFloor(0, 0) || m.IsRoomFloor(-1, -1) {
		t.Error("walls and out-of-bounds cells are not room floor")
	}
}

func TestRoomContaining(t *testing.T) {
	m := New(20, 20)
	m.Rooms = []vision.Room{
		{X: 1, Y: 1, Width: 4, Height: 3},
		{X: 10, Y: 10, Width: 5, Height: 5},
	}

	if r, ok := m.RoomContaining(2, 2); !ok || r.X != 1 {
		t.Errorf("RoomContaining(2,2) = %+v, %v; want first room", r, ok)
	}
	if r, ok := m.RoomContaining(12, 13); !ok || r.X != 10 {
		t.Errorf("RoomContaining(12,13) = %+v, %v; want second room", r, ok)
	}
	if _, ok := m.RoomContaining(7, 7); ok {
		t.Error("corridor position should not belong to any room")
	}
}

func TestMapSatisfiesVisionInterfaces(t *testing.T) {
	var _ vision.ObstructionMap = New(3, 3)
	var _ vision.FloorMap = New(3, 3)
}
