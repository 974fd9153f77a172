package render

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so world position (cx, cy) is in the
// middle of the viewport.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// WorldToScreen converts world coordinates to screen coordinates.
// onScreen is false when the position falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, onScreen bool) {
	sx = (wx - c.OffsetX) * 2
	sy = wy - c.OffsetY
	onScreen = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return sx, sy, onScreen
}
