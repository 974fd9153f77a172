package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"gloamspire/internal/component"
	"gloamspire/internal/ecs"
	"gloamspire/internal/gamemap"
	"gloamspire/internal/vision"
)

// Renderer draws the game world onto a tcell screen. Every cell is
// classified per frame: visible cells draw bright, explored cells draw
// dim, unexplored cells stay blank. Entities appear only on visible
// cells.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	floor  int
}

// NewRenderer creates a Renderer for the given screen and floor theme.
func NewRenderer(screen tcell.Screen, floor int) *Renderer {
	w, h := screen.Size()
	// Reserve bottom 5 rows for the HUD.
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-5),
		floor:  floor,
	}
}

// CenterOn recenters the camera on world position (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// DrawFrame renders terrain and entities for the current turn.
func (r *Renderer) DrawFrame(w *ecs.World, m *gamemap.Map, visible vision.Set, explored *vision.ExploredGrid) {
	r.screen.Clear()
	r.drawMap(m, visible, explored)
	r.drawEntities(w, visible)
}

func (r *Renderer) drawMap(m *gamemap.Map, visible vision.Set, explored *vision.ExploredGrid) {
	fi := r.floor
	if fi < 1 || fi >= len(TileThemes) {
		fi = 1
	}
	theme := TileThemes[fi]
	style := tcell.StyleDefault.Background(tcell.ColorBlack)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			state := vision.Classify(x, y, visible, explored)
			if state == vision.Unexplored {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(x, y)
			if !onScreen {
				continue
			}

			var glyph string
			switch m.At(x, y).Kind {
			case gamemap.TileWall:
				glyph = pick(state, theme.Wall, theme.DimWall)
			case gamemap.TileCorridor:
				glyph = pick(state, theme.Corridor, theme.DimCorridor)
			case gamemap.TileDoor:
				glyph = "🚪"
			case gamemap.TileStairsDown:
				glyph = "🔽"
			default:
				glyph = pick(state, theme.Floor, theme.DimFloor)
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

// pick selects the bright or dim variant of a glyph by visibility state.
func pick(state vision.State, bright, dim string) string {
	if state == vision.Visible {
		return bright
	}
	return dim
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	order int
	pos   component.Position
	rend  component.Renderable
}

func (r *Renderer) drawEntities(w *ecs.World, visible vision.Set) {
	var entities []renderableEntity
	for _, id := range w.Query(component.CRenderable, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		rend := w.Get(id, component.CRenderable).(component.Renderable)
		// Entities on remembered-but-dark cells stay hidden: memory
		// records terrain, not occupants.
		if !visible.Has(vision.Point{X: pos.X, Y: pos.Y}) {
			continue
		}
		entities = append(entities, renderableEntity{order: rend.RenderOrder, pos: pos, rend: rend})
	}

	// Lower order draws first (behind).
	for i := 1; i < len(entities); i++ {
		for j := i; j > 0 && entities[j].order < entities[j-1].order; j-- {
			entities[j], entities[j-1] = entities[j-1], entities[j]
		}
	}

	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(tcell.ColorBlack)
		r.putGlyph(sx, sy, e.rend.Glyph, style)
	}
}

// DrawHUD renders the status bar and message log at the bottom.
func (r *Renderer) DrawHUD(floor, radius int, revealRooms, blind bool, messages []string) {
	_, screenH := r.screen.Size()
	hudY := screenH - 5

	r.drawHLine(hudY, tcell.ColorGray)

	mode := "radius"
	if revealRooms {
		mode = "room-reveal"
	}
	status := fmt.Sprintf("Floor: %d  Light: %d  Sight: %s", floor, radius, mode)
	if blind {
		status += "  [BLIND]"
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	start := len(messages) - 3
	if start < 0 {
		start = 0
	}
	for i, msg := range messages[start:] {
		r.drawText(0, hudY+2+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}

	r.screen.Show()
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col++
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen
// position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
