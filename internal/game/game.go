// Package game runs the turn loop that ties input, movement, vision,
// and rendering together.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"gloamspire/internal/component"
	"gloamspire/internal/ecs"
	"gloamspire/internal/factory"
	"gloamspire/internal/gamemap"
	"gloamspire/internal/generate"
	"gloamspire/internal/logger"
	"gloamspire/internal/render"
	"gloamspire/internal/system"
	"gloamspire/internal/telemetry"
	"gloamspire/internal/vision"
)

// Game is the top-level orchestrator.
type Game struct {
	screen      tcell.Screen
	renderer    *render.Renderer
	world       *ecs.World
	gmap        *gamemap.Map
	playerID    ecs.EntityID
	rng         *rand.Rand
	tracer      trace.Tracer
	floor       int
	turn        int
	lightRadius int
	revealRooms bool
	visible     vision.Set
	explored    *vision.ExploredGrid
	messages    []string
}

// Options configure a new Game.
type Options struct {
	Seed        int64 // 0 picks a random seed
	LightRadius int   // 0 uses DefaultLightRadius
	RevealRooms bool  // start in room-reveal sight mode
}

// New creates a Game with the terminal screen initialized.
func New(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	radius := opts.LightRadius
	if radius <= 0 {
		radius = DefaultLightRadius
	}

	g := &Game{
		screen:      screen,
		rng:         rand.New(rand.NewSource(seed)),
		tracer:      telemetry.Tracer("game"),
		lightRadius: radius,
		revealRooms: opts.RevealRooms,
	}
	logger.Log.WithField("seed", seed).Info("World seeded.")
	return g, nil
}

// loadFloor generates and populates the given floor.
func (g *Game) loadFloor(floor int) {
	g.floor = floor
	g.world = ecs.NewWorld()

	m, px, py := generate.Generate(levelConfig(floor, g.rng))
	g.gmap = m
	g.explored = vision.NewExploredGrid(m.Width, m.Height)

	g.playerID = factory.NewPlayer(g.world, px, py, g.lightRadius, g.revealRooms)
	g.spawnMonsters(floor)

	g.refreshFOV()
	g.renderer = render.NewRenderer(g.screen, floor)
	g.renderer.CenterOn(px, py)

	g.addMessage(fmt.Sprintf("You descend to floor %d of the Gloamspire.", floor))
}

// spawnMonsters scatters this floor's monsters across rooms other than
// the player's starting room.
func (g *Game) spawnMonsters(floor int) {
	table := monsterTables[floor]
	if len(table) == 0 || len(g.gmap.Rooms) < 2 {
		return
	}
	count := 2 + floor
	for i := 0; i < count; i++ {
		room := g.gmap.Rooms[1+g.rng.Intn(len(g.gmap.Rooms)-1)]
		x := room.X + g.rng.Intn(room.Width)
		y := room.Y + g.rng.Intn(room.Height)
		if !g.gmap.IsWalkable(x, y) {
			continue
		}
		def := table[g.rng.Intn(len(table))]
		factory.NewMonster(g.world, def, x, y)
	}
}

// refreshFOV recomputes the player's visible set and merges it into the
// floor's exploration memory.
func (g *Game) refreshFOV() {
	res := system.UpdateFOV(g.world, g.gmap, g.playerID, g.explored)
	g.visible = res.Visible
	g.explored = res.Explored
}

// Run is the main game loop.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()

	g.loadFloor(1)
	g.addMessage("hjklyubn/arrows move, . waits, v toggles room-reveal, > descends, q quits.")

	for {
		pos := g.playerPosition()
		g.renderer.CenterOn(pos.X, pos.Y)
		g.renderer.DrawFrame(g.world, g.gmap, g.visible, g.explored)
		g.renderer.DrawHUD(g.floor, g.effectiveRadius(), g.revealRooms, g.playerBlind(), g.messages)

		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				return nil
			}
			g.processAction(ctx, action)
		}
	}
}

// processAction handles one player action and, if it consumed a turn,
// advances the world.
func (g *Game) processAction(ctx context.Context, action Action) {
	_, span := g.tracer.Start(ctx, "turn")
	defer span.End()

	turnUsed := false

	switch action {
	case ActionWait:
		turnUsed = true

	case ActionDescend:
		pos := g.playerPosition()
		if g.gmap.At(pos.X, pos.Y).Kind != gamemap.TileStairsDown {
			g.addMessage("There are no stairs down here.")
			break
		}
		if g.floor >= MaxFloors {
			g.addMessage("The Gloamspire ends here.")
			break
		}
		g.loadFloor(g.floor + 1)
		return

	case ActionToggleReveal:
		g.revealRooms = !g.revealRooms
		if c := g.world.Get(g.playerID, component.CSight); c != nil {
			sight := c.(component.Sight)
			sight.RevealRooms = g.revealRooms
			g.world.Add(g.playerID, sight)
		}
		g.refreshFOV()

	default:
		dx, dy := actionToDelta(action)
		if dx == 0 && dy == 0 {
			break
		}
		if system.TryMove(g.world, g.gmap, g.playerID, dx, dy) == system.MoveOK {
			turnUsed = true
			g.refreshFOV()
		}
	}

	if !turnUsed {
		return
	}

	g.turn++
	system.TickEffects(g.world)
	// Effects ticking can end blindness, so the view may change.
	g.refreshFOV()

	for _, s := range system.UpdateAwareness(g.world, g.visible) {
		g.addMessage(fmt.Sprintf("A %s notices you!", s.Name))
	}
	system.ProcessAI(g.world, g.gmap, g.playerID, g.visible)
	g.applyGazes()
	g.refreshFOV()

	span.SetAttributes(
		attribute.Int("turn", g.turn),
		attribute.Int("floor", g.floor),
		attribute.Int("visible_cells", g.visible.Size()),
		attribute.Int("explored_cells", g.explored.Count()),
		attribute.Bool("blind", g.playerBlind()),
	)
}

// applyGazes blinds the player while adjacent to a gaze monster.
func (g *Game) applyGazes() {
	pos := g.playerPosition()
	for _, id := range g.world.Query(component.CAI, component.CPosition) {
		ai := g.world.Get(id, component.CAI).(component.AI)
		if !ai.GazeBlinds {
			continue
		}
		mpos := g.world.Get(id, component.CPosition).(component.Position)
		adx, ady := abs(mpos.X-pos.X), abs(mpos.Y-pos.Y)
		if adx <= 1 && ady <= 1 && !g.playerBlind() {
			system.ApplyEffect(g.world, g.playerID, component.ActiveEffect{
				Kind:           component.EffectBlind,
				Magnitude:      1,
				TurnsRemaining: 4,
			})
			g.addMessage(fmt.Sprintf("The %s's gaze sears your eyes — you are blind!", entityLabel(g.world, id)))
		}
	}
}

func (g *Game) playerBlind() bool {
	return system.HasEffect(g.world, g.playerID, component.EffectBlind)
}

func (g *Game) effectiveRadius() int {
	radius := 0
	if c := g.world.Get(g.playerID, component.CSight); c != nil {
		radius = c.(component.Sight).Radius
	}
	return radius + system.GetLightBonus(g.world, g.playerID)
}

func (g *Game) playerPosition() component.Position {
	c := g.world.Get(g.playerID, component.CPosition)
	if c == nil {
		return component.Position{}
	}
	return c.(component.Position)
}

func entityLabel(w *ecs.World, id ecs.EntityID) string {
	c := w.Get(id, component.CRenderable)
	if c == nil {
		return "creature"
	}
	return c.(component.Renderable).Name
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > 50 {
		g.messages = g.messages[len(g.messages)-50:]
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
