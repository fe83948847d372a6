package game

import (
	"fmt"
	"log"

	"kickabout/internal/components"
	"kickabout/internal/config"
	"kickabout/internal/input"
	"kickabout/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frames that fall further behind than this drop the backlog instead of
// trying to catch up.
const maxStepsPerFrame = 5

type Game struct {
	Config    config.Config
	World     *world.World
	Input     *input.Accumulator
	DebugMode bool

	watcher *world.LevelWatcher
	frame   world.Frame
	lag     float32

	notice      string
	noticeTicks int
	culled      int // objects skipped by frustum culling last frame
	kicks       int
	landings    int

	characterModel   rl.Model
	characterSize    rl.Vector3 // mesh size of characterModel
	modelStale       bool
	collectibleModel rl.Model
}

func New(cfg config.Config) (*Game, error) {
	w, err := loadWorld(cfg.LevelPath)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config: cfg,
		Input:  input.NewAccumulator(),
	}
	g.setWorld(w)
	return g, nil
}

// loadWorld builds a session from a level file, or the built-in level when
// path is empty.
func loadWorld(path string) (*world.World, error) {
	if path == "" {
		return world.New(world.DefaultLevel())
	}
	level, err := world.LoadLevel(path)
	if err != nil {
		return nil, err
	}
	return world.New(level)
}

func (g *Game) setWorld(w *world.World) {
	g.World = w
	g.frame = w.Frame()
	g.lag = 0
	g.kicks = 0
	g.landings = 0
	g.modelStale = characterMeshSize(w.Character) != g.characterSize

	w.OnCollected.AddListener(func(total int) {
		g.showNotice(fmt.Sprintf("Collected %d/%d", total, len(w.Collectibles)))
	})
	w.OnKicked.AddListener(func() { g.kicks++ })
	w.OnLanded.AddListener(func() { g.landings++ })
}

func (g *Game) showNotice(text string) {
	g.notice = text
	g.noticeTicks = 120
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Width, g.Config.Height, "Kickabout")
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.TargetFPS)
	rl.SetExitKey(rl.KeyNull)
	rl.DisableCursor()

	g.loadModels()
	defer g.unloadModels()
	initHUDStyle()

	if g.Config.WatchLevel {
		w, err := world.WatchLevel(g.Config.LevelPath)
		if err != nil {
			log.Printf("Level watching disabled: %v", err)
		} else {
			g.watcher = w
			defer g.watcher.Close()
			log.Printf("Watching %s for changes", g.Config.LevelPath)
		}
	}

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func characterMeshSize(c *components.Character) rl.Vector3 {
	return rl.Vector3{X: 2 * c.Radius, Y: 2 * c.HalfHeight, Z: 2 * c.Radius}
}

func (g *Game) loadModels() {
	g.loadCharacterModel()
	g.collectibleModel = rl.LoadModelFromMesh(rl.GenMeshCube(0.5, 0.5, 0.5))
}

// loadCharacterModel builds the character mesh to match the current
// session's collision box.
func (g *Game) loadCharacterModel() {
	size := characterMeshSize(g.World.Character)
	g.characterModel = rl.LoadModelFromMesh(rl.GenMeshCube(size.X, size.Y, size.Z))
	g.characterSize = size
	g.modelStale = false
}

func (g *Game) unloadModels() {
	rl.UnloadModel(g.characterModel)
	rl.UnloadModel(g.collectibleModel)
}

func (g *Game) Update() {
	g.pollInput()
	g.pollReload()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF5) && g.Config.LevelPath != "" {
		g.reload(g.Config.LevelPath)
	}

	g.advance(rl.GetFrameTime())

	if g.noticeTicks > 0 {
		g.noticeTicks--
	}
}

// pollInput feeds this frame's devices into the accumulator.
func (g *Game) pollInput() {
	in := g.Input
	in.SetKey(input.KeyForward, rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp))
	in.SetKey(input.KeyBack, rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown))
	in.SetKey(input.KeyLeft, rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft))
	in.SetKey(input.KeyRight, rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight))
	if rl.IsKeyPressed(rl.KeySpace) {
		in.PressJump()
	}

	// Escape releases the pointer, a click takes it back
	if rl.IsKeyPressed(rl.KeyEscape) {
		rl.EnableCursor()
		in.ReleaseAll()
	}
	if rl.IsCursorHidden() {
		d := rl.GetMouseDelta()
		in.AddMouseDelta(d.X, d.Y)
	} else if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		rl.DisableCursor()
	}

	// raylib reports wheel-up as positive; zooming in should shrink the distance
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		in.AddWheel(-wheel * 100)
	}
}

// advance runs as many fixed ticks as the elapsed frame time covers.
func (g *Game) advance(frameTime float32) int {
	g.lag += frameTime

	steps := 0
	for g.lag >= world.NominalTimestep && steps < maxStepsPerFrame {
		g.frame = g.World.Step(g.Input.Consume(), world.NominalTimestep)
		g.lag -= world.NominalTimestep
		steps++
	}
	if steps == maxStepsPerFrame {
		g.lag = 0
	}
	return steps
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case path, ok := <-g.watcher.Changes:
		if ok {
			g.reload(path)
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("Level watcher: %v", err)
		}
	default:
	}
}

// reload starts a new session from the level file. A broken file keeps the
// current session running.
func (g *Game) reload(path string) bool {
	w, err := loadWorld(path)
	if err != nil {
		log.Printf("Reload failed: %v", err)
		g.showNotice("Level has errors, see log")
		return false
	}

	g.setWorld(w)
	log.Printf("Reloaded level %q from %s", w.Name, path)
	g.showNotice("Level reloaded")
	return true
}

func (g *Game) Draw() {
	// A reloaded level may resize the character
	if g.modelStale {
		rl.UnloadModel(g.characterModel)
		g.loadCharacterModel()
	}
	f := g.frame
	camera := g.World.Camera.Camera3D()

	rl.BeginDrawing()
	rl.ClearBackground(rl.SkyBlue)

	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	view := viewFrustum(camera, aspect)

	rl.BeginMode3D(camera)
	g.drawScene(f, &view)
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) drawScene(f world.Frame, view *frustum) {
	w := g.World
	size := 2 * w.Tuning.Bounds
	rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: size + 2, Y: size + 2}, rl.Gray)

	g.culled = 0
	for i, o := range w.Obstacles {
		if !view.containsSphere(o.Center, rl.Vector3Length(o.HalfExtents())) {
			g.culled++
			continue
		}
		rl.DrawCube(o.Center, o.Width, o.Height, o.Depth, w.Colors[i])
		rl.DrawCubeWires(o.Center, o.Width, o.Height, o.Depth, rl.DarkBrown)
	}

	rl.DrawModelEx(g.characterModel, f.CharacterPosition, rl.Vector3{Y: 1},
		f.CharacterYaw*rl.Rad2deg, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Green)
	nose := rl.Vector3Scale(w.Character.Facing(), w.Character.Radius)
	nose.Y = w.Character.HalfHeight / 2
	rl.DrawSphere(rl.Vector3Add(f.CharacterPosition, nose), 0.15, rl.DarkGreen)

	rl.DrawSphere(f.BallPosition, w.Ball.Radius, rl.White)

	for i, c := range w.Collectibles {
		if !f.Visible[i] {
			continue
		}
		if !view.containsSphere(c.Position, 0.5) {
			g.culled++
			continue
		}
		rl.DrawModelEx(g.collectibleModel, c.Position, rl.Vector3{X: 0.3, Y: 1},
			f.CollectibleSpin*rl.Rad2deg, rl.Vector3{X: 1, Y: 1, Z: 1}, rl.Gold)
	}

	if g.DebugMode {
		rl.DrawGrid(int32(size), 1)
	}
}
