package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/1siamBot/diorama/engine/core"
	"github.com/1siamBot/diorama/engine/framebuffer"
	"github.com/1siamBot/diorama/engine/input"
	"github.com/1siamBot/diorama/engine/maplib"
	"github.com/1siamBot/diorama/engine/render3d"
	"github.com/1siamBot/diorama/engine/scene"
	"github.com/1siamBot/diorama/engine/systems"
	"github.com/1siamBot/diorama/engine/texture"
)

const (
	WindowTitle = "Diorama"
	TickRate    = 30.0 // animation ticks per second
	dragOrbit   = 0.01 // radians per pixel of right-drag
	scrollZoom  = 0.5  // world units per wheel notch
)

// Game implements ebiten.Game interface
type Game struct {
	world    *core.World
	gameLoop *core.GameLoop
	input    *input.InputState
	controls core.CameraController
	renderer *render3d.Renderer
	fb       *framebuffer.Framebuffer
	frame    *ebiten.Image

	textures int
	showHUD  bool
}

func NewGame(s *scene.Scene, width, height, textures int) *Game {
	w := systems.NewDioramaWorld(s, TickRate)

	for _, et := range []core.EventType{core.EvtDawn, core.EvtDusk, core.EvtPaused, core.EvtResumed} {
		w.Events.On(et, func(e core.Event) {
			log.Printf("%s at tick %d", e.Type, e.Tick)
		})
	}

	g := &Game{
		world:    w,
		gameLoop: core.NewGameLoop(w, TickRate),
		input:    input.NewInputState(),
		controls: core.DefaultCameraController(),
		renderer: render3d.NewRenderer(),
		fb:       framebuffer.New(width, height),
		frame:    ebiten.NewImage(width, height),
		textures: textures,
		showHUD:  true,
	}
	g.gameLoop.Play()
	return g
}

func (g *Game) Update() error {
	g.input.Update()

	if g.input.Has(core.ActQuit) {
		return ebiten.Termination
	}
	if g.input.Has(core.ActToggleHUD) {
		g.showHUD = !g.showHUD
	}
	if g.input.Has(core.ActTogglePause) {
		g.gameLoop.Toggle()
	}

	cam := g.world.Scene.Camera
	dt := 1.0 / float64(ebiten.TPS())
	g.controls.Apply(cam, g.input.Actions, dt)

	// Right-drag orbits, wheel zooms
	if dx, dy, ok := g.input.DragDelta(); ok {
		cam.Orbit(float32(-dx)*dragOrbit, float32(dy)*dragOrbit)
	}
	if g.input.ScrollY != 0 {
		cam.Zoom(float32(g.input.ScrollY) * scrollZoom)
	}

	g.gameLoop.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.world.Scene
	g.fb.SetBackgroundColor(g.world.Background.Hex())
	g.fb.Clear()
	g.renderer.Render(g.fb, s.Objects, s.Camera, s.Light, g.world.Background)

	g.frame.WritePixels(g.fb.RGBA())
	screen.DrawImage(g.frame, nil)

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	state := "playing"
	if g.gameLoop.State == core.StatePaused {
		state = "paused"
	}
	s := g.world.Scene
	info := fmt.Sprintf(
		"%s | FPS: %.0f | Frame: %s | Tick: %d (%s)\n"+
			"Objects: %d | Water: %d | Textures: %d | Sky: %s\n"+
			"[WASD] Move [Arrows/RDrag] Orbit [Q/E/Wheel] Zoom\n"+
			"[R] Reset [P] Pause [H] HUD [Esc] Quit",
		s.Name, ebiten.ActualFPS(), g.renderer.LastFrame.Round(100_000), g.gameLoop.CurrentTick(), state,
		len(s.Objects), len(s.Water), g.textures, g.world.Background,
	)
	vector.DrawFilledRect(screen, 0, 0, float32(g.fb.Width()), 66, color.RGBA{0, 0, 0, 140}, false)
	ebitenutil.DebugPrint(screen, info)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}

func main() {
	width := flag.Int("width", 400, "framebuffer width in pixels")
	height := flag.Int("height", 300, "framebuffer height in pixels")
	scale := flag.Int("scale", 2, "window pixels per framebuffer pixel")
	layoutPath := flag.String("layout", "", "layout JSON file (built-in diorama if empty)")
	texDir := flag.String("textures", "assets/textures", "directory of block textures")
	texSize := flag.Int("texture-size", texture.DefaultMaxSize, "largest texture edge after resampling")
	tps := flag.Int("tps", 60, "input updates per second")
	flag.Parse()

	if *width <= 0 || *height <= 0 || *scale <= 0 {
		log.Fatalf("invalid size %dx%d scale %d", *width, *height, *scale)
	}

	layout := maplib.DefaultLayout()
	if *layoutPath != "" {
		l, err := maplib.LoadJSON(*layoutPath)
		if err != nil {
			log.Fatal(err)
		}
		layout = l
	}

	textures := texture.NewManager()
	textures.MaxSize = *texSize
	if _, err := textures.LoadDirectory(*texDir); err != nil {
		// Blocks fall back to flat colors.
		log.Printf("textures: %v", err)
	}

	s := scene.Build(layout, scene.DefaultPalette(), textures)
	log.Printf("Scene %q: %d objects, %d water cubes", s.Name, len(s.Objects), len(s.Water))

	ebiten.SetWindowSize(*width**scale, *height**scale)
	ebiten.SetWindowTitle(WindowTitle + " - " + s.Name)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(*tps)

	if err := ebiten.RunGame(NewGame(s, *width, *height, textures.Len())); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
