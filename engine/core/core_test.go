package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/diorama/engine/maplib"
	"github.com/1siamBot/diorama/engine/render3d"
	"github.com/1siamBot/diorama/engine/scene"
)

type countSystem struct {
	prio  int
	calls *[]int
}

func (s countSystem) Priority() int { return s.prio }
func (s countSystem) Update(w *World, dt float64) {
	*s.calls = append(*s.calls, s.prio)
}

func emptyWorld() *World {
	return NewWorld(scene.Build(maplib.NewLayout("empty", 1, 1), scene.DefaultPalette(), nil), 8)
}

func TestWorld_SystemsSortedByPriority(t *testing.T) {
	w := emptyWorld()
	var calls []int
	w.AddSystem(countSystem{30, &calls})
	w.AddSystem(countSystem{10, &calls})
	w.AddSystem(countSystem{20, &calls})
	w.Tick(0.125)

	want := []int{10, 20, 30}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, calls)
		}
	}
}

func TestGameLoop_FixedTicks(t *testing.T) {
	w := emptyWorld()
	gl := NewGameLoop(w, 8)

	if alpha := gl.Advance(0.25); alpha != 0 {
		t.Errorf("Expected no leftover, got alpha %v", alpha)
	}
	if gl.CurrentTick() != 2 {
		t.Errorf("Expected 2 ticks, got %d", gl.CurrentTick())
	}

	gl.Advance(0.0625)
	if gl.CurrentTick() != 2 {
		t.Errorf("Expected half a tick to be banked, got %d ticks", gl.CurrentTick())
	}
	gl.Advance(0.0625)
	if gl.CurrentTick() != 3 {
		t.Errorf("Expected banked time to complete a tick, got %d", gl.CurrentTick())
	}

	// Long frames are capped.
	gl.Advance(10)
	if gl.CurrentTick() != 5 {
		t.Errorf("Expected frame time capped to 2 ticks, got %d total", gl.CurrentTick())
	}
}

func TestGameLoop_PauseEmitsAndStops(t *testing.T) {
	w := emptyWorld()
	gl := NewGameLoop(w, 8)

	var events []EventType
	w.Events.On(EvtPaused, func(e Event) { events = append(events, e.Type) })
	w.Events.On(EvtResumed, func(e Event) { events = append(events, e.Type) })

	gl.Toggle()
	if gl.State != StatePaused {
		t.Fatal("Expected paused")
	}
	gl.Advance(0.25)
	if gl.CurrentTick() != 0 {
		t.Errorf("Expected no ticks while paused, got %d", gl.CurrentTick())
	}
	gl.Toggle()
	if gl.State != StatePlaying {
		t.Fatal("Expected playing")
	}
	if len(events) != 2 || events[0] != EvtPaused || events[1] != EvtResumed {
		t.Errorf("Expected [paused resumed], got %v", events)
	}
}

func TestGameLoop_PauseAndPlayDispatchImmediately(t *testing.T) {
	w := emptyWorld()
	gl := NewGameLoop(w, 8)

	paused, resumed := 0, 0
	w.Events.On(EvtPaused, func(e Event) { paused++ })
	w.Events.On(EvtResumed, func(e Event) { resumed++ })

	gl.Pause()
	if paused != 1 {
		t.Fatalf("Expected pause to be heard at once, got %d", paused)
	}
	for i := 0; i < 10; i++ {
		gl.Advance(0.1)
	}
	gl.Pause()
	if paused != 1 {
		t.Errorf("Expected no second pause event, got %d", paused)
	}

	gl.Play()
	if resumed != 1 {
		t.Errorf("Expected resume to be heard at once, got %d", resumed)
	}
	gl.Play()
	if resumed != 1 {
		t.Errorf("Expected no second resume event, got %d", resumed)
	}
}

func TestEventBus_DispatchClearsQueue(t *testing.T) {
	eb := NewEventBus()
	n := 0
	eb.On(EvtDawn, func(e Event) { n++ })
	eb.Emit(Event{Type: EvtDawn})
	eb.Emit(Event{Type: EvtDusk})
	eb.Dispatch()
	eb.Dispatch()
	if n != 1 {
		t.Errorf("Expected one dawn handled, got %d", n)
	}
	if EvtDusk.String() != "dusk" || EventType(99).String() != "unknown" {
		t.Error("Unexpected event names")
	}
}

func TestCameraController_Apply(t *testing.T) {
	cam := render3d.NewCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	cc := CameraController{MoveSpeed: 2, OrbitSpeed: 1, ZoomSpeed: 4}

	var held ActionSet
	held.Set(ActMoveForward)
	cc.Apply(cam, held, 0.5)
	if !cam.Eye.ApproxEqualThreshold(mgl32.Vec3{0, 0, 4}, 1e-5) {
		t.Errorf("Expected eye at z=4, got %v", cam.Eye)
	}

	held.Set(ActMoveBack)
	cc.Apply(cam, held, 0.5)
	if !cam.Eye.ApproxEqualThreshold(mgl32.Vec3{0, 0, 4}, 1e-5) {
		t.Errorf("Expected opposing actions to cancel, got %v", cam.Eye)
	}

	var zoom ActionSet
	zoom.Set(ActZoomIn)
	cc.Apply(cam, zoom, 0.25)
	if d := cam.Eye.Sub(cam.Center).Len(); d < 3.999 || d > 4.001 {
		t.Errorf("Expected distance 4 after zooming 1 unit, got %v", d)
	}

	var orbit ActionSet
	orbit.Set(ActOrbitLeft)
	before := cam.Eye
	cc.Apply(cam, orbit, 0.1)
	if cam.Eye == before {
		t.Error("Expected orbit to move the eye")
	}

	var reset ActionSet
	reset.Set(ActResetCamera)
	reset.Set(ActMoveForward)
	cc.Apply(cam, reset, 1)
	if cam.Eye != (mgl32.Vec3{0, 0, 5}) {
		t.Errorf("Expected reset to win, got %v", cam.Eye)
	}
}

func TestActionSet(t *testing.T) {
	var s ActionSet
	if s.Has(ActQuit) {
		t.Error("Expected empty set")
	}
	s.Set(ActQuit)
	s.Set(ActToggleHUD)
	if !s.Has(ActQuit) || !s.Has(ActToggleHUD) || s.Has(ActZoomIn) {
		t.Errorf("Unexpected set %b", s)
	}
}
