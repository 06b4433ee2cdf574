package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/diorama/engine/core"
)

// Binding maps a key to an action. Toggle bindings fire once per press;
// the rest are active while the key is held.
type Binding struct {
	Key    ebiten.Key
	Action core.Action
	Toggle bool
}

// DefaultBindings is the diorama keyboard layout.
var DefaultBindings = []Binding{
	{ebiten.KeyW, core.ActMoveForward, false},
	{ebiten.KeyS, core.ActMoveBack, false},
	{ebiten.KeyA, core.ActMoveLeft, false},
	{ebiten.KeyD, core.ActMoveRight, false},
	{ebiten.KeyLeft, core.ActOrbitLeft, false},
	{ebiten.KeyRight, core.ActOrbitRight, false},
	{ebiten.KeyUp, core.ActOrbitUp, false},
	{ebiten.KeyDown, core.ActOrbitDown, false},
	{ebiten.KeyQ, core.ActZoomIn, false},
	{ebiten.KeyE, core.ActZoomOut, false},
	{ebiten.KeyR, core.ActResetCamera, true},
	{ebiten.KeyP, core.ActTogglePause, true},
	{ebiten.KeyH, core.ActToggleHUD, true},
	{ebiten.KeyEscape, core.ActQuit, true},
}

// InputState tracks keyboard and mouse state per frame
type InputState struct {
	Bindings []Binding

	// Actions active this frame
	Actions core.ActionSet

	// Mouse
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	prevMouseX       int
	prevMouseY       int
	Dragging         bool // right button held and moved
	ScrollY          float64
}

func NewInputState() *InputState {
	return &InputState{Bindings: DefaultBindings}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.prevMouseX = s.MouseX
	s.prevMouseY = s.MouseY
	s.MouseX, s.MouseY = ebiten.CursorPosition()
	s.MouseDX = s.MouseX - s.prevMouseX
	s.MouseDY = s.MouseY - s.prevMouseY

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		// Ignore the jump from wherever the cursor was last frame.
		s.MouseDX, s.MouseDY = 0, 0
	}
	s.Dragging = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) && (s.MouseDX != 0 || s.MouseDY != 0)

	_, s.ScrollY = ebiten.Wheel()

	s.Actions = 0
	for _, b := range s.Bindings {
		var on bool
		if b.Toggle {
			on = inpututil.IsKeyJustPressed(b.Key)
		} else {
			on = ebiten.IsKeyPressed(b.Key)
		}
		if on {
			s.Actions.Set(b.Action)
		}
	}
}

// Has reports whether the action is active this frame.
func (s *InputState) Has(a core.Action) bool {
	return s.Actions.Has(a)
}

// DragDelta returns the mouse movement while right-dragging.
func (s *InputState) DragDelta() (dx, dy int, active bool) {
	if !s.Dragging {
		return 0, 0, false
	}
	return s.MouseDX, s.MouseDY, true
}
