package core

import (
	"math"

	"github.com/1siamBot/diorama/engine/render3d"
)

// Action is a user intent, decoupled from the key that triggers it.
type Action uint16

const (
	ActMoveForward Action = 1 << iota
	ActMoveBack
	ActMoveLeft
	ActMoveRight
	ActOrbitLeft
	ActOrbitRight
	ActOrbitUp
	ActOrbitDown
	ActZoomIn
	ActZoomOut
	ActResetCamera
	ActTogglePause
	ActToggleHUD
	ActQuit
)

// ActionSet is a bitmask of actions active this frame.
type ActionSet uint16

func (s ActionSet) Has(a Action) bool { return uint16(s)&uint16(a) != 0 }

func (s *ActionSet) Set(a Action) { *s |= ActionSet(a) }

// CameraController turns held actions into camera motion. Speeds are per
// second; Apply scales them by the frame time.
type CameraController struct {
	MoveSpeed  float32 // world units per second
	OrbitSpeed float32 // radians per second
	ZoomSpeed  float32 // world units per second
}

// DefaultCameraController steps 0.1 units and pi/10 radians per frame at
// 60 FPS.
func DefaultCameraController() CameraController {
	return CameraController{
		MoveSpeed:  6,
		OrbitSpeed: math.Pi / 10 * 60,
		ZoomSpeed:  6,
	}
}

// Apply moves cam according to held. Opposing actions cancel out.
func (cc CameraController) Apply(cam *render3d.Camera, held ActionSet, dt float64) {
	if held.Has(ActResetCamera) {
		cam.Reset()
		return
	}
	step := float32(dt)
	move := cc.MoveSpeed * step
	orbit := cc.OrbitSpeed * step
	zoom := cc.ZoomSpeed * step

	if f := axis(held, ActMoveForward, ActMoveBack); f != 0 {
		cam.MoveForward(f * move)
	}
	if r := axis(held, ActMoveRight, ActMoveLeft); r != 0 {
		cam.MoveRight(r * move)
	}
	yaw := axis(held, ActOrbitLeft, ActOrbitRight)
	pitch := axis(held, ActOrbitDown, ActOrbitUp)
	if yaw != 0 || pitch != 0 {
		cam.Orbit(yaw*orbit, pitch*orbit)
	}
	if z := axis(held, ActZoomIn, ActZoomOut); z != 0 {
		cam.Zoom(z * zoom)
	}
}

func axis(held ActionSet, pos, neg Action) float32 {
	var v float32
	if held.Has(pos) {
		v++
	}
	if held.Has(neg) {
		v--
	}
	return v
}
