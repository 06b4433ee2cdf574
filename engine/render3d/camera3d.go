package render3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	pitchLimit  = math32.Pi/2 - 0.1
	minDistance = 0.5
)

// Camera is a look-at camera orbiting Center.
type Camera struct {
	Eye    mgl32.Vec3
	Center mgl32.Vec3
	Up     mgl32.Vec3

	home [3]mgl32.Vec3
}

func NewCamera(eye, center, up mgl32.Vec3) *Camera {
	return &Camera{Eye: eye, Center: center, Up: up, home: [3]mgl32.Vec3{eye, center, up}}
}

// Reset restores the pose the camera was created with.
func (c *Camera) Reset() {
	c.Eye, c.Center, c.Up = c.home[0], c.home[1], c.home[2]
}

// Basis returns the orthonormal right, up and forward vectors.
func (c *Camera) Basis() (right, up, forward mgl32.Vec3) {
	forward = normalize(c.Center.Sub(c.Eye))
	right = normalize(forward.Cross(c.Up))
	up = right.Cross(forward)
	return
}

// BaseChange maps a camera-space direction (looking down -Z) to world space.
func (c *Camera) BaseChange(v mgl32.Vec3) mgl32.Vec3 {
	right, up, forward := c.Basis()
	basis := mgl32.Mat3FromCols(right, up, forward.Mul(-1))
	return normalize(basis.Mul3x1(v))
}

// Orbit rotates the eye around Center. Pitch is kept short of the poles so the
// basis never degenerates.
func (c *Camera) Orbit(deltaYaw, deltaPitch float32) {
	rv := c.Eye.Sub(c.Center)
	radius := rv.Len()
	if radius == 0 {
		return
	}
	yaw := math32.Atan2(rv.Z(), rv.X())
	pitch := math32.Atan2(-rv.Y(), math32.Hypot(rv.X(), rv.Z()))

	yaw = math32.Mod(yaw+deltaYaw, 2*math32.Pi)
	pitch += deltaPitch
	if pitch > pitchLimit {
		pitch = pitchLimit
	}
	if pitch < -pitchLimit {
		pitch = -pitchLimit
	}

	cp := math32.Cos(pitch)
	c.Eye = c.Center.Add(mgl32.Vec3{
		radius * math32.Cos(yaw) * cp,
		-radius * math32.Sin(pitch),
		radius * math32.Sin(yaw) * cp,
	})
}

// MoveForward translates eye and center along the view direction.
func (c *Camera) MoveForward(step float32) {
	_, _, forward := c.Basis()
	c.translate(forward.Mul(step))
}

func (c *Camera) MoveBack(step float32) { c.MoveForward(-step) }

// MoveRight translates eye and center sideways.
func (c *Camera) MoveRight(step float32) {
	right, _, _ := c.Basis()
	c.translate(right.Mul(step))
}

func (c *Camera) MoveLeft(step float32) { c.MoveRight(-step) }

// Zoom moves the eye toward (positive delta) or away from Center, never
// closer than minDistance.
func (c *Camera) Zoom(delta float32) {
	rv := c.Eye.Sub(c.Center)
	dist := rv.Len() - delta
	if dist < minDistance {
		dist = minDistance
	}
	c.Eye = c.Center.Add(normalize(rv).Mul(dist))
}

func (c *Camera) translate(d mgl32.Vec3) {
	c.Eye = c.Eye.Add(d)
	c.Center = c.Center.Add(d)
}
