package render3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere is an analytic sphere with a single material.
type Sphere struct {
	Center   mgl32.Vec3
	Radius   float32
	Material Material
}

func NewSphere(center mgl32.Vec3, radius float32, m Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: m}
}

// RayIntersect solves |O + tD - C|² = r². Tangent rays count as misses, and
// only the near root is considered, so an origin inside the sphere sees nothing.
func (s *Sphere) RayIntersect(origin, dir mgl32.Vec3) Intersect {
	oc := origin.Sub(s.Center)
	a := dir.Dot(dir)
	b := 2 * oc.Dot(dir)
	c := oc.Dot(oc) - s.Radius*s.Radius

	disc := b*b - 4*a*c
	if disc <= 0 {
		return EmptyIntersect()
	}
	t := (-b - math32.Sqrt(disc)) / (2 * a)
	if t <= 0 {
		return EmptyIntersect()
	}

	point := origin.Add(dir.Mul(t))
	normal := normalize(point.Sub(s.Center))
	u, v := sphereUV(normal)
	return newIntersect(point, normal, t, s.Material, u, v)
}

func (s *Sphere) UV(point mgl32.Vec3) (float32, float32) {
	return sphereUV(normalize(point.Sub(s.Center)))
}

// sphereUV maps a unit offset from the center to spherical coordinates.
func sphereUV(n mgl32.Vec3) (float32, float32) {
	theta := math32.Atan2(n.Z(), n.X())
	phi := math32.Asin(clampUnit(n.Y()))
	u := 0.5 + theta/(2*math32.Pi)
	v := 0.5 - phi/math32.Pi
	return u, v
}

// clampUnit keeps asin inside its domain when normalization overshoots.
func clampUnit(f float32) float32 {
	if f < -1 {
		return -1
	}
	if f > 1 {
		return 1
	}
	return f
}
