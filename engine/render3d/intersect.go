package render3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Intersect is the result of testing one ray against one object.
type Intersect struct {
	Point          mgl32.Vec3
	Normal         mgl32.Vec3
	Distance       float32
	Material       Material
	U, V           float32
	IsIntersecting bool
}

// EmptyIntersect is the "no hit" record. Its infinite distance makes it the
// identity for nearest-hit selection.
func EmptyIntersect() Intersect {
	return Intersect{Distance: math32.Inf(1)}
}

func newIntersect(point, normal mgl32.Vec3, distance float32, m Material, u, v float32) Intersect {
	return Intersect{
		Point:          point,
		Normal:         normal,
		Distance:       distance,
		Material:       m,
		U:              u,
		V:              v,
		IsIntersecting: true,
	}
}

// Object is anything a ray can hit.
type Object interface {
	// RayIntersect returns the nearest forward hit of the ray, or EmptyIntersect.
	RayIntersect(origin, dir mgl32.Vec3) Intersect
	// UV returns surface coordinates for a point known to lie on the surface.
	UV(point mgl32.Vec3) (u, v float32)
}

// Nearest scans objects in order and keeps the valid hit with the smallest
// distance. Ties keep the earlier object.
func Nearest(origin, dir mgl32.Vec3, objects []Object) Intersect {
	best := EmptyIntersect()
	for _, o := range objects {
		hit := o.RayIntersect(origin, dir)
		if hit.IsIntersecting && hit.Distance < best.Distance {
			best = hit
		}
	}
	return best
}
