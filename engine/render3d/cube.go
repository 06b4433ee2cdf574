package render3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Face indices of a Cube, in material order.
const (
	FaceXMin = iota
	FaceXMax
	FaceYMin
	FaceYMax
	FaceZMin
	FaceZMax
)

// FaceEpsilon is how close a hit point must be to a slab plane to count as
// lying on that face.
const FaceEpsilon = 0.001

var faceNormals = [6]mgl32.Vec3{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// Cube is an axis-aligned box of edge Size around Center with one material
// per face.
type Cube struct {
	Center mgl32.Vec3
	Size   float32
	Faces  [6]Material

	// Water marks tiles the animation is allowed to lift.
	Water bool
	rest  mgl32.Vec3
}

// NewCube uses m for all six faces.
func NewCube(center mgl32.Vec3, size float32, m Material) *Cube {
	return NewCubeFaces(center, size, [6]Material{m, m, m, m, m, m})
}

func NewCubeFaces(center mgl32.Vec3, size float32, faces [6]Material) *Cube {
	return &Cube{Center: center, Size: size, Faces: faces, rest: center}
}

// IsWater reports whether the cube is an animated water tile.
func (c *Cube) IsWater() bool { return c.Water }

// SetLift offsets the cube vertically from the position it was built at.
func (c *Cube) SetLift(dy float32) {
	c.Center = c.rest.Add(mgl32.Vec3{0, dy, 0})
}

// Bounds returns the box corners.
func (c *Cube) Bounds() (min, max mgl32.Vec3) {
	h := c.Size / 2
	half := mgl32.Vec3{h, h, h}
	return c.Center.Sub(half), c.Center.Add(half)
}

// RayIntersect uses the slab method. An axis the ray runs parallel to does not
// constrain t when the origin lies within that slab, faces included, and
// rules out a hit otherwise. An origin inside the box reports the exit point.
func (c *Cube) RayIntersect(origin, dir mgl32.Vec3) Intersect {
	min, max := c.Bounds()

	tEntry := math32.Inf(-1)
	tExit := math32.Inf(1)
	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < min[i] || origin[i] > max[i] {
				return EmptyIntersect()
			}
			continue
		}
		inv := 1 / dir[i]
		t0 := (min[i] - origin[i]) * inv
		t1 := (max[i] - origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tEntry {
			tEntry = t0
		}
		if t1 < tExit {
			tExit = t1
		}
	}
	if tEntry > tExit || tExit < 0 {
		return EmptyIntersect()
	}

	t := tEntry
	if tEntry < 0 {
		t = tExit
	}
	point := origin.Add(dir.Mul(t))
	face, u, v := faceAndUV(point, min, max)
	return newIntersect(point, faceNormals[face], t, c.Faces[face], u, v)
}

func (c *Cube) UV(point mgl32.Vec3) (float32, float32) {
	min, max := c.Bounds()
	_, u, v := faceAndUV(point, min, max)
	return u, v
}

// Face returns the face index a surface point belongs to.
func (c *Cube) Face(point mgl32.Vec3) int {
	min, max := c.Bounds()
	face, _, _ := faceAndUV(point, min, max)
	return face
}

// faceAndUV identifies the face containing point and projects point onto the
// two axes spanning that face, normalized by the box extent and clamped to
// [0,1]. Where several faces match (edges, corners) the x axis wins over y and
// y over z; on one axis the min side is tested first.
func faceAndUV(point, min, max mgl32.Vec3) (face int, u, v float32) {
	face = -1
	for i := 0; i < 3 && face < 0; i++ {
		switch {
		case math32.Abs(point[i]-min[i]) < FaceEpsilon:
			face = 2 * i
		case math32.Abs(point[i]-max[i]) < FaceEpsilon:
			face = 2*i + 1
		}
	}
	if face < 0 {
		face = dominantFace(point, min, max)
	}

	ext := max.Sub(min)
	rel := point.Sub(min)
	switch face / 2 {
	case 0:
		u, v = rel.Z()/ext.Z(), rel.Y()/ext.Y()
	case 1:
		u, v = rel.X()/ext.X(), rel.Z()/ext.Z()
	default:
		u, v = rel.X()/ext.X(), rel.Y()/ext.Y()
	}
	return face, clamp01(u), clamp01(v)
}

// dominantFace picks the face whose axis has the largest relative offset from
// the center. It only runs when drift put the point outside every epsilon band.
func dominantFace(point, min, max mgl32.Vec3) int {
	best, bestOff := 0, float32(-1)
	for i := 0; i < 3; i++ {
		half := (max[i] - min[i]) / 2
		off := point[i] - (min[i] + half)
		rel := math32.Abs(off)
		if half > 0 {
			rel /= half
		}
		if rel > bestOff {
			bestOff = rel
			best = 2 * i
			if off > 0 {
				best++
			}
		}
	}
	return best
}
