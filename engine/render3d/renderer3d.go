package render3d

import (
	"time"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultFOV is the vertical field of view, 60 degrees.
const DefaultFOV = math32.Pi / 3

// Target receives rendered pixels: set the current color, then plot.
type Target interface {
	Width() int
	Height() int
	SetCurrentColor(hex uint32)
	Point(x, y int)
}

// Renderer traces one primary ray per pixel. It is not safe for concurrent use.
type Renderer struct {
	FOV float32

	// Stats of the last Render call.
	LastFrame time.Duration
	Rays      int
}

func NewRenderer() *Renderer {
	return &Renderer{FOV: DefaultFOV}
}

// CastRay returns the color seen along one ray: the shaded nearest hit, or
// background when nothing is hit.
func CastRay(origin, dir mgl32.Vec3, objects []Object, light Light, background Color) Color {
	hit := Nearest(origin, dir, objects)
	if !hit.IsIntersecting {
		return background
	}
	return Shade(hit, origin, light)
}

// PrimaryRay builds the normalized camera-space direction through the
// top-left corner of pixel (x, y) of a w x h image.
func (r *Renderer) PrimaryRay(x, y, w, h int) mgl32.Vec3 {
	fw, fh := float32(w), float32(h)
	aspect := fw / fh
	scale := math32.Tan(r.FOV / 2)

	sx := 2*float32(x)/fw - 1
	sy := 1 - 2*float32(y)/fh
	return normalize(mgl32.Vec3{sx * aspect * scale, sy * scale, -1})
}

// Render traces every pixel of dst, row by row.
func (r *Renderer) Render(dst Target, objects []Object, cam *Camera, light Light, background Color) {
	start := time.Now()
	w, h := dst.Width(), dst.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dir := cam.BaseChange(r.PrimaryRay(x, y, w, h))
			c := CastRay(cam.Eye, dir, objects, light, background)
			dst.SetCurrentColor(c.Hex())
			dst.Point(x, y)
		}
	}
	r.Rays = w * h
	r.LastFrame = time.Since(start)
}
