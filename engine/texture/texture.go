package texture

import (
	"image"
	"image/draw"

	"golang.org/x/crypto/blake2b"
	xdraw "golang.org/x/image/draw"
)

// Texture is a decoded RGBA image. It is never written after construction, so a
// single *Texture is shared by every material that references it.
type Texture struct {
	Name   string
	pix    *image.NRGBA
	digest [blake2b.Size256]byte
}

func newTexture(name string, pix *image.NRGBA) *Texture {
	h, _ := blake2b.New256(nil)
	b := pix.Rect
	h.Write([]byte{byte(b.Dx() >> 8), byte(b.Dx()), byte(b.Dy() >> 8), byte(b.Dy())})
	h.Write(pix.Pix)
	t := &Texture{Name: name, pix: pix}
	h.Sum(t.digest[:0])
	return t
}

// FromImage copies img into non-premultiplied RGBA storage. When maxSize > 0 and either side is
// larger, the copy is resampled down to fit inside maxSize x maxSize.
func FromImage(name string, img image.Image, maxSize int) *Texture {
	b := img.Bounds()
	w, h := fitInside(b.Dx(), b.Dy(), maxSize)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	switch src, ok := img.(*image.NRGBA); {
	case ok && w == b.Dx() && h == b.Dy():
		// Straight copy keeps RGB of fully transparent texels.
		for y := 0; y < h; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+4*w], row[:4*w])
		}
	case w == b.Dx() && h == b.Dy():
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	default:
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	}
	return newTexture(name, dst)
}

// Solid builds a w x h texture filled with one color; handy as a placeholder.
func Solid(name string, w, h int, rgba [4]uint8) *Texture {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(dst.Pix); i += 4 {
		copy(dst.Pix[i:i+4], rgba[:])
	}
	return newTexture(name, dst)
}

// Digest is a BLAKE2b-256 hash of the size and pixels. Textures with equal
// digests look identical.
func (t *Texture) Digest() [blake2b.Size256]byte { return t.digest }

func (t *Texture) Width() int  { return t.pix.Rect.Dx() }
func (t *Texture) Height() int { return t.pix.Rect.Dy() }

// At returns the [r, g, b, a] bytes at (x, y). Coordinates are clamped.
func (t *Texture) At(x, y int) [4]uint8 {
	x = clampInt(x, 0, t.Width()-1)
	y = clampInt(y, 0, t.Height()-1)
	i := t.pix.PixOffset(x, y)
	p := t.pix.Pix[i : i+4 : i+4]
	return [4]uint8{p[0], p[1], p[2], p[3]}
}

// Image exposes the backing image for read-only use (previews, tools).
func (t *Texture) Image() image.Image { return t.pix }

func fitInside(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		nh := h * maxSize / w
		if nh < 1 {
			nh = 1
		}
		return maxSize, nh
	}
	nw := w * maxSize / h
	if nw < 1 {
		nw = 1
	}
	return nw, maxSize
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
