package framebuffer

import "image"

// Framebuffer is a row-major buffer of packed 0xRRGGBB pixels. Pixels are
// written by setting the current color and then plotting a point.
type Framebuffer struct {
	width, height int
	Buffer        []uint32

	background uint32
	current    uint32
	rgba       []byte
}

func New(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		Buffer: make([]uint32, width*height),
		rgba:   make([]byte, 4*width*height),
	}
}

func (f *Framebuffer) Width() int  { return f.width }
func (f *Framebuffer) Height() int { return f.height }

// SetBackgroundColor sets the color Clear fills with.
func (f *Framebuffer) SetBackgroundColor(hex uint32) { f.background = hex }

func (f *Framebuffer) SetCurrentColor(hex uint32) { f.current = hex }

// Clear fills the buffer with the background color.
func (f *Framebuffer) Clear() {
	for i := range f.Buffer {
		f.Buffer[i] = f.background
	}
}

// Point writes the current color at (x, y). Out-of-range points are ignored.
func (f *Framebuffer) Point(x, y int) {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return
	}
	f.Buffer[y*f.width+x] = f.current
}

// At returns the packed pixel at (x, y), or 0 outside the buffer.
func (f *Framebuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= f.width || y >= f.height {
		return 0
	}
	return f.Buffer[y*f.width+x]
}

// RGBA expands the buffer into opaque RGBA bytes, the layout
// ebiten.Image.WritePixels expects. The returned slice is reused by the next call.
func (f *Framebuffer) RGBA() []byte {
	for i, p := range f.Buffer {
		o := i * 4
		f.rgba[o] = byte(p >> 16)
		f.rgba[o+1] = byte(p >> 8)
		f.rgba[o+2] = byte(p)
		f.rgba[o+3] = 0xFF
	}
	return f.rgba
}

// Image copies the buffer into a new RGBA image.
func (f *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.RGBA())
	return img
}
