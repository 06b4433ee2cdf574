// Command generate_textures paints the block textures the default palette
// looks up, as small pixel-art PNGs.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
)

type painter func(img *image.NRGBA, size int)

var painters = map[string]painter{
	"grass_top":  grassTop,
	"grass_side": grassSide,
	"dirt":       dirt,
	"stone":      stone,
	"sand":       sand,
	"water":      water,
	"wood_top":   woodTop,
	"wood_side":  woodSide,
	"leaves":     leaves,
	"plank":      plank,
	"lamp":       lamp,
}

func main() {
	dir := flag.String("out", filepath.Join("assets", "textures"), "output directory")
	size := flag.Int("size", 16, "texture edge in pixels")
	flag.Parse()

	written, err := generate(*dir, *size)
	if err != nil {
		log.Fatal(err)
	}
	for _, p := range written {
		fmt.Println("  →", p)
	}
	log.Printf("Generated %d textures in %s", len(written), *dir)
}

// generate writes every texture into dir and returns the paths in name order.
func generate(dir string, size int) ([]string, error) {
	if size < 4 {
		return nil, fmt.Errorf("texture size %d too small", size)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}

	names := make([]string, 0, len(painters))
	for name := range painters {
		names = append(names, name)
	}
	sort.Strings(names)

	var written []string
	for _, name := range names {
		img := image.NewNRGBA(image.Rect(0, 0, size, size))
		painters[name](img, size)
		path := filepath.Join(dir, name+".png")
		if err := savePNG(path, img); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// ==================== NOISE ====================

func hashF(x, y, seed int) float64 {
	h := x*374761393 + y*668265263 + seed*2147483647
	h = (h ^ (h >> 13)) * 1274126177
	h = h ^ (h >> 16)
	return float64(h&0x7FFFFFFF) / float64(0x7FFFFFFF)
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	return color.NRGBA{
		R: uint8(float64(a.R)*(1-t) + float64(b.R)*t),
		G: uint8(float64(a.G)*(1-t) + float64(b.G)*t),
		B: uint8(float64(a.B)*(1-t) + float64(b.B)*t),
		A: uint8(float64(a.A)*(1-t) + float64(b.A)*t),
	}
}

// speckle fills img with per-pixel noise between two colors.
func speckle(img *image.NRGBA, size int, dark, light color.NRGBA, seed int) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, lerpColor(dark, light, hashF(x, y, seed)))
		}
	}
}

// ==================== BLOCKS ====================

func grassTop(img *image.NRGBA, size int) {
	speckle(img, size, color.NRGBA{58, 110, 36, 255}, color.NRGBA{108, 168, 62, 255}, 1)
}

func dirt(img *image.NRGBA, size int) {
	speckle(img, size, color.NRGBA{100, 70, 44, 255}, color.NRGBA{150, 108, 72, 255}, 2)
	for i := 0; i < size; i++ {
		x, y := int(hashF(i, 0, 9)*float64(size)), int(hashF(0, i, 9)*float64(size))
		img.SetNRGBA(x, y, color.NRGBA{80, 56, 36, 255})
	}
}

// grassSide is dirt with a ragged band of grass along the top rows.
func grassSide(img *image.NRGBA, size int) {
	dirt(img, size)
	band := size / 4
	for x := 0; x < size; x++ {
		depth := band + int(hashF(x, 0, 3)*float64(band))
		for y := 0; y < depth && y < size; y++ {
			img.SetNRGBA(x, y, lerpColor(color.NRGBA{58, 110, 36, 255}, color.NRGBA{108, 168, 62, 255}, hashF(x, y, 4)))
		}
	}
}

func stone(img *image.NRGBA, size int) {
	speckle(img, size, color.NRGBA{104, 104, 108, 255}, color.NRGBA{148, 148, 150, 255}, 5)
	// Horizontal cracks
	for y := size / 3; y < size; y += size / 3 {
		start := int(hashF(y, 1, 6) * float64(size/2))
		for x := start; x < start+size/3 && x < size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{84, 84, 88, 255})
		}
	}
}

func sand(img *image.NRGBA, size int) {
	speckle(img, size, color.NRGBA{206, 190, 136, 255}, color.NRGBA{232, 220, 170, 255}, 7)
}

// water is translucent so it can be told apart from the sand underneath in
// any tool that shows alpha; the renderer ignores alpha.
func water(img *image.NRGBA, size int) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			wave := 0.5 + 0.5*math.Sin(float64(x)*2*math.Pi/float64(size)+float64(y)*0.9)
			c := lerpColor(color.NRGBA{36, 84, 170, 200}, color.NRGBA{70, 130, 210, 200}, wave*0.7+hashF(x, y, 8)*0.3)
			img.SetNRGBA(x, y, c)
		}
	}
}

// woodTop shows growth rings around the center.
func woodTop(img *image.NRGBA, size int) {
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c)
			ring := 0.5 + 0.5*math.Cos(d*math.Pi*4/float64(size))
			img.SetNRGBA(x, y, lerpColor(color.NRGBA{130, 98, 58, 255}, color.NRGBA{184, 148, 96, 255}, ring))
		}
	}
	for i := 0; i < size; i++ {
		img.SetNRGBA(i, 0, color.NRGBA{92, 68, 40, 255})
		img.SetNRGBA(i, size-1, color.NRGBA{92, 68, 40, 255})
		img.SetNRGBA(0, i, color.NRGBA{92, 68, 40, 255})
		img.SetNRGBA(size-1, i, color.NRGBA{92, 68, 40, 255})
	}
}

// woodSide is bark: vertical streaks.
func woodSide(img *image.NRGBA, size int) {
	for x := 0; x < size; x++ {
		col := hashF(x, 0, 10)
		for y := 0; y < size; y++ {
			t := col*0.7 + hashF(x, y, 11)*0.3
			img.SetNRGBA(x, y, lerpColor(color.NRGBA{72, 52, 30, 255}, color.NRGBA{118, 86, 52, 255}, t))
		}
	}
}

func leaves(img *image.NRGBA, size int) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			n := hashF(x, y, 12)
			c := lerpColor(color.NRGBA{30, 84, 28, 255}, color.NRGBA{70, 140, 52, 255}, n)
			if n < 0.12 {
				c.A = 0
			}
			img.SetNRGBA(x, y, c)
		}
	}
}

// plank is four boards with dark seams.
func plank(img *image.NRGBA, size int) {
	board := size / 4
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := lerpColor(color.NRGBA{160, 118, 70, 255}, color.NRGBA{196, 152, 96, 255}, hashF(x/3, y, 13))
			if y%board == board-1 {
				c = color.NRGBA{104, 74, 42, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
}

// lamp is a bright core inside a dark frame.
func lamp(img *image.NRGBA, size int) {
	c := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Max(math.Abs(float64(x)-c), math.Abs(float64(y)-c)) / c
			col := lerpColor(color.NRGBA{255, 236, 160, 255}, color.NRGBA{220, 150, 50, 255}, d)
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				col = color.NRGBA{70, 56, 40, 255}
			}
			img.SetNRGBA(x, y, col)
		}
	}
}
