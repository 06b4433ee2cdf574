package scene

import (
	"log"
	"sync"

	"github.com/1siamBot/diorama/engine/maplib"
	"github.com/1siamBot/diorama/engine/render3d"
	"github.com/1siamBot/diorama/engine/texture"
)

// BlockStyle describes the material of one block type. Top, Side and Bottom
// name textures in the asset table; an empty or missing name leaves the face
// flat colored.
type BlockStyle struct {
	Diffuse  render3d.Color
	Specular float32
	Albedo   [2]float32
	Emissive *render3d.Color

	Top, Side, Bottom string
}

// Palette maps block types to styles.
type Palette map[maplib.BlockType]BlockStyle

func emit(c render3d.Color) *render3d.Color { return &c }

// DefaultPalette returns the styles used by the built-in textures generated
// by tools/generate_textures.
func DefaultPalette() Palette {
	return Palette{
		maplib.BlockGrass: {
			Diffuse: render3d.NewColor(80, 160, 60), Specular: 10, Albedo: [2]float32{0.9, 0.1},
			Top: "grass_top", Side: "grass_side", Bottom: "dirt",
		},
		maplib.BlockDirt: {
			Diffuse: render3d.NewColor(120, 85, 50), Specular: 5, Albedo: [2]float32{0.9, 0.05},
			Top: "dirt", Side: "dirt", Bottom: "dirt",
		},
		maplib.BlockStone: {
			Diffuse: render3d.NewColor(128, 128, 128), Specular: 30, Albedo: [2]float32{0.7, 0.3},
			Top: "stone", Side: "stone", Bottom: "stone",
		},
		maplib.BlockSand: {
			Diffuse: render3d.NewColor(220, 200, 150), Specular: 5, Albedo: [2]float32{0.9, 0.1},
			Top: "sand", Side: "sand", Bottom: "sand",
		},
		maplib.BlockWater: {
			Diffuse: render3d.NewColor(40, 110, 200), Specular: 80, Albedo: [2]float32{0.5, 0.6},
			Top: "water", Side: "water", Bottom: "water",
		},
		maplib.BlockWood: {
			Diffuse: render3d.NewColor(110, 75, 40), Specular: 5, Albedo: [2]float32{0.9, 0.1},
			Top: "wood_top", Side: "wood_side", Bottom: "wood_top",
		},
		maplib.BlockLeaves: {
			Diffuse: render3d.NewColor(50, 130, 50), Specular: 5, Albedo: [2]float32{0.8, 0.1},
			Top: "leaves", Side: "leaves", Bottom: "leaves",
		},
		maplib.BlockPlank: {
			Diffuse: render3d.NewColor(170, 130, 80), Specular: 20, Albedo: [2]float32{0.8, 0.2},
			Top: "plank", Side: "plank", Bottom: "plank",
		},
		maplib.BlockLamp: {
			Diffuse: render3d.NewColor(255, 220, 150), Albedo: [2]float32{0, 0},
			Emissive: emit(render3d.NewColor(40, 30, 10)),
			Top: "lamp", Side: "lamp", Bottom: "lamp",
		},
	}
}

var warnOnce sync.Map

// Faces resolves the six face materials of block in cube face order.
// textures may be nil.
func (p Palette) Faces(block maplib.BlockType, textures *texture.Manager) [6]render3d.Material {
	style, ok := p[block]
	if !ok {
		style = BlockStyle{Diffuse: render3d.NewColor(255, 0, 255), Albedo: [2]float32{0.9, 0.1}}
	}
	base := render3d.Material{
		Diffuse:  style.Diffuse,
		Specular: style.Specular,
		Albedo:   style.Albedo,
		Emissive: style.Emissive,
	}
	side := withTexture(base, style.Side, textures)
	return [6]render3d.Material{
		render3d.FaceXMin: side,
		render3d.FaceXMax: side,
		render3d.FaceYMin: withTexture(base, style.Bottom, textures),
		render3d.FaceYMax: withTexture(base, style.Top, textures),
		render3d.FaceZMin: side,
		render3d.FaceZMax: side,
	}
}

func withTexture(m render3d.Material, name string, textures *texture.Manager) render3d.Material {
	if name == "" || textures == nil {
		return m
	}
	t, ok := textures.Get(name)
	if !ok {
		if _, seen := warnOnce.LoadOrStore(name, true); !seen {
			log.Printf("scene: texture %q not loaded, using flat color", name)
		}
		return m
	}
	return m.WithTexture(t)
}
