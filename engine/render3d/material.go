package render3d

import (
	"github.com/chewxy/math32"

	"github.com/1siamBot/diorama/engine/texture"
)

// Material describes how a surface reacts to light.
//
// Albedo holds the diffuse and specular weights. A zero albedo marks the
// surface as unlit: shading returns its own color untouched.
// Texture, when set, replaces Diffuse per pixel; Diffuse still tints the
// diffuse light term.
type Material struct {
	Diffuse  Color
	Specular float32
	Albedo   [2]float32
	Texture  *texture.Texture
	Emissive *Color
}

func NewMaterial(diffuse Color, specular float32, albedo [2]float32) Material {
	return Material{Diffuse: diffuse, Specular: specular, Albedo: albedo}
}

// BlackMaterial is the zero material: black, unlit, untextured.
func BlackMaterial() Material {
	return Material{}
}

// WithTexture returns a copy of m sampling t.
func (m Material) WithTexture(t *texture.Texture) Material {
	m.Texture = t
	return m
}

// WithEmissive returns a copy of m that adds c to its base color.
func (m Material) WithEmissive(c Color) Material {
	m.Emissive = &c
	return m
}

// Unlit reports whether the material skips light computation.
func (m Material) Unlit() bool {
	return m.Albedo == [2]float32{0, 0}
}

// DiffuseColor samples the texture at (u, v) with nearest-neighbor lookup, or
// returns the flat diffuse color when there is no texture. v is measured from
// the bottom of the image.
func (m Material) DiffuseColor(u, v float32) Color {
	t := m.Texture
	if t == nil || t.Width() == 0 || t.Height() == 0 {
		return m.Diffuse
	}
	u = clamp01(u)
	v = 1 - clamp01(v)

	w, h := t.Width(), t.Height()
	x := int(math32.Floor(u * float32(w-1)))
	y := int(math32.Floor(v * float32(h-1)))
	if x > w-1 {
		x = w - 1
	}
	if y > h-1 {
		y = h - 1
	}
	p := t.At(x, y)
	return Color{p[0], p[1], p[2]}
}

// baseColor is the sampled color plus emission.
func (m Material) baseColor(u, v float32) Color {
	c := m.DiffuseColor(u, v)
	if m.Emissive != nil {
		c = c.Add(*m.Emissive)
	}
	return c
}
