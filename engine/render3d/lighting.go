package render3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Light is the single point light of the scene. Radius only sizes the sun
// sphere drawn at its position; lighting treats it as a point.
type Light struct {
	Position  mgl32.Vec3
	Color     Color
	Intensity float32
	Radius    float32
}

func NewLight(position mgl32.Vec3, c Color, intensity, radius float32) Light {
	return Light{Position: position, Color: c, Intensity: intensity, Radius: radius}
}

// SunSphere is the visible proxy for the light: an unlit sphere of the
// light's radius at its position.
func (l Light) SunSphere(c Color) *Sphere {
	return NewSphere(l.Position, l.Radius, NewMaterial(c, 0, [2]float32{0, 0}))
}

// Shade evaluates the local illumination of a hit seen from eye. Unlit
// materials return their base color. Otherwise the result is base color plus
// a Lambert diffuse term and a Phong specular term; there is no occlusion test.
// Each scalar factor is applied as its own truncating Color.Mul.
func Shade(hit Intersect, eye mgl32.Vec3, light Light) Color {
	m := hit.Material
	base := m.baseColor(hit.U, hit.V)
	if m.Unlit() {
		return base
	}

	l := normalize(light.Position.Sub(hit.Point))
	view := normalize(eye.Sub(hit.Point))
	r := Reflect(l.Mul(-1), hit.Normal)

	kd := math32.Max(0, hit.Normal.Dot(l))
	diffuse := m.Diffuse.Mul(m.Albedo[0]).Mul(kd).Mul(light.Intensity)

	ks := math32.Pow(math32.Max(0, view.Dot(r)), m.Specular)
	specular := light.Color.Mul(m.Albedo[1]).Mul(ks).Mul(light.Intensity)

	return base.Add(diffuse).Add(specular)
}
