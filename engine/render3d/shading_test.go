package render3d

import (
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/1siamBot/diorama/engine/texture"
)

var (
	eye     = mgl32.Vec3{0, 0, 5}
	forward = mgl32.Vec3{0, 0, -1}
	sky     = NewColor(4, 12, 36)
)

// stripes is a 1-wide texture whose rows are red, green, blue, white from the top.
func stripes() *texture.Texture {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 4))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 255, 0, 255})
	img.Set(0, 2, color.NRGBA{0, 0, 255, 255})
	img.Set(0, 3, color.NRGBA{255, 255, 255, 0})
	return texture.FromImage("stripes", img, 0)
}

func TestMaterial_DiffuseColorWithoutTexture(t *testing.T) {
	m := NewMaterial(NewColor(10, 20, 30), 1, [2]float32{0.5, 0.5})
	if got := m.DiffuseColor(0.3, 0.9); got != m.Diffuse {
		t.Errorf("Expected flat diffuse, got %v", got)
	}
}

func TestMaterial_DiffuseColorFlipsVOnce(t *testing.T) {
	m := BlackMaterial().WithTexture(stripes())
	tests := []struct {
		name string
		v    float32
		want Color
	}{
		{"v=0 is the bottom row", 0, NewColor(255, 255, 255)},
		{"v=1 is the top row", 1, NewColor(255, 0, 0)},
		{"v=0.5 floors to row 1", 0.5, NewColor(0, 255, 0)},
		{"v=0.2 floors to row 2", 0.2, NewColor(0, 0, 255)},
		{"below range clamps", -3, NewColor(255, 255, 255)},
		{"above range clamps", 7, NewColor(255, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.DiffuseColor(0.5, tt.v); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	// Sampling at v and 1-v must land on mirrored rows.
	tex := stripes()
	for _, v := range []float32{0, 0.2, 0.5, 0.8, 1} {
		row := int((1 - v) * float32(tex.Height()-1))
		p := tex.At(0, row)
		if got := m.DiffuseColor(0, v); got != NewColor(p[0], p[1], p[2]) {
			t.Errorf("v=%v: expected row %d, got %v", v, row, got)
		}
	}
}

func TestShade_UnlitIgnoresLight(t *testing.T) {
	glow := NewColor(5, 5, 5)
	m := NewMaterial(NewColor(10, 20, 30), 50, [2]float32{0, 0}).WithEmissive(glow)
	hit := newIntersect(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}, 4, m, 0, 0)

	lights := []Light{
		NewLight(mgl32.Vec3{0, 0, 10}, NewColor(255, 255, 255), 5, 1),
		NewLight(mgl32.Vec3{0, 0, -10}, NewColor(255, 0, 0), 0, 1),
		NewLight(mgl32.Vec3{100, 100, 10}, NewColor(0, 0, 255), 100, 3),
	}
	for _, l := range lights {
		if got := Shade(hit, eye, l); got != NewColor(15, 25, 35) {
			t.Errorf("Light %v: expected %v, got %v", l.Position, NewColor(15, 25, 35), got)
		}
	}
}

func TestShade_UnlitTexturedUsesSample(t *testing.T) {
	m := BlackMaterial().WithTexture(stripes())
	hit := newIntersect(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, 1, m, 0, 1)
	l := NewLight(mgl32.Vec3{0, 10, 0}, NewColor(255, 255, 255), 10, 1)
	if got := Shade(hit, eye, l); got != NewColor(255, 0, 0) {
		t.Errorf("Expected top texel, got %v", got)
	}
}

func TestShade_DiffuseAndSpecular(t *testing.T) {
	m := NewMaterial(NewColor(40, 60, 80), 10, [2]float32{0.5, 0.25})
	hit := newIntersect(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}, 4, m, 0, 0)
	l := NewLight(mgl32.Vec3{0, 0, 2}, NewColor(200, 100, 0), 1, 1)

	// base (40,60,80) + diffuse (20,30,40) + specular (50,25,0)
	if got, want := Shade(hit, eye, l), NewColor(110, 115, 120); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestShade_FacingAwayKeepsBase(t *testing.T) {
	m := NewMaterial(NewColor(40, 60, 80), 10, [2]float32{0.9, 0.9})
	hit := newIntersect(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}, 4, m, 0, 0)
	l := NewLight(mgl32.Vec3{0, 0, -10}, NewColor(255, 255, 255), 3, 1)

	if got := Shade(hit, eye, l); got != m.Diffuse {
		t.Errorf("Expected unlit base %v, got %v", m.Diffuse, got)
	}
}

func TestShade_EmissiveAddsToLitSurface(t *testing.T) {
	m := NewMaterial(NewColor(40, 60, 80), 10, [2]float32{0.5, 0}).WithEmissive(NewColor(250, 0, 1))
	hit := newIntersect(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}, 4, m, 0, 0)
	l := NewLight(mgl32.Vec3{0, 0, 2}, NewColor(255, 255, 255), 1, 1)

	if got, want := Shade(hit, eye, l), NewColor(255, 90, 121); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestShade_DiffuseNotClampedAboveOne(t *testing.T) {
	m := NewMaterial(NewColor(20, 20, 20), 1, [2]float32{1, 0})
	hit := newIntersect(mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 0, 1}, 4, m, 0, 0)
	l := NewLight(mgl32.Vec3{0, 0, 2}, NewColor(0, 0, 0), 3, 1)

	// 20 + 20*1*1*3
	if got, want := Shade(hit, eye, l), NewColor(80, 80, 80); got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestCastRay_Background(t *testing.T) {
	objects := []Object{NewSphere(mgl32.Vec3{10, 10, 10}, 1, flat(NewColor(1, 2, 3)))}
	l := NewLight(mgl32.Vec3{}, NewColor(255, 255, 255), 1, 1)
	if got := CastRay(eye, forward, objects, l, sky); got != sky {
		t.Errorf("Expected background %v, got %v", sky, got)
	}
	if got := CastRay(eye, forward, nil, l, NewColor(9, 9, 9)); got != NewColor(9, 9, 9) {
		t.Errorf("Expected supplied background, got %v", got)
	}
}

func TestCastRay_NearestHitWins(t *testing.T) {
	far := NewSphere(mgl32.Vec3{0, 0, -10}, 1, flat(NewColor(255, 0, 0)))
	near := NewCube(mgl32.Vec3{0, 0, 0}, 1, flat(NewColor(0, 255, 0)))
	middle := NewSphere(mgl32.Vec3{0, 0, -4}, 1, flat(NewColor(0, 0, 255)))
	l := NewLight(mgl32.Vec3{0, 0, 10}, NewColor(255, 255, 255), 1, 1)

	orders := [][]Object{
		{far, middle, near},
		{near, far, middle},
		{middle, near, far},
	}
	for i, objects := range orders {
		if got := CastRay(eye, forward, objects, l, sky); got != NewColor(0, 255, 0) {
			t.Errorf("Order %d: expected nearest cube color, got %v", i, got)
		}
		hit := Nearest(eye, forward, objects)
		if hit.Distance != 4.5 {
			t.Errorf("Order %d: expected distance 4.5, got %v", i, hit.Distance)
		}
	}
}

func TestSunSphere(t *testing.T) {
	l := NewLight(mgl32.Vec3{0, 0, -20}, NewColor(255, 255, 255), 5, 3)
	sun := l.SunSphere(NewColor(255, 234, 100))
	got := CastRay(eye, forward, []Object{sun}, l, sky)
	if got != NewColor(255, 234, 100) {
		t.Errorf("Expected flat sun color, got %v", got)
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0, 1, 0})
	if !vecNear(got, mgl32.Vec3{1, 1, 0}) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}
