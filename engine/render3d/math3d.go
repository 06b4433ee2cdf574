package render3d

import "github.com/go-gl/mathgl/mgl32"

// Reflect mirrors incident about normal: I - 2(I·N)N.
func Reflect(incident, normal mgl32.Vec3) mgl32.Vec3 {
	return incident.Sub(normal.Mul(2 * incident.Dot(normal)))
}

// clamp01 maps NaN to 0.
func clamp01(f float32) float32 {
	if !(f > 0) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// normalize returns the zero vector for zero-length input instead of NaNs.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l < 1e-10 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}
