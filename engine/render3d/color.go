package render3d

import "fmt"

// Color is an 8-bit-per-channel RGB value. Arithmetic saturates instead of wrapping.
type Color struct {
	R, G, B uint8
}

func NewColor(r, g, b uint8) Color { return Color{r, g, b} }

// ColorFromHex unpacks a 0xRRGGBB value.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
	}
}

// Hex packs the color as 0xRRGGBB.
func (c Color) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Add is channel-wise addition saturating at 255.
func (c Color) Add(o Color) Color {
	return Color{addSat(c.R, o.R), addSat(c.G, o.G), addSat(c.B, o.B)}
}

// Mul scales every channel, clamping to [0,255] and truncating.
func (c Color) Mul(s float32) Color {
	return Color{mulClamp(c.R, s), mulClamp(c.G, s), mulClamp(c.B, s)}
}

// Lerp blends toward o by t. The conversion back to bytes truncates.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: lerpChannel(c.R, o.R, t),
		G: lerpChannel(c.G, o.G, t),
		B: lerpChannel(c.B, o.B, t),
	}
}

// TransitionColor is Lerp as a free function, used by the day/night cycle.
func TransitionColor(from, to Color, t float32) Color {
	return from.Lerp(to, t)
}

func (c Color) String() string {
	return fmt.Sprintf("Color(r: %d, g: %d, b: %d)", c.R, c.G, c.B)
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func mulClamp(ch uint8, s float32) uint8 {
	return clampByte(float32(ch) * s)
}

func lerpChannel(a, b uint8, t float32) uint8 {
	return clampByte(float32(a)*(1-t) + float32(b)*t)
}

// clampByte truncates toward zero after clamping; NaN maps to 0.
func clampByte(f float32) uint8 {
	if !(f > 0) {
		return 0
	}
	if f >= 255 {
		return 255
	}
	return uint8(f)
}
