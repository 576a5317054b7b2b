package graphics

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is an RGBA color with one byte per channel.
type Color struct {
	R, G, B, A uint8
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float32) {
	return float32(c.R) / maxByte,
		float32(c.G) / maxByte,
		float32(c.B) / maxByte,
		float32(c.A) / maxByte
}

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	c.A = a
	return c
}

// Common colors.
var (
	ColorTransparent = Color{}
	ColorBlack       = RGB(0, 0, 0)
	ColorWhite       = RGB(0xFF, 0xFF, 0xFF)
	ColorLightGray   = RGB(0xD3, 0xD3, 0xD3)
	ColorGray        = RGB(0x80, 0x80, 0x80)
	ColorDarkGray    = RGB(0xA9, 0xA9, 0xA9)
)
