package softrast

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/softrast/linear"
)

// Color is a linear RGB color. Each component is nominally in [0, 1];
// values outside that range are kept during shading and clamped when the
// color is packed into a framebuffer.
type Color struct {
	R, G, B float32
}

// Common colors
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(1, 1, 1)
	Red     = RGB(1, 0, 0)
	Green   = RGB(0, 1, 0)
	Blue    = RGB(0, 0, 1)
	Yellow  = RGB(1, 1, 0)
	Cyan    = RGB(0, 1, 1)
	Magenta = RGB(1, 0, 1)
)

// RGB creates a color from its components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// ToRaw packs c into the 24-bit 0xRRGGBB framebuffer format.
// Each channel is round(clamp(component, 0, 1) * 255).
func ToRaw(c Color) uint32 {
	return quantize(c.R)<<16 | quantize(c.G)<<8 | quantize(c.B)
}

// FromRaw unpacks a 0xRRGGBB value. Bits above the low 24 are ignored.
func FromRaw(raw uint32) Color {
	return Color{
		R: float32((raw>>16)&0xFF) / 255,
		G: float32((raw>>8)&0xFF) / 255,
		B: float32(raw&0xFF) / 255,
	}
}

func quantize(x float32) uint32 {
	return uint32(math32.Round(clamp01(x) * 255))
}

func clamp01(x float32) float32 {
	if x < 0 || x != x {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Add returns the component-wise sum of two colors.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Mul returns the color scaled by s.
func (c Color) Mul(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Modulate returns the component-wise product of two colors.
func (c Color) Modulate(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
	}
}

// Interpolate implements Fragment so a bare Color can be used as the
// varying of a pipeline.
func (c Color) Interpolate(b, d Color, w linear.Vec3) Color {
	return Color{
		R: c.R*w.X + b.R*w.Y + d.R*w.Z,
		G: c.G*w.X + b.G*w.Y + d.G*w.Z,
		B: c.B*w.X + b.B*w.Y + d.B*w.Z,
	}
}

// RGBA implements color.Color. The color is treated as opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	raw := ToRaw(c)
	r = (raw >> 16) & 0xFF
	g = (raw >> 8) & 0xFF
	b = raw & 0xFF
	return r | r<<8, g | g<<8, b | b<<8, 0xFFFF
}

// FromColor converts a standard color.Color to Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
	}
}

// FromGPUColor converts a gputypes color, dropping alpha.
func FromGPUColor(c gputypes.Color) Color {
	return Color{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
}

// GPUColor returns c as an opaque gputypes color.
func (c Color) GPUColor() gputypes.Color {
	return gputypes.NewColorRGB(float64(c.R), float64(c.G), float64(c.B))
}

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// Unrecognized input yields Black.
func Hex(hex string) Color {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex is like Hex but reports malformed input as ErrInvalidColor.
func ParseHex(hex string) (Color, error) {
	s := strings.TrimPrefix(hex, "#")

	var raw uint32
	switch len(s) {
	case 3, 6:
		for i := 0; i < len(s); i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return Black, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
			}
			raw = raw<<4 | d
			if len(s) == 3 {
				raw = raw<<4 | d
			}
		}
	default:
		return Black, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return FromRaw(raw), nil
}

func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	default:
		return 0, false
	}
}
