package color

import (
	"fmt"
	stdcolor "image/color"
	"strconv"
)

// RGB is an 8-bit per channel color.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// FromColor converts any color to its 8-bit RGB channels, ignoring alpha:
// half transparent red is still #ff0000.
func FromColor(c stdcolor.Color) RGB {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGB{int(n.R), int(n.G), int(n.B)}
}

// RGBA implements image/color.Color. The color is fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex encodes c.
func (c RGB) Hex() Hex {
	return RGBToHex(float64(c.R), float64(c.G), float64(c.B))
}

// CSS formats c as a CSS color function: rgb(r, g, b) for an alpha of
// exactly 1 and rgba(r, g, b, alpha) otherwise.
func (c RGB) CSS(alpha float64) string {
	if alpha == 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	a := strconv.FormatFloat(alpha, 'f', -1, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, a)
}

func (c RGB) String() string {
	return c.CSS(1)
}
