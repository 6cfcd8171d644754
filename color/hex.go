package color

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Hex is a normalized color: '#' followed by six lowercase hex digits.
type Hex string

// Normalize validates raw input and returns its canonical Hex form.
//
// Surrounding whitespace and a single leading '#' are ignored and a three
// digit shorthand is expanded by doubling every digit. Anything that is not
// six hex digits after that yields ok == false.
func Normalize(raw string) (Hex, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return "", false
		}
	}
	return Hex("#" + strings.ToLower(s)), true
}

// RGB returns the channels of h. h must come from Normalize or RGBToHex.
func (h Hex) RGB() RGB {
	c, _ := HexToRGB(string(h))
	return c
}

func (h Hex) String() string { return string(h) }

// HexToRGB normalizes raw and splits it into its three channels.
func HexToRGB(raw string) (RGB, bool) {
	h, ok := Normalize(raw)
	if !ok {
		return RGB{}, false
	}
	return RGB{
		R: hexByte(h[1], h[2]),
		G: hexByte(h[3], h[4]),
		B: hexByte(h[5], h[6]),
	}, true
}

// RGBToHex encodes the three channels. Each value is clamped to [0, 255]
// and rounded, so the result is always a valid Hex.
func RGBToHex(r, g, b float64) Hex {
	return Hex(fmt.Sprintf("#%02x%02x%02x", clampByte(r), clampByte(g), clampByte(b)))
}

// Random returns a uniformly distributed color.
func Random(rnd *rand.Rand) Hex {
	return RGBToHex(float64(rnd.Intn(256)), float64(rnd.Intn(256)), float64(rnd.Intn(256)))
}

func clampByte(v float64) int {
	return int(math.Max(0, math.Min(255, math.Round(v))))
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func hexByte(hi, lo byte) int {
	return nibble(hi)<<4 | nibble(lo)
}

func nibble(c byte) int {
	switch {
	case c >= 'a':
		return int(c-'a') + 10
	case c >= 'A':
		return int(c-'A') + 10
	default:
		return int(c - '0')
	}
}
