package color

import (
	"fmt"
	"math"
)

// HSL holds hue in degrees [0, 360) and saturation and lightness in
// percent [0, 100], all rounded to integers.
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

func (c HSL) String() string {
	return fmt.Sprintf("%d°, %d%%, %d%%", c.H, c.S, c.L)
}

// RGB converts c back to RGB. The round trip through HSL may be off by
// one per channel because every HSL component is rounded.
func (c HSL) RGB() RGB {
	return HSLToRGB(c.H, c.S, c.L)
}

// RGBToHSL converts 8-bit channels to HSL.
func RGBToHSL(r, g, b int) HSL {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	hi := math.Max(rf, math.Max(gf, bf))
	lo := math.Min(rf, math.Min(gf, bf))

	var h, s float64
	l := (hi + lo) / 2
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}
		switch hi {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6
			}
		case gf:
			h = (bf-rf)/d + 2
		default:
			h = (rf-gf)/d + 4
		}
		h /= 6
	}

	hue := int(math.Round(h * 360))
	if hue == 360 {
		hue = 0
	}
	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HexToHSL normalizes raw and converts it to HSL.
func HexToHSL(raw string) (HSL, bool) {
	c, ok := HexToRGB(raw)
	if !ok {
		return HSL{}, false
	}
	return RGBToHSL(c.R, c.G, c.B), true
}

// HSLToRGB converts hue (degrees), saturation and lightness (percent) to
// 8-bit channels.
func HSLToRGB(h, s, l int) RGB {
	hf, sf, lf := float64(h)/360, float64(s)/100, float64(l)/100

	var r, g, b float64
	if sf == 0 {
		r, g, b = lf, lf, lf
	} else {
		var q float64
		if lf < 0.5 {
			q = lf * (1 + sf)
		} else {
			q = lf + sf - lf*sf
		}
		p := 2*lf - q
		r = hueToChannel(p, q, hf+1.0/3)
		g = hueToChannel(p, q, hf)
		b = hueToChannel(p, q, hf-1.0/3)
	}
	return RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

// HSLToHex converts HSL straight to its hex encoding.
func HSLToHex(h, s, l int) Hex {
	return HSLToRGB(h, s, l).Hex()
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
