package color

import (
	"fmt"
	"math"
)

// CMYK holds the four ink coverages in percent.
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

func (c CMYK) String() string {
	return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", c.C, c.M, c.Y, c.K)
}

// RGBToCMYK converts 8-bit channels to CMYK. Black maps to pure key.
func RGBToCMYK(r, g, b int) CMYK {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	k := 1 - math.Max(rf, math.Max(gf, bf))
	if k == 1 {
		return CMYK{K: 100}
	}
	return CMYK{
		C: percent((1 - rf - k) / (1 - k)),
		M: percent((1 - gf - k) / (1 - k)),
		Y: percent((1 - bf - k) / (1 - k)),
		K: percent(k),
	}
}

// HexToCMYK normalizes raw and converts it to CMYK.
func HexToCMYK(raw string) (CMYK, bool) {
	c, ok := HexToRGB(raw)
	if !ok {
		return CMYK{}, false
	}
	return RGBToCMYK(c.R, c.G, c.B), true
}

func percent(v float64) int {
	p := int(math.Round(v * 100))
	if p < 0 {
		return 0
	}
	return p
}
