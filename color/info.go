package color

// Info collects every representation of one color.
type Info struct {
	Hex      Hex  `json:"hex"`
	RGB      RGB  `json:"rgb"`
	HSL      HSL  `json:"hsl"`
	CMYK     CMYK `json:"cmyk"`
	Contrast Hex  `json:"contrast"`
}

// Inspect normalizes raw and converts it into all supported models.
func Inspect(raw string) (Info, bool) {
	h, ok := Normalize(raw)
	if !ok {
		return Info{}, false
	}
	c := h.RGB()
	return Info{
		Hex:      h,
		RGB:      c,
		HSL:      RGBToHSL(c.R, c.G, c.B),
		CMYK:     RGBToCMYK(c.R, c.G, c.B),
		Contrast: ContrastYIQ(string(h)),
	}, true
}
