package color

// Text colors returned by ContrastYIQ. LightText keeps the short CSS
// form; Normalize expands it.
const (
	DarkText  Hex = "#111827"
	LightText Hex = "#fff"
)

// Luma returns the BT.601 weighted brightness of c in [0, 255].
func Luma(c RGB) float64 {
	return float64(c.R*299+c.G*587+c.B*114) / 1000
}

// ContrastYIQ picks a readable text color for the background raw.
// Invalid input gets DarkText.
func ContrastYIQ(raw string) Hex {
	c, ok := HexToRGB(raw)
	if !ok || Luma(c) >= 128 {
		return DarkText
	}
	return LightText
}
