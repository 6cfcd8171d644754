package color

import (
	stdcolor "image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHexToHSL(t *testing.T) {
	tests := []struct {
		in   string
		want HSL
	}{
		{"#34a1eb", HSL{204, 82, 56}},
		{"#000000", HSL{0, 0, 0}},
		{"#ffffff", HSL{0, 0, 100}},
		{"#ff0000", HSL{0, 100, 50}},
		{"#808080", HSL{0, 0, 50}},
		{"#123456", HSL{210, 65, 20}},
		{"#ff0001", HSL{0, 100, 50}}, // hue 359.76 wraps to 0
	}
	for _, test := range tests {
		got, ok := HexToHSL(test.in)
		if !ok {
			t.Errorf("HexToHSL(%q) failed", test.in)
			continue
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("HexToHSL(%q) (-want +got):\n%s", test.in, d)
		}
	}
}

func TestHexToCMYK(t *testing.T) {
	tests := []struct {
		in   string
		want CMYK
	}{
		{"#000000", CMYK{0, 0, 0, 100}},
		{"#ffffff", CMYK{0, 0, 0, 0}},
		{"#34a1eb", CMYK{78, 31, 0, 8}},
		{"#ff0000", CMYK{0, 100, 100, 0}},
		{"#808080", CMYK{0, 0, 0, 50}},
		{"#123456", CMYK{79, 40, 0, 66}},
	}
	for _, test := range tests {
		got, ok := HexToCMYK(test.in)
		if !ok {
			t.Errorf("HexToCMYK(%q) failed", test.in)
			continue
		}
		if d := cmp.Diff(test.want, got); d != "" {
			t.Errorf("HexToCMYK(%q) (-want +got):\n%s", test.in, d)
		}
	}
}

func TestHSLToRGB(t *testing.T) {
	tests := []struct {
		in   HSL
		want RGB
	}{
		{HSL{0, 0, 0}, RGB{0, 0, 0}},
		{HSL{0, 0, 100}, RGB{255, 255, 255}},
		{HSL{0, 100, 50}, RGB{255, 0, 0}},
		{HSL{120, 100, 50}, RGB{0, 255, 0}},
		{HSL{240, 100, 50}, RGB{0, 0, 255}},
		{HSL{0, 0, 50}, RGB{128, 128, 128}},
	}
	for _, test := range tests {
		got := test.in.RGB()
		if got != test.want {
			t.Errorf("%v.RGB() = %v, want %v", test.in, got, test.want)
		}
	}
	if got := HSLToHex(0, 100, 50); got != "#ff0000" {
		t.Errorf("HSLToHex(0, 100, 50) = %q", got)
	}
}

// The HSL round trip loses precision because each component is rounded to
// an integer on its own; over the whole RGB cube the error never exceeds 5.
func TestHSLRoundTrip(t *testing.T) {
	const maxErr = 5
	for r := 0; r < 256; r += 3 {
		for g := 0; g < 256; g += 3 {
			for b := 0; b < 256; b += 3 {
				hsl := RGBToHSL(r, g, b)
				if hsl.H < 0 || hsl.H >= 360 || hsl.S < 0 || hsl.S > 100 || hsl.L < 0 || hsl.L > 100 {
					t.Fatalf("RGBToHSL(%d, %d, %d) = %v out of range", r, g, b, hsl)
				}
				back := hsl.RGB()
				if abs(back.R-r) > maxErr || abs(back.G-g) > maxErr || abs(back.B-b) > maxErr {
					t.Fatalf("round trip of (%d, %d, %d) gave %v", r, g, b, back)
				}
			}
		}
	}
}

func TestContrastYIQ(t *testing.T) {
	tests := []struct {
		in   string
		want Hex
	}{
		{"#ffffff", DarkText},
		{"#000000", LightText},
		{"#34a1eb", DarkText},
		{"#ff0000", LightText},
		{"#123456", LightText},
		{"#808080", DarkText},
	}
	for _, test := range tests {
		if got := ContrastYIQ(test.in); got != test.want {
			t.Errorf("ContrastYIQ(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestCSS(t *testing.T) {
	c := RGB{52, 161, 235}
	if got := c.CSS(1); got != "rgb(52, 161, 235)" {
		t.Errorf("CSS(1) = %q", got)
	}
	if got := c.String(); got != "rgb(52, 161, 235)" {
		t.Errorf("String() = %q", got)
	}
	if got := c.CSS(0.5); got != "rgba(52, 161, 235, 0.5)" {
		t.Errorf("CSS(0.5) = %q", got)
	}
	if got := c.CSS(0); got != "rgba(52, 161, 235, 0)" {
		t.Errorf("CSS(0) = %q", got)
	}
}

func TestDisplayStrings(t *testing.T) {
	if got := (HSL{204, 82, 56}).String(); got != "204°, 82%, 56%" {
		t.Errorf("HSL.String() = %q", got)
	}
	if got := (CMYK{78, 31, 0, 8}).String(); got != "78%, 31%, 0%, 8%" {
		t.Errorf("CMYK.String() = %q", got)
	}
}

func TestFromColor(t *testing.T) {
	c := RGB{52, 161, 235}
	if got := FromColor(c); got != c {
		t.Errorf("FromColor(%v) = %v", c, got)
	}
	if got := FromColor(stdcolor.NRGBA{R: 1, G: 2, B: 3, A: 255}); got != (RGB{1, 2, 3}) {
		t.Errorf("FromColor(NRGBA) = %v", got)
	}
	if got := FromColor(stdcolor.NRGBA{R: 255, A: 128}); got != (RGB{R: 255}) {
		t.Errorf("FromColor(half transparent red) = %v", got)
	}
	if got := FromColor(stdcolor.RGBA{R: 128, A: 128}); got != (RGB{R: 255}) {
		t.Errorf("FromColor(premultiplied half transparent red) = %v", got)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestInspect(t *testing.T) {
	got, ok := Inspect(" 34A1EB ")
	if !ok {
		t.Fatal("Inspect failed")
	}
	want := Info{
		Hex:      "#34a1eb",
		RGB:      RGB{52, 161, 235},
		HSL:      HSL{204, 82, 56},
		CMYK:     CMYK{78, 31, 0, 8},
		Contrast: DarkText,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Inspect (-want +got):\n%s", d)
	}

	if _, ok := Inspect("#00000g"); ok {
		t.Error("Inspect of invalid input succeeded")
	}
}
