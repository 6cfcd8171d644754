// Package palette derives a ten step tonal scale from a single color.
package palette

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/mrkndrei/hexlab/color"
)

// Steps lists the shade keys from lightest to darkest.
var Steps = [...]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// ladder is the target lightness of every step but the last.
var ladder = [...]int{97, 90, 80, 70, 60, 50, 40, 30, 20}

const (
	// the first lightTints steps are desaturated by lightTintScale,
	// the remaining ladder steps boosted by deepToneScale
	lightTints     = 4
	lightTintScale = 0.9
	deepToneScale  = 1.05
	ladderMinSat   = 10

	anchorScale     = 0.9
	anchorMinSat    = 5
	anchorLightness = 12
)

// Shade is one step of a ShadeSet.
type Shade struct {
	Step int       `json:"step"`
	Hex  color.Hex `json:"hex"`
}

// ShadeSet is the generated palette, ordered from light to dark.
// Selected names the step that holds the exact input color.
type ShadeSet struct {
	Shades   []Shade
	Selected int
}

// Generate builds the shades of raw. It fails only if raw is not a valid
// hex color.
func Generate(raw string) (ShadeSet, bool) {
	base, ok := color.Normalize(raw)
	if !ok {
		return ShadeSet{}, false
	}
	rgb := base.RGB()
	hsl := color.RGBToHSL(rgb.R, rgb.G, rgb.B)

	shades := make([]Shade, 0, len(Steps))
	for i, l := range ladder {
		scale := deepToneScale
		if i < lightTints {
			scale = lightTintScale
		}
		s := clamp(int(math.Round(float64(hsl.S)*scale)), ladderMinSat, 100)
		shades = append(shades, Shade{
			Step: Steps[i],
			Hex:  color.HSLToHex(hsl.H, s, clamp(l, 0, 100)),
		})
	}
	s := clamp(int(math.Round(float64(hsl.S)*anchorScale)), anchorMinSat, 100)
	shades = append(shades, Shade{
		Step: Steps[len(Steps)-1],
		Hex:  color.HSLToHex(hsl.H, s, anchorLightness),
	})

	i := nearest(shades, rgb)
	shades[i].Hex = base
	return ShadeSet{Shades: shades, Selected: shades[i].Step}, true
}

// Get returns the color of the given step.
func (p ShadeSet) Get(step int) (color.Hex, bool) {
	for _, s := range p.Shades {
		if s.Step == step {
			return s.Hex, true
		}
	}
	return "", false
}

// Base returns the input color, stored at the selected step.
func (p ShadeSet) Base() color.Hex {
	h, _ := p.Get(p.Selected)
	return h
}

// MarshalJSON writes the shades as an object keyed by step, keeping the
// light to dark order.
func (p ShadeSet) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(`{"shades":{`)
	for i, s := range p.Shades {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(buf, "%q:%q", strconv.Itoa(s.Step), s.Hex)
	}
	fmt.Fprintf(buf, `},"selected":%d}`, p.Selected)
	return buf.Bytes(), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
