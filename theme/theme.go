package theme

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mrkndrei/hexlab/color"
	"github.com/mrkndrei/hexlab/palette"
)

// Theme is the context handed to export templates.
type Theme map[string]interface{}

// Swatch describes one shade for templates.
type Swatch struct {
	Step       int
	Hex        string
	RGB        string
	HSL        string
	Foreground string
	Selected   bool
}

//**exported functions**//
// Create builds a theme from a shade set and user options. Options
// override generated keys.
func Create(set palette.ShadeSet, opts map[string]interface{}) (*Theme, error) {
	if len(set.Shades) == 0 {
		return nil, fmt.Errorf("shade set is empty")
	}
	t := make(Theme)

	swatches := make([]Swatch, 0, len(set.Shades))
	for _, s := range set.Shades {
		rgb := s.Hex.RGB()
		sw := Swatch{
			Step:       s.Step,
			Hex:        string(s.Hex),
			RGB:        rgb.String(),
			HSL:        color.RGBToHSL(rgb.R, rgb.G, rgb.B).String(),
			Foreground: string(color.ContrastYIQ(string(s.Hex))),
			Selected:   s.Step == set.Selected,
		}
		swatches = append(swatches, sw)
		t["shade"+strconv.Itoa(s.Step)] = sw.Hex
	}
	t["shades"] = swatches
	t["base"] = string(set.Base())
	t["selected"] = set.Selected

	for k, v := range opts {
		t[k] = v
	}

	setDefaults(&t, set)

	return &t, nil
}

// Print writes one truecolor swatch line per shade, marking the selected
// step. With plain set, escape sequences are left out.
func Print(w io.Writer, set palette.ShadeSet, plain bool) {
	for _, s := range set.Shades {
		mark := " "
		if s.Step == set.Selected {
			mark = "*"
		}
		if plain {
			fmt.Fprintf(w, "%s %3d %s\n", mark, s.Step, s.Hex)
			continue
		}
		fmt.Fprintf(w, "%s %3d %s %s\n", mark, s.Step, Block(s.Hex), s.Hex)
	}
}

// Block renders a small truecolor block in the color h.
func Block(h color.Hex) string {
	c := h.RGB()
	return fmt.Sprintf("\033[38;2;%d;%d;%dm████\033[0m", c.R, c.G, c.B)
}

//**helper functions**//
func setDefaults(t *Theme, set palette.ShadeSet) {
	if _, ok := (*t)["name"]; !ok {
		(*t)["name"] = "primary"
	}

	if _, ok := (*t)["prefix"]; !ok {
		(*t)["prefix"] = "color"
	}

	if _, ok := (*t)["background"]; !ok {
		(*t)["background"] = (*t)["shade50"]
	}

	if _, ok := (*t)["foreground"]; !ok {
		(*t)["foreground"] = string(color.ContrastYIQ(string(set.Base())))
	}
}
