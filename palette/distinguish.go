package palette

import (
	"github.com/mrkndrei/hexlab/color"
)

// Distance returns the squared euclidean distance between two colors in
// RGB space.
func Distance(a, b color.RGB) int {
	dr, dg, db := a.R-b.R, a.G-b.G, a.B-b.B
	return dr*dr + dg*dg + db*db
}

// nearest returns the index of the shade closest to base. Ties go to the
// lighter step.
func nearest(shades []Shade, base color.RGB) int {
	best, bestDist := -1, 0
	for i, s := range shades {
		d := Distance(s.Hex.RGB(), base)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
