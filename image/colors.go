package image

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/mrkndrei/hexlab/color"
)

const (
	// sampleStep is the pixel stride used when counting quantized colors.
	sampleStep = 2
	// minQuantColors is the smallest palette colorquant's median cut
	// can split into.
	minQuantColors = 2
)

// ColorCount is a color and the number of sampled pixels it covers.
type ColorCount struct {
	Color color.RGB
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return ccl[i].Color.Hex() < ccl[j].Color.Hex()
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

// Dominant reduces img to at most num colors and returns them, most
// common first. Fully transparent pixels of img are not counted.
func Dominant(img image.Image, num int) (ColorCountList, error) {
	if num < 1 {
		return nil, fmt.Errorf("cannot extract %d colors", num)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("image is empty")
	}
	nq := num
	if nq < minQuantColors {
		nq = minQuantColors
	}
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	q := colorquant.NoDither.Quantize(img, o, nq, false, true)

	m := countColors(img, q, sampleStep)
	if len(m) == 0 {
		return nil, fmt.Errorf("image has no opaque pixels")
	}
	ccl := RankColors(m)
	if len(ccl) > num {
		ccl = ccl[:num]
	}
	return ccl, nil
}

// GetColors returns a map of an image's opaque colors and the number of
// times each occurs, looking at every step-th pixel in both directions.
func GetColors(img image.Image, step int) map[color.RGB]int {
	return countColors(img, img, step)
}

// countColors counts the colors of dst at the sampled positions where src
// is not fully transparent.
func countColors(src, dst image.Image, step int) map[color.RGB]int {
	m := make(map[color.RGB]int)

	b := src.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			if _, _, _, a := src.At(x, y).RGBA(); a == 0 {
				continue
			}
			m[color.FromColor(dst.At(x, y))]++
		}
	}

	return m
}

// RankColors sorts the counted colors by prevalence.
func RankColors(m map[color.RGB]int) ColorCountList {
	cc := make(ColorCountList, len(m))

	i := 0
	for k, v := range m {
		cc[i] = ColorCount{k, v}
		i++
	}

	sort.Sort(cc)
	return cc
}
