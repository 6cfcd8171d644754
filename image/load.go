package image

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// ErrUnsupportedFormat is returned for files that are neither PNG nor JPEG.
var ErrUnsupportedFormat = errors.New("unsupported image format, want png or jpeg")

// Extraction is the result of Extract.
type Extraction struct {
	Format string
	Bounds image.Rectangle
	Colors ColorCountList
}

// Extract decodes the image at path and finds its num dominant colors.
func Extract(path string, num int) (*Extraction, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, e
	}
	defer f.Close()

	i, format, e := image.Decode(f)
	if errors.Is(e, image.ErrFormat) {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if e != nil {
		return nil, fmt.Errorf("%s: %v", path, e)
	}

	ccl, e := Dominant(i, num)
	if e != nil {
		return nil, fmt.Errorf("%s: %v", path, e)
	}

	return &Extraction{Format: format, Bounds: i.Bounds(), Colors: ccl}, nil
}
