package imaging

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Rasterize scales the whole source into a size x size square. The aspect
// ratio is not preserved: non-square sources are stretched to fill.
func Rasterize(src image.Image, size int) (*image.RGBA, error) {
	if src == nil {
		return nil, errors.New("rasterize: nil source image")
	}
	if size <= 0 {
		return nil, fmt.Errorf("rasterize: invalid target size %d", size)
	}

	srcBounds := src.Bounds()
	if srcBounds.Empty() {
		return nil, fmt.Errorf("rasterize: %w", ErrEmptyImage)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Rect, src, srcBounds, draw.Src, nil)
	return dst, nil
}
