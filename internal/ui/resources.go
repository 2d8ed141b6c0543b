package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

const (
	AppIconName = "favicon-maker.png"

	defaultIconSize  = 64
	defaultIconInset = 16
)

var (
	defaultIconOnce sync.Once
	defaultIcon     fyne.Resource
)

// DefaultIconResource returns the application icon restored when the
// current upload is deleted
func DefaultIconResource() fyne.Resource {
	defaultIconOnce.Do(func() {
		defaultIcon = fyne.NewStaticResource(AppIconName, renderDefaultIcon())
	})
	return defaultIcon
}

// renderDefaultIcon draws a framed square in the primary theme color
func renderDefaultIcon() []byte {
	img := image.NewRGBA(image.Rect(0, 0, defaultIconSize, defaultIconSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorPrimary), image.Point{}, draw.Src)

	inner := image.Rect(defaultIconInset, defaultIconInset, defaultIconSize-defaultIconInset, defaultIconSize-defaultIconInset)
	draw.Draw(img, inner, image.NewUniform(color.White), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}
