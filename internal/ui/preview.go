package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/favicon-maker/internal/config"
	"github.com/ytget/favicon-maker/internal/imaging"
)

// WindowPreview shows the current upload as the application and window icon
type WindowPreview struct {
	app      fyne.App
	window   fyne.Window
	settings *config.Settings
}

// NewWindowPreview creates a live preview bound to app and window. window may be nil.
func NewWindowPreview(app fyne.App, window fyne.Window, settings *config.Settings) *WindowPreview {
	return &WindowPreview{app: app, window: window, settings: settings}
}

// Apply replaces the icon with the image encoded in dataURL
func (p *WindowPreview) Apply(dataURL string) {
	if p.settings != nil && !p.settings.GetApplyPreview() {
		return
	}

	mimeType, data, err := imaging.ParseDataURL(dataURL)
	if err != nil {
		log.Printf("Live preview skipped: %v", err)
		return
	}

	p.setIcon(fyne.NewStaticResource("favicon-preview"+extensionForMIME(mimeType), data))
}

// Reset restores the default icon
func (p *WindowPreview) Reset() {
	p.setIcon(DefaultIconResource())
}

func (p *WindowPreview) setIcon(res fyne.Resource) {
	fyne.Do(func() {
		p.app.SetIcon(res)
		if p.window != nil {
			p.window.SetIcon(res)
		}
	})
}

// extensionForMIME returns a file extension hint for icon resources
func extensionForMIME(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/bmp":
		return ".bmp"
	case "image/x-icon", "image/vnd.microsoft.icon":
		return ".ico"
	default:
		return ""
	}
}
