package ui

import (
	"bytes"
	"context"
	"image/png"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/favicon-maker/internal/config"
	"github.com/ytget/favicon-maker/internal/model"
)

func TestDefaultIconResource(t *testing.T) {
	res := DefaultIconResource()

	if res.Name() != AppIconName {
		t.Errorf("Expected name %s, got %s", AppIconName, res.Name())
	}

	img, err := png.Decode(bytes.NewReader(res.Content()))
	if err != nil {
		t.Fatalf("Expected a valid PNG, got %v", err)
	}
	if img.Bounds().Dx() != defaultIconSize {
		t.Errorf("Expected %dpx icon, got %d", defaultIconSize, img.Bounds().Dx())
	}

	if DefaultIconResource() != res {
		t.Error("Expected the same resource on repeated calls")
	}
}

func TestExtensionForMIME(t *testing.T) {
	tests := map[string]string{
		"image/png":                ".png",
		"image/jpeg":               ".jpg",
		"image/x-icon":             ".ico",
		"image/vnd.microsoft.icon": ".ico",
		"application/zip":          "",
	}

	for mimeType, expected := range tests {
		if got := extensionForMIME(mimeType); got != expected {
			t.Errorf("extensionForMIME(%s) = %q, expected %q", mimeType, got, expected)
		}
	}
}

func TestWindowPreview_SkipsWhenDisabled(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetApplyPreview(false)

	// Disabled preview must not touch the data URL at all
	NewWindowPreview(app, nil, settings).Apply("not a data url")
}

func TestSettingsSink_FollowsSettings(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	dir := t.TempDir()
	settings.SetOutputDirectory(dir)

	sink := NewSettingsSink(settings)
	path, err := sink.Deliver(context.Background(), model.EncodedAsset{Name: "favicon.ico", Bytes: []byte{0, 0, 1, 0}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if path != filepath.Join(dir, "favicon.ico") {
		t.Errorf("Expected file in configured dir, got %s", path)
	}
}
