package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/favicon-maker/internal/config"
)

func TestSettingsDialog_LoadAndApply(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	window := test.NewWindow(nil)
	defer window.Close()

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.loadCurrentSettings()

	if sd.timeoutEntry.Text != "30" {
		t.Errorf("Expected timeout 30 in form, got %s", sd.timeoutEntry.Text)
	}
	if !sd.previewCheck.Checked {
		t.Error("Expected live preview checked by default")
	}

	sd.outputDirEntry.SetText("/custom/icons")
	sd.timeoutEntry.SetText("999")
	sd.languageSelect.SetSelected("ko")
	sd.overwriteCheck.SetChecked(true)
	sd.previewCheck.SetChecked(false)
	sd.apply()

	if settings.GetOutputDirectory() != "/custom/icons" {
		t.Errorf("Expected output dir saved, got %s", settings.GetOutputDirectory())
	}
	if settings.GetExportTimeoutSeconds() != config.MaxExportTimeoutSeconds {
		t.Errorf("Expected clamped timeout, got %d", settings.GetExportTimeoutSeconds())
	}
	if settings.GetLanguage() != "ko" {
		t.Errorf("Expected language ko, got %s", settings.GetLanguage())
	}
	if !settings.GetOverwriteExisting() || settings.GetApplyPreview() {
		t.Error("Expected check boxes to be saved")
	}

	// Invalid timeout is ignored
	sd.timeoutEntry.SetText("abc")
	sd.apply()
	if settings.GetExportTimeoutSeconds() != config.MaxExportTimeoutSeconds {
		t.Errorf("Expected timeout unchanged, got %d", settings.GetExportTimeoutSeconds())
	}

	sd.onSave(false)
	if saved {
		t.Error("Expected cancel to skip the saved callback")
	}
}
