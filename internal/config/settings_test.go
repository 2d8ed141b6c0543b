package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Error("Output directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/icons"
	settings.SetOutputDirectory(customDir)

	retrievedDir := settings.GetOutputDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, retrievedDir)
	}
}

func TestExportTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetExportTimeoutSeconds(); got != DefaultExportTimeoutSeconds {
		t.Errorf("Expected default timeout %d, got %d", DefaultExportTimeoutSeconds, got)
	}
	if got := settings.GetExportTimeout(); got != 30*time.Second {
		t.Errorf("Expected 30s, got %s", got)
	}

	settings.SetExportTimeoutSeconds(45)
	if got := settings.GetExportTimeoutSeconds(); got != 45 {
		t.Errorf("Expected timeout 45, got %d", got)
	}

	// Test boundary values
	settings.SetExportTimeoutSeconds(0) // Should be clamped to 1
	if settings.GetExportTimeoutSeconds() != MinExportTimeoutSeconds {
		t.Error("Timeout should be clamped to minimum 1")
	}

	settings.SetExportTimeoutSeconds(1000) // Should be clamped to 300
	if settings.GetExportTimeoutSeconds() != MaxExportTimeoutSeconds {
		t.Error("Timeout should be clamped to maximum 300")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ko")
	if lang := settings.GetLanguage(); lang != "ko" {
		t.Errorf("Expected language ko, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	for _, key := range []string{"system", "en", "ko"} {
		if _, ok := options[key]; !ok {
			t.Errorf("Language option %s should be available", key)
		}
	}
}

func TestBooleanSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test defaults
	if settings.GetAutoRevealOnComplete() != DefaultAutoRevealComplete {
		t.Error("Unexpected default for auto reveal")
	}
	if settings.GetApplyPreview() != DefaultApplyPreview {
		t.Error("Unexpected default for live preview")
	}
	if settings.GetOverwriteExisting() != DefaultOverwriteExisting {
		t.Error("Unexpected default for overwrite")
	}

	settings.SetAutoRevealOnComplete(true)
	settings.SetApplyPreview(false)
	settings.SetOverwriteExisting(true)

	if !settings.GetAutoRevealOnComplete() {
		t.Error("Expected auto reveal to be enabled")
	}
	if settings.GetApplyPreview() {
		t.Error("Expected live preview to be disabled")
	}
	if !settings.GetOverwriteExisting() {
		t.Error("Expected overwrite to be enabled")
	}
}

func TestClampTimeoutSeconds(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{30, 30},
		{300, 300},
		{301, 300},
	}

	for _, test := range tests {
		if got := ClampTimeoutSeconds(test.input); got != test.expected {
			t.Errorf("ClampTimeoutSeconds(%d) = %d, expected %d", test.input, got, test.expected)
		}
	}
}
