package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/favicon-maker/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir          = "output_directory"
	KeyExportTimeout      = "export_timeout_seconds"
	KeyLanguage           = "app_language"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyApplyPreview       = "apply_live_preview"
	KeyOverwriteExisting  = "overwrite_existing_files"
)

// Default values
const (
	DefaultExportTimeoutSeconds = 30
	DefaultLanguage             = "system"
	DefaultAutoRevealComplete   = false
	DefaultApplyPreview         = true
	DefaultOverwriteExisting    = false
	FallbackOutputDir           = "/tmp/favicons"
)

// Timeout bounds in seconds
const (
	MinExportTimeoutSeconds = 1
	MaxExportTimeoutSeconds = 300
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns the directory exported files are written to
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackOutputDir
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetExportTimeoutSeconds returns how long one export may run
func (s *Settings) GetExportTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyExportTimeout)
	if value <= 0 {
		s.SetExportTimeoutSeconds(DefaultExportTimeoutSeconds)
		return DefaultExportTimeoutSeconds
	}
	return value
}

// SetExportTimeoutSeconds sets the export timeout
func (s *Settings) SetExportTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyExportTimeout, ClampTimeoutSeconds(seconds))
}

// GetExportTimeout returns the export timeout as a duration
func (s *Settings) GetExportTimeout() time.Duration {
	return time.Duration(s.GetExportTimeoutSeconds()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ko":     "한국어",
	}
}

// GetAutoRevealOnComplete returns whether to reveal exported files when done
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal exported files when done
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetApplyPreview returns whether uploads replace the window icon
func (s *Settings) GetApplyPreview() bool {
	return s.app.Preferences().BoolWithFallback(KeyApplyPreview, DefaultApplyPreview)
}

// SetApplyPreview sets whether uploads replace the window icon
func (s *Settings) SetApplyPreview(apply bool) {
	s.app.Preferences().SetBool(KeyApplyPreview, apply)
}

// GetOverwriteExisting returns whether exports replace same-named files
func (s *Settings) GetOverwriteExisting() bool {
	return s.app.Preferences().BoolWithFallback(KeyOverwriteExisting, DefaultOverwriteExisting)
}

// SetOverwriteExisting sets whether exports replace same-named files
func (s *Settings) SetOverwriteExisting(overwrite bool) {
	s.app.Preferences().SetBool(KeyOverwriteExisting, overwrite)
}

// ClampTimeoutSeconds keeps seconds within the supported range
func ClampTimeoutSeconds(seconds int) int {
	if seconds < MinExportTimeoutSeconds {
		return MinExportTimeoutSeconds
	}
	if seconds > MaxExportTimeoutSeconds {
		return MaxExportTimeoutSeconds
	}
	return seconds
}
