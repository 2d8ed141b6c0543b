package ui

import (
	"fmt"

	"github.com/ytget/favicon-maker/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyChooseImage       = "choose_image"
	KeyChooseImageHint   = "choose_image_hint"
	KeyDownloadSpec      = "download_spec"
	KeyDownloadAll       = "download_all"
	KeyDelete            = "delete"
	KeyPreview           = "preview"
	KeyHistory           = "history"
	KeyReveal            = "reveal"
	KeyOpen              = "open"
	KeyCopyPath          = "copy_path"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyOutputDirectory   = "output_directory"
	KeyExportTimeout     = "export_timeout"
	KeyAutoReveal        = "auto_reveal"
	KeyApplyPreview      = "apply_preview"
	KeyOverwriteExisting = "overwrite_existing"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyExportStarted     = "export_started"
	KeyExportCompleted   = "export_completed"
	KeyExportFailed      = "export_failed"
	KeyNoSource          = "no_source"
	KeyUploadFailed      = "upload_failed"
	KeySourceLoaded      = "source_loaded"
	KeyStretched         = "stretched"
	KeySourceCleared     = "source_cleared"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyPathCopied        = "path_copied"
	KeyPathUnavailable   = "path_unavailable"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// SpecButtonLabel returns the download button label for spec,
// e.g. "Download (ICO, 16x16)"
func (l *Localization) SpecButtonLabel(spec model.ExportSpec) string {
	return fmt.Sprintf(l.GetText(KeyDownloadSpec), spec.Label())
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ko": "한국어",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Favicon Maker",
		KeyChooseImage:       "Choose image",
		KeyChooseImageHint:   "PNG, JPEG, GIF, WebP, BMP or ICO",
		KeyDownloadSpec:      "Download (%s)",
		KeyDownloadAll:       "Download all (ZIP)",
		KeyDelete:            "Delete",
		KeyPreview:           "Preview",
		KeyHistory:           "Exports",
		KeyReveal:            "Reveal",
		KeyOpen:              "Open",
		KeyCopyPath:          "Path",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyOutputDirectory:   "Output Directory",
		KeyExportTimeout:     "Export Timeout (seconds)",
		KeyAutoReveal:        "Reveal files after export",
		KeyApplyPreview:      "Use upload as window icon",
		KeyOverwriteExisting: "Overwrite existing files",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyExportStarted:     "Exporting",
		KeyExportCompleted:   "Export completed",
		KeyExportFailed:      "Export failed",
		KeyNoSource:          "Choose an image first",
		KeyUploadFailed:      "Could not read image",
		KeySourceLoaded:      "Image loaded",
		KeyStretched:         "will be stretched to square",
		KeySourceCleared:     "Image removed",
		KeyErrorOpeningFile:  "Error opening file",
		KeyPathCopied:        "Path copied to clipboard",
		KeyPathUnavailable:   "File path not available",
	}

	// Korean texts
	l.texts["ko"] = map[string]string{
		KeyAppTitle:          "파비콘 메이커",
		KeyChooseImage:       "이미지 선택",
		KeyChooseImageHint:   "PNG, JPEG, GIF, WebP, BMP 또는 ICO",
		KeyDownloadSpec:      "다운로드 (%s)",
		KeyDownloadAll:       "전체 다운로드 (ZIP)",
		KeyDelete:            "삭제",
		KeyPreview:           "미리보기",
		KeyHistory:           "내보내기 기록",
		KeyReveal:            "폴더 열기",
		KeyOpen:              "열기",
		KeyCopyPath:          "경로",
		KeySettings:          "설정",
		KeyFile:              "파일",
		KeyLanguage:          "언어",
		KeyOutputDirectory:   "저장 폴더",
		KeyExportTimeout:     "내보내기 제한 시간 (초)",
		KeyAutoReveal:        "내보낸 후 파일 위치 열기",
		KeyApplyPreview:      "업로드한 이미지를 창 아이콘으로 사용",
		KeyOverwriteExisting: "기존 파일 덮어쓰기",
		KeySave:              "저장",
		KeyCancel:            "취소",
		KeyBrowse:            "찾아보기",
		KeySettingsSaved:     "설정이 저장되었습니다!",
		KeyExportStarted:     "내보내는 중",
		KeyExportCompleted:   "내보내기 완료",
		KeyExportFailed:      "내보내기 실패",
		KeyNoSource:          "먼저 이미지를 선택하세요",
		KeyUploadFailed:      "이미지를 읽을 수 없습니다",
		KeySourceLoaded:      "이미지를 불러왔습니다",
		KeyStretched:         "정사각형으로 늘어납니다",
		KeySourceCleared:     "이미지를 삭제했습니다",
		KeyErrorOpeningFile:  "파일 열기 오류",
		KeyPathCopied:        "경로가 클립보드에 복사되었습니다",
		KeyPathUnavailable:   "파일 경로를 사용할 수 없습니다",
	}
}
