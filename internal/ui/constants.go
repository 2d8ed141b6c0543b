package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconClose    = "×"
	IconError    = "❌"
	IconDone     = "✔"
	IconPending  = "⏳"
	IconWorking  = "⚙"
	IconDelete   = "🗑️"
	IconImage    = "🖼"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	DimensionsFormat   = "%d×%d"
)

// Layout sizing (ExportRow / lists / preview)
const (
	StatusLabelWidth   float32 = 96
	DurationLabelWidth float32 = 64
	SizeLabelWidth     float32 = 72

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 44
	RowDefaultH  float32 = 48

	PreviewSize float32 = 128
	LogoSize    float32 = 32
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)
