package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the image picker, preview, and download buttons to the session and
// export service, and renders the export history, notifications, and settings.
// All UI strings are localized via Localization.
