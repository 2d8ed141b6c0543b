package session

// LivePreview mirrors the current upload somewhere visible to the user,
// such as the application icon
type LivePreview interface {
	// Apply shows the upload, given as a data URL
	Apply(dataURL string)
	// Reset restores the default appearance
	Reset()
}
