package model

import "image"

// SourceImage is the decoded bitmap of the current upload
type SourceImage struct {
	Image    image.Image // decoded pixels
	Width    int         // natural width in pixels
	Height   int         // natural height in pixels
	Format   string      // decoder name: png, jpeg, gif, webp, bmp, ico
	MIMEType string      // declared or sniffed MIME type of the upload
	DataURL  string      // raw upload as data URL, consumed by the live preview
}

// IsSquare reports whether the source already has a 1:1 aspect ratio
func (s *SourceImage) IsSquare() bool {
	return s != nil && s.Width == s.Height
}

// EncodedAsset is one named binary blob produced by an export
type EncodedAsset struct {
	Name     string
	Bytes    []byte
	MIMEType string
}

// Size returns the blob length in bytes
func (a EncodedAsset) Size() int64 {
	return int64(len(a.Bytes))
}
