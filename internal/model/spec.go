package model

import "fmt"

// Format selects the image container an ExportSpec is encoded into
type Format int

const (
	// FormatIcon is the Windows icon container (.ico)
	FormatIcon Format = iota

	// FormatRaster is a plain PNG raster
	FormatRaster
)

// MIME types reported for encoded assets
const (
	MIMETypeIcon    = "image/x-icon"
	MIMETypeRaster  = "image/png"
	ArchiveMIMEType = "application/zip"
)

// ArchiveName is the file name used when all favicons are bundled together
const ArchiveName = "favicons.zip"

// String returns the short name of the format
func (f Format) String() string {
	switch f {
	case FormatIcon:
		return "ico"
	case FormatRaster:
		return "png"
	default:
		return "unknown"
	}
}

// MIMEType returns the MIME type used both for encoding and for the asset
func (f Format) MIMEType() string {
	switch f {
	case FormatIcon:
		return MIMETypeIcon
	case FormatRaster:
		return MIMETypeRaster
	default:
		return ""
	}
}

// Extension returns the file extension including the leading dot
func (f Format) Extension() string {
	switch f {
	case FormatIcon:
		return ".ico"
	case FormatRaster:
		return ".png"
	default:
		return ""
	}
}

// ExportSpec describes one square favicon output
type ExportSpec struct {
	TargetSize int    // width and height in pixels
	Format     Format // container format
	OutputName string // file name used for download and archive entry
}

// Label returns a human readable description, e.g. "ICO, 16x16"
func (s ExportSpec) Label() string {
	return fmt.Sprintf("%s, %dx%d", s.Format.Label(), s.TargetSize, s.TargetSize)
}

// Label returns the upper-case format name used in button labels
func (f Format) Label() string {
	switch f {
	case FormatIcon:
		return "ICO"
	case FormatRaster:
		return "PNG"
	default:
		return "?"
	}
}

// defaultExportSpecs is the single source of truth for favicon outputs.
// Single-file buttons and the archive bundle both read from it.
var defaultExportSpecs = [...]ExportSpec{
	{TargetSize: 16, Format: FormatIcon, OutputName: "favicon.ico"},
	{TargetSize: 32, Format: FormatRaster, OutputName: "favicon32.png"},
	{TargetSize: 64, Format: FormatRaster, OutputName: "favicon64.png"},
	{TargetSize: 128, Format: FormatRaster, OutputName: "favicon128.png"},
}

// DefaultExportSpecs returns a copy of the fixed, ordered favicon spec list
func DefaultExportSpecs() []ExportSpec {
	specs := make([]ExportSpec, len(defaultExportSpecs))
	copy(specs, defaultExportSpecs[:])
	return specs
}

// FindExportSpec returns the fixed spec with the given target size
func FindExportSpec(size int) (ExportSpec, bool) {
	for _, spec := range defaultExportSpecs {
		if spec.TargetSize == size {
			return spec, true
		}
	}
	return ExportSpec{}, false
}

// ExportSizes returns the target sizes of the fixed spec list in order
func ExportSizes() []int {
	sizes := make([]int, 0, len(defaultExportSpecs))
	for _, spec := range defaultExportSpecs {
		sizes = append(sizes, spec.TargetSize)
	}
	return sizes
}
