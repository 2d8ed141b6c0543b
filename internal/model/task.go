package model

import (
	"fmt"
	"path/filepath"
	"time"
)

// ExportKind tells single-file exports apart from archive bundles
type ExportKind string

const (
	ExportKindSingle ExportKind = "single"
	ExportKindBundle ExportKind = "bundle"
)

// ExportTask represents a single export request
type ExportTask struct {
	ID         string
	Kind       ExportKind
	Name       string // output file name, e.g. favicon32.png
	MIMEType   string
	Status     TaskStatus
	Size       int64     // delivered size in bytes
	OutputPath string    // path of the delivered file
	LastError  string    // last error message if any
	StartedAt  time.Time // when export started
	FinishedAt time.Time // when export finished
}

// GetDisplayTitle returns the delivered file name, falling back to Name
func (et *ExportTask) GetDisplayTitle() string {
	if et.OutputPath != "" {
		return filepath.Base(et.OutputPath)
	}
	if et.Name != "" {
		return et.Name
	}
	return string(et.Kind)
}

// GetDurationString returns how long the export took, or "—" while unfinished
func (et *ExportTask) GetDurationString() string {
	if et.StartedAt.IsZero() || et.FinishedAt.IsZero() {
		return "—"
	}

	d := et.FinishedAt.Sub(et.StartedAt)
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
