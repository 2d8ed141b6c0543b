package compress

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"github.com/ytget/favicon-maker/internal/model"
)

// Archive entry settings
const (
	// EntryMethod is the compression method used for every member
	EntryMethod = zip.Deflate

	// EntryPermissions is the file mode recorded for every member
	EntryPermissions = 0o644
)

// EntryModTime is stamped on every member so equal input gives equal bytes
var EntryModTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	// ErrInvalidEntryName is returned for empty names or names with directories
	ErrInvalidEntryName = errors.New("invalid archive entry name")

	// ErrDuplicateEntry is returned when two assets share a name
	ErrDuplicateEntry = errors.New("duplicate archive entry")
)

// ArchiveError reports a failure while serializing the archive
type ArchiveError struct {
	Name string // member being written, empty for archive-level failures
	Err  error
}

func (e *ArchiveError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("archive entry %s: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("archive: %v", e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// Service bundles encoded assets into a single ZIP archive
type Service struct {
	modified time.Time // modification time stamped on members
}

// NewService creates a new archive service
func NewService() *Service {
	return &Service{modified: EntryModTime}
}

// Build writes every asset at the archive root under its own name, in
// input order. An empty input yields a valid, empty archive.
func (s *Service) Build(ctx context.Context, assets []model.EncodedAsset) ([]byte, error) {
	if err := validateAssets(assets); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	modified := s.modified

	for _, asset := range assets {
		if err := ctx.Err(); err != nil {
			zw.Close()
			return nil, &ArchiveError{Err: err}
		}

		header := &zip.FileHeader{
			Name:     asset.Name,
			Method:   EntryMethod,
			Modified: modified,
		}
		header.SetMode(EntryPermissions)

		w, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return nil, &ArchiveError{Name: asset.Name, Err: err}
		}
		if _, err := w.Write(asset.Bytes); err != nil {
			zw.Close()
			return nil, &ArchiveError{Name: asset.Name, Err: err}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &ArchiveError{Err: fmt.Errorf("failed to finalize archive: %w", err)}
	}

	log.Printf("Archive built: entries=%d size=%d", len(assets), buf.Len())
	return buf.Bytes(), nil
}

// ArchiveAsset wraps archive bytes as the downloadable bundle asset
func ArchiveAsset(data []byte) model.EncodedAsset {
	return model.EncodedAsset{
		Name:     model.ArchiveName,
		Bytes:    data,
		MIMEType: model.ArchiveMIMEType,
	}
}

// validateAssets rejects names that would create directories or collide
func validateAssets(assets []model.EncodedAsset) error {
	seen := make(map[string]struct{}, len(assets))
	for _, asset := range assets {
		if !isValidEntryName(asset.Name) {
			return &ArchiveError{Name: asset.Name, Err: ErrInvalidEntryName}
		}
		if _, dup := seen[asset.Name]; dup {
			return &ArchiveError{Name: asset.Name, Err: ErrDuplicateEntry}
		}
		seen[asset.Name] = struct{}{}
	}
	return nil
}

// isValidEntryName reports whether name is a plain file name
func isValidEntryName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
