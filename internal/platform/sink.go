package platform

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ytget/favicon-maker/internal/model"
)

// DirectorySink delivers exported assets as files in a directory
type DirectorySink struct {
	Dir string

	// Overwrite replaces existing files instead of picking a " (n)" name
	Overwrite bool
}

// NewDirectorySink creates a sink writing into dir
func NewDirectorySink(dir string) *DirectorySink {
	return &DirectorySink{Dir: dir}
}

// Deliver writes asset into the directory and returns the written path
func (s *DirectorySink) Deliver(ctx context.Context, asset model.EncodedAsset) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if asset.Name == "" || asset.Name != filepath.Base(asset.Name) {
		return "", fmt.Errorf("invalid file name: %q", asset.Name)
	}
	if err := CreateDirectoryIfNotExists(s.Dir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	// A failed write must not leave a partial icon behind
	tmp, err := os.CreateTemp(s.Dir, "."+asset.Name+"-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(asset.Bytes); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", asset.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", asset.Name, err)
	}
	if err := os.Chmod(tmpName, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to set permissions on %s: %w", asset.Name, err)
	}

	path := filepath.Join(s.Dir, asset.Name)
	if !s.Overwrite {
		// The placeholder keeps concurrent deliveries of the same name apart
		if path, err = ReserveFilePath(s.Dir, asset.Name); err != nil {
			return "", err
		}
	}

	if err := os.Rename(tmpName, path); err != nil {
		if !s.Overwrite {
			os.Remove(path)
		}
		return "", fmt.Errorf("failed to move %s into place: %w", asset.Name, err)
	}

	log.Printf("File delivered: path=%s size=%d", path, asset.Size())
	_ = NotifyMediaScanner(path)
	return path, nil
}
