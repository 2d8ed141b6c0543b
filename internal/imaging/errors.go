package imaging

import (
	"errors"
	"fmt"

	"github.com/ytget/favicon-maker/internal/model"
)

// DecodeError reports an upload that could not be turned into a bitmap
type DecodeError struct {
	MIMEType string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.MIMEType != "" {
		return fmt.Sprintf("decode %s: %v", e.MIMEType, e.Err)
	}
	return fmt.Sprintf("decode image: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a raster that could not be serialized to a format
type EncodeError struct {
	Format model.Format
	Name   string
	Err    error
}

func (e *EncodeError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("encode %s as %s: %v", e.Name, e.Format, e.Err)
	}
	return fmt.Sprintf("encode %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

var (
	// ErrEmptyInput is returned when there are no bytes to decode
	ErrEmptyInput = errors.New("empty input")

	// ErrNotAnImage is returned when the declared or sniffed type is not image/*
	ErrNotAnImage = errors.New("content is not an image")

	// ErrEmptyImage is returned when the decoded bitmap has no pixels
	ErrEmptyImage = errors.New("image has zero area")

	// ErrUnsupportedFormat is returned for a Format with no registered encoder
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrEmptyOutput is returned when an encoder produced no bytes
	ErrEmptyOutput = errors.New("encoder produced no data")
)
