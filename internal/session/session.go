package session

import (
	"context"
	"log"
	"sync"

	"github.com/ytget/favicon-maker/internal/imaging"
	"github.com/ytget/favicon-maker/internal/model"
)

// State of the upload lifecycle
type State int

const (
	StateEmpty State = iota
	StateLoaded
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateLoaded:
		return "Loaded"
	default:
		return "Unknown"
	}
}

// Session owns the current source image
type Session struct {
	mu       sync.RWMutex
	source   *model.SourceImage
	preview  LivePreview
	onChange func(State) // callback for UI updates
}

// New creates an empty session. preview may be nil.
func New(preview LivePreview) *Session {
	return &Session{preview: preview}
}

// SetChangeCallback sets the callback invoked after every state transition
func (s *Session) SetChangeCallback(callback func(State)) {
	s.mu.Lock()
	s.onChange = callback
	s.mu.Unlock()
}

// Upload decodes raw and makes it the current source. On failure the
// previous source, if any, stays in place and the decode error is returned.
func (s *Session) Upload(ctx context.Context, raw []byte, mimeType string) (*model.SourceImage, error) {
	src, err := imaging.Decode(ctx, raw, mimeType)
	if err != nil {
		log.Printf("Upload rejected: mime=%q size=%d err=%v", mimeType, len(raw), err)
		return nil, err
	}

	s.mu.Lock()
	s.source = src
	preview, onChange := s.preview, s.onChange
	s.mu.Unlock()

	log.Printf("Source loaded: format=%s size=%dx%d", src.Format, src.Width, src.Height)

	if preview != nil {
		preview.Apply(src.DataURL)
	}
	if onChange != nil {
		onChange(StateLoaded)
	}
	return src, nil
}

// Clear drops the current source and resets the preview
func (s *Session) Clear() {
	s.mu.Lock()
	s.source = nil
	preview, onChange := s.preview, s.onChange
	s.mu.Unlock()

	log.Printf("Source cleared")

	if preview != nil {
		preview.Reset()
	}
	if onChange != nil {
		onChange(StateEmpty)
	}
}

// Source returns the current source image, if any
func (s *Session) Source() (*model.SourceImage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source, s.source != nil
}

// State returns the current lifecycle state
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.source == nil {
		return StateEmpty
	}
	return StateLoaded
}
