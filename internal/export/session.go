package export

import (
	"context"
	"log"
	"path/filepath"
	"sync"
)

// DefaultFileName is the name of a generated CV document.
const DefaultFileName = "cv.pdf"

// Session holds the most recently generated document. View and Share act on that
// document and fail with ErrNotGenerated until Generate has succeeded once.
type Session struct {
	Converter Converter
	Viewer    Viewer
	Sharer    Sharer
	OutputDir string
	FileName  string

	mu   sync.Mutex
	last string
}

// Generate converts markup and records the resulting document. On failure the
// previously generated document, if any, stays current.
func (s *Session) Generate(ctx context.Context, markup string) (string, error) {
	name := s.FileName
	if name == "" {
		name = DefaultFileName
	}
	path, err := s.Converter.Convert(ctx, markup, filepath.Join(s.OutputDir, name))
	if err != nil {
		log.Printf("[EXPORT] generation failed: %v", err)
		return "", err
	}

	s.mu.Lock()
	s.last = path
	s.mu.Unlock()
	return path, nil
}

// Last returns the current document path, or "" before the first Generate.
func (s *Session) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// View opens the current document.
func (s *Session) View(ctx context.Context) error {
	path := s.Last()
	if path == "" {
		return ErrNotGenerated
	}
	return s.Viewer.View(ctx, path)
}

// Share hands the current document to the share target.
func (s *Session) Share(ctx context.Context) error {
	path := s.Last()
	if path == "" {
		return ErrNotGenerated
	}
	return s.Sharer.Share(ctx, path)
}
