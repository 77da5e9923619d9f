package images

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/jonathan/cv-builder/internal/dialog"
)

// Picker lets the user choose an image and returns an opaque reference to it.
type Picker interface {
	Pick(ctx context.Context) (string, error)
}

// FilePicker asks for a file path through a dialog.Prompter.
type FilePicker struct {
	Prompter dialog.Prompter
	Label    string
	Verbose  bool
}

// Pick asks for a path. An empty answer is ErrCancelled, an unreadable file is
// ErrPermissionDenied, and a file that is not an image is a *ReadError.
func (p *FilePicker) Pick(ctx context.Context) (string, error) {
	answer, err := p.Prompter.Ask(ctx, p.Label)
	if err != nil {
		if errors.Is(err, dialog.ErrNoInput) {
			return "", ErrCancelled
		}
		return "", err
	}
	if answer == "" {
		return "", ErrCancelled
	}

	path, err := PathFromRef(answer)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return "", ErrPermissionDenied
		}
		return "", accessError(answer, err)
	}
	defer f.Close()

	head := make([]byte, 3072)
	n, _ := f.Read(head)
	if _, err := DetectImage(head[:n]); err != nil {
		return "", &ReadError{Message: "unsupported file type", Ref: answer, Cause: err}
	}

	ref, err := RefFromPath(path)
	if err != nil {
		return "", err
	}
	if p.Verbose {
		log.Printf("[IMAGES] picked %s", ref)
	}
	return ref, nil
}
