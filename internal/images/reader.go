// Package images acquires profile photos and resolves them to embeddable data URIs.
package images

import (
	"context"
	"encoding/base64"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMaxBytes bounds the size of a profile photo.
const DefaultMaxBytes = 5 << 20

// Reader resolves an opaque image reference into a data URI.
type Reader interface {
	DataURI(ctx context.Context, ref string) (string, error)
}

// FileReader reads local files given as a path or a file:// URI.
type FileReader struct {
	// MaxBytes caps the file size; zero means DefaultMaxBytes.
	MaxBytes int64
}

// DataURI reads the image at ref and returns it as data:<mime>;base64,<payload>.
func (r FileReader) DataURI(ctx context.Context, ref string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := PathFromRef(ref)
	if err != nil {
		return "", err
	}

	limit := r.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", accessError(ref, err)
	}
	if info.IsDir() {
		return "", &ReadError{Message: "reference is a directory", Ref: ref}
	}
	if info.Size() > limit {
		return "", &ReadError{Message: "image exceeds size limit", Ref: ref}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", accessError(ref, err)
	}

	mediaType, err := DetectImage(data)
	if err != nil {
		return "", &ReadError{Message: "unsupported file type", Ref: ref, Cause: err}
	}

	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// DetectImage returns the media type of data, or an error when it is not an image.
func DetectImage(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	mediaType, _, _ := strings.Cut(mtype.String(), ";")
	if !strings.HasPrefix(mediaType, "image/") {
		return "", errors.New("not an image: " + mediaType)
	}
	return mediaType, nil
}

// PathFromRef turns a stored reference into a local file path.
func PathFromRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", &ReadError{Message: "empty image reference", Ref: ref}
	}
	if !strings.HasPrefix(ref, "file://") {
		return filepath.Clean(ref), nil
	}
	u, err := url.Parse(ref)
	if err != nil {
		return "", &ReadError{Message: "invalid file URI", Ref: ref, Cause: err}
	}
	if u.Path == "" {
		return "", &ReadError{Message: "file URI has no path", Ref: ref}
	}
	return filepath.FromSlash(u.Path), nil
}

// RefFromPath returns the file:// URI stored for a picked file.
func RefFromPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &ReadError{Message: "cannot resolve path", Ref: path, Cause: err}
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}

func accessError(ref string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return &ReadError{Message: "cannot access image", Ref: ref, Cause: ErrPermissionDenied}
	}
	if errors.Is(err, fs.ErrNotExist) {
		return &ReadError{Message: "image not found", Ref: ref, Cause: err}
	}
	return &ReadError{Message: "failed to read image", Ref: ref, Cause: err}
}
