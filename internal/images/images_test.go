package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/cv-builder/internal/dialog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, dir string) (string, []byte) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	path := filepath.Join(dir, "foto.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
	return path, buf.Bytes()
}

func TestFileReader_DataURIFromPathAndURI(t *testing.T) {
	path, data := writePNG(t, t.TempDir())
	want := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)

	got, err := FileReader{}.DataURI(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	ref, err := RefFromPath(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "file://"))

	got, err = FileReader{}.DataURI(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileReader_Errors(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(textPath, []byte("plain text, not a photo"), 0644))
	pngPath, _ := writePNG(t, dir)

	tests := []struct {
		name   string
		reader FileReader
		ref    string
	}{
		{"missing file", FileReader{}, filepath.Join(dir, "missing.png")},
		{"not an image", FileReader{}, textPath},
		{"directory", FileReader{}, dir},
		{"empty ref", FileReader{}, ""},
		{"too large", FileReader{MaxBytes: 10}, pngPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.reader.DataURI(context.Background(), tt.ref)
			var readErr *ReadError
			assert.True(t, errors.As(err, &readErr), "expected ReadError, got %v", err)
		})
	}
}

func TestPathFromRef(t *testing.T) {
	path, err := PathFromRef("file:///tmp/fotos/yo.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/tmp/fotos/yo.jpg"), path)

	path, err = PathFromRef("  ./yo.jpg ")
	require.NoError(t, err)
	assert.Equal(t, "yo.jpg", path)
}

func TestFilePicker_Pick(t *testing.T) {
	path, _ := writePNG(t, t.TempDir())
	picker := &FilePicker{Prompter: dialog.NewScripted(path), Label: "Foto"}

	ref, err := picker.Pick(context.Background())
	require.NoError(t, err)
	want, err := RefFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, want, ref)
}

func TestFilePicker_Cancelled(t *testing.T) {
	picker := &FilePicker{Prompter: dialog.NewScripted(""), Label: "Foto"}
	_, err := picker.Pick(context.Background())
	assert.ErrorIs(t, err, ErrCancelled)

	picker = &FilePicker{Prompter: dialog.NewScripted(), Label: "Foto"}
	_, err = picker.Pick(context.Background())
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestFilePicker_RejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("hola"), 0644))

	picker := &FilePicker{Prompter: dialog.NewScripted(path), Label: "Foto"}
	_, err := picker.Pick(context.Background())
	var readErr *ReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestFilePicker_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	path, _ := writePNG(t, t.TempDir())
	require.NoError(t, os.Chmod(path, 0o000))

	picker := &FilePicker{Prompter: dialog.NewScripted(path), Label: "Foto"}
	_, err := picker.Pick(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
