package export

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultViewer opens files with the desktop's default application.
const DefaultViewer = "xdg-open"

// Viewer shows a generated document to the user.
type Viewer interface {
	View(ctx context.Context, path string) error
}

// Sharer hands a generated document to a share target.
type Sharer interface {
	Share(ctx context.Context, path string) error
}

// CommandViewer runs an external opener with the document path as its last argument.
type CommandViewer struct {
	Command string
	Args    []string
}

// View runs the opener and waits for it to exit.
func (v CommandViewer) View(ctx context.Context, path string) error {
	name := v.Command
	if name == "" {
		name = DefaultViewer
	}
	args := append(append([]string(nil), v.Args...), path)
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return &DeliveryError{Action: "view", Path: path, Cause: fmt.Errorf("%s: %w: %s", name, err, out)}
	}
	return nil
}

// DirSharer shares a document by copying it into a directory.
type DirSharer struct {
	Dir string
}

// Destination returns where Share places path.
func (s DirSharer) Destination(path string) string {
	return filepath.Join(s.Dir, filepath.Base(path))
}

// Share copies path into the share directory, replacing any previous copy.
func (s DirSharer) Share(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := copyFile(path, s.Destination(path)); err != nil {
		return &DeliveryError{Action: "share", Path: path, Cause: err}
	}
	log.Printf("[EXPORT] shared %s", s.Destination(path))
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
