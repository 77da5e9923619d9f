package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// CompilationTimeout is the maximum time to wait for LaTeX compilation
const CompilationTimeout = 30 * time.Second

// LaTeXConverter compiles LaTeX markup with pdflatex.
type LaTeXConverter struct {
	Timeout time.Duration
	Verbose bool
}

// Format reports that the converter consumes LaTeX.
func (c *LaTeXConverter) Format() Format { return FormatLaTeX }

// Convert compiles markup in a scratch directory and copies the PDF to dest.
// A PDF produced alongside a non-zero exit is still reported as a failure.
func (c *LaTeXConverter) Convert(ctx context.Context, markup string, dest string) (string, error) {
	if _, err := exec.LookPath("pdflatex"); err != nil {
		return "", &ConversionError{
			Message: "pdflatex not found in PATH. Please install a LaTeX distribution (e.g., TeX Live, MiKTeX)",
			Cause:   err,
		}
	}

	workDir, err := os.MkdirTemp("", "latex-compile-*")
	if err != nil {
		return "", &ConversionError{Message: "failed to create temporary working directory", Cause: err}
	}
	defer os.RemoveAll(workDir)

	texPath := filepath.Join(workDir, "cv.tex")
	if err := os.WriteFile(texPath, []byte(markup), 0644); err != nil {
		return "", &ConversionError{
			Message: fmt.Sprintf("failed to write LaTeX file to working directory: %s", workDir),
			Cause:   err,
		}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = CompilationTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if c.Verbose {
		log.Printf("[EXPORT] Running pdflatex in %s", workDir)
	}

	// -interaction=nonstopmode keeps pdflatex from waiting on stdin
	cmd := exec.CommandContext(ctx, "pdflatex", "-interaction=nonstopmode", "-output-directory", workDir, texPath)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()
	logOutput := stdout.String() + stderr.String()

	pdfPath := filepath.Join(workDir, "cv.pdf")
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		return "", &ConversionError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}
	if runErr != nil {
		return "", &ConversionError{
			Message:   "LaTeX compilation completed with errors",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	data, err := os.ReadFile(pdfPath)
	if err != nil {
		return "", &ConversionError{Message: "failed to read compiled PDF", Cause: err}
	}
	if err := writeDocument(dest, data); err != nil {
		return "", err
	}

	if c.Verbose {
		log.Printf("[EXPORT] Wrote PDF: %d bytes", len(data))
	}
	return dest, nil
}
