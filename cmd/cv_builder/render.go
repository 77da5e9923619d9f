package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/jonathan/cv-builder/internal/config"
	"github.com/jonathan/cv-builder/internal/cvfile"
	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/images"
	"github.com/jonathan/cv-builder/internal/validation"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a CV file to HTML or LaTeX",
	Long:  "Validates a CV file and renders it as a standalone HTML (default) or LaTeX document. With --watch, the output is rewritten every time the CV file changes.",
	RunE:  runRender,
}

var (
	renderInputFile  string
	renderOutputFile string
	renderFormat     string
	renderWatch      bool
)

func init() {
	renderCmd.Flags().StringVarP(&renderInputFile, "in", "i", "", "Path to CV file (.json or .yaml) (required)")
	renderCmd.Flags().StringVarP(&renderOutputFile, "out", "o", "", "Path to output file (default: stdout)")
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", string(export.FormatHTML), "Output format: html or latex")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "Re-render when the CV file changes (requires --out)")

	_ = renderCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := export.Format(renderFormat)
	if format != export.FormatHTML && format != export.FormatLaTeX {
		return fmt.Errorf("unknown format %q (expected html or latex)", renderFormat)
	}
	if renderWatch && renderOutputFile == "" {
		return fmt.Errorf("--watch requires --out")
	}

	if err := renderOnce(cmd.OutOrStdout(), cfg, format); err != nil {
		return err
	}
	if !renderWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", renderInputFile)
	return cvfile.Watch(ctx, renderInputFile, 0, func() {
		// A broken intermediate save is reported and the previous output kept.
		if err := renderOnce(cmd.OutOrStdout(), cfg, format); err != nil {
			log.Printf("[RENDER] %v", err)
		}
	})
}

// renderOnce loads, validates, and renders the input file to --out or w.
func renderOnce(w io.Writer, cfg *config.Config, format export.Format) error {
	doc, err := cvfile.Load(renderInputFile)
	if err != nil {
		return err
	}
	if err := validation.New(cfg.Locale).ValidateDocument(doc); err != nil {
		return err
	}

	markup, err := editor.Render(context.Background(), doc, format, renderOptions(cfg), images.FileReader{})
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", format, err)
	}

	if renderOutputFile == "" {
		_, err := io.WriteString(w, markup)
		return err
	}

	if dir := filepath.Dir(renderOutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(renderOutputFile, []byte(markup), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(w, "Rendered %s to %s\n", renderInputFile, renderOutputFile)
	return nil
}
