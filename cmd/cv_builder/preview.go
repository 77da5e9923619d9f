package main

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-builder/internal/cvfile"
	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a text preview of a CV file",
	Long:  "Renders a CV file and prints it as plain text, section by section, without generating a PDF. The file is not required to pass validation.",
	RunE:  runPreview,
}

var previewInputFile string

func init() {
	previewCmd.Flags().StringVarP(&previewInputFile, "in", "i", "", "Path to CV file (.json or .yaml) (required)")

	_ = previewCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := cvfile.Load(previewInputFile)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintDocument(doc)
	}

	markup, err := editor.Render(context.Background(), doc, export.FormatHTML, renderOptions(cfg), nil)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	text, err := rendering.PlainText(markup)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), text)
	return err
}
