package main

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-builder/internal/cvfile"
	"github.com/jonathan/cv-builder/internal/dialog"
	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/validation"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generate the PDF of a CV file",
	Long:  "Validates a CV file, renders it, and converts it to PDF with headless Chrome (HTML) or pdflatex (LaTeX). The PDF can then be opened and shared.",
	RunE:  runExport,
}

var (
	exportInputFile string
	exportConverter string
	exportView      bool
	exportShare     bool
)

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to CV file (.json or .yaml) (required)")
	exportCmd.Flags().StringVar(&exportConverter, "converter", "", "Converter: chrome or latex (default from config)")
	exportCmd.Flags().BoolVar(&exportView, "view", false, "Open the PDF after generating it")
	exportCmd.Flags().BoolVar(&exportShare, "share", false, "Copy the PDF into the share directory")

	_ = exportCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := cvfile.Load(exportInputFile)
	if err != nil {
		return err
	}
	if err := validation.New(cfg.Locale).ValidateDocument(doc); err != nil {
		return err
	}

	ctx := context.Background()
	prompter := dialog.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	ed, err := newEditor(cfg, store.Load(doc), prompter, exportConverter)
	if err != nil {
		return err
	}

	path, err := ed.GeneratePDF(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}

	pages, _ := export.CountPages(path)
	observability.NewPrinter(cmd.OutOrStdout()).PrintExport(path, pages)

	if exportView {
		if err := ed.ViewPDF(ctx); err != nil {
			return err
		}
	}
	if exportShare {
		if err := ed.SharePDF(ctx); err != nil {
			return err
		}
	}
	return nil
}
