package main

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-builder/internal/cvfile"
	"github.com/jonathan/cv-builder/internal/dialog"
	"github.com/jonathan/cv-builder/internal/editor"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a CV interactively",
	Long:  "Walks through personal information, experience, education, skills, and an optional profile photo, validating every answer, then saves the CV file and optionally generates the PDF.",
	RunE:  runNew,
}

var (
	newOutputFile string
	newPDF        bool
	newNoPhoto    bool
)

func init() {
	newCmd.Flags().StringVarP(&newOutputFile, "out", "o", "", "Path to write the CV file (.json or .yaml) (required)")
	newCmd.Flags().BoolVar(&newPDF, "pdf", false, "Generate the PDF after the wizard")
	newCmd.Flags().BoolVar(&newNoPhoto, "no-photo", false, "Skip the profile photo step")

	_ = newCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	st := store.New()
	prompter := dialog.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout())
	ed, err := newEditor(cfg, st, prompter, "")
	if err != nil {
		return err
	}

	wizard := &editor.Wizard{Editor: ed, Photo: !newNoPhoto}
	if err := wizard.Run(ctx); err != nil {
		return fmt.Errorf("wizard stopped: %w", err)
	}

	doc := ed.Snapshot()
	if err := cvfile.Save(newOutputFile, &doc); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nSaved CV to %s\n", newOutputFile)

	if cfg.Verbose {
		observability.NewPrinter(cmd.OutOrStdout()).PrintDocument(&doc)
	}

	if newPDF {
		path, err := ed.GeneratePDF(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate PDF: %w", err)
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PDF: %s\n", path)
	}
	return nil
}
