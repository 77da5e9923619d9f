package main

import (
	"context"
	"fmt"

	"github.com/jonathan/cv-builder/internal/cvfile"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/validation"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate CV files",
	Long:  "Checks each CV file against the CV schema and every field, date, and id rule. Files are checked concurrently and reported in argument order.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

var validateJobs int

func init() {
	validateCmd.Flags().IntVarP(&validateJobs, "jobs", "j", 4, "Maximum number of files checked at once")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if validateJobs < 1 {
		return fmt.Errorf("--jobs must be at least 1")
	}

	// Each file gets its own result slot; a file error is a result, not a group failure.
	results := make([]error, len(args))
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(validateJobs)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			results[i] = validateFile(cfg.Locale, path)
			return nil
		})
	}
	_ = g.Wait()

	printer := observability.NewPrinter(cmd.OutOrStdout())
	invalid := 0
	for i, path := range args {
		printer.PrintValidation(path, results[i])
		if results[i] != nil {
			invalid++
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d files are invalid", invalid, len(args))
	}
	return nil
}

func validateFile(locale, path string) error {
	doc, err := cvfile.Load(path)
	if err != nil {
		return err
	}
	return validation.New(locale).ValidateDocument(doc)
}
