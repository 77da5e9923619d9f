// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// PrintDocument outputs a human-readable summary of a CV document.
func (p *Printer) PrintDocument(doc *types.CVDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	info := doc.PersonalInfo
	sb.WriteString(fmt.Sprintf("Name:     %s\n", info.FullName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", info.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", info.Phone))
	sb.WriteString(fmt.Sprintf("Location: %s\n", info.Location))
	if info.ProfileImage != "" {
		sb.WriteString(fmt.Sprintf("Photo:    %s\n", info.ProfileImage))
	}
	sb.WriteString("\n")

	if len(doc.Experiences) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(doc.Experiences)))
		count := min(len(doc.Experiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := doc.Experiences[i]
			end := exp.EndDate
			if exp.Ongoing() {
				end = "…"
			}
			sb.WriteString(fmt.Sprintf("  • %s @ %s (%s - %s)\n", exp.Position, exp.Company, exp.StartDate, end))
		}
		if len(doc.Experiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experiences)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(doc.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education (%d):\n", len(doc.Education)))
		count := min(len(doc.Education), 3)
		for i := 0; i < count; i++ {
			edu := doc.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s (%s)\n", edu.Degree, edu.Institution, edu.GraduationYear))
		}
		if len(doc.Education) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Education)-3))
		}
		sb.WriteString("\n")
	}

	if len(doc.Skills) > 0 {
		skills := make([]string, len(doc.Skills))
		for i, s := range doc.Skills {
			skills[i] = fmt.Sprintf("%s (%s)", s.Name, s.Level)
		}
		sb.WriteString(fmt.Sprintf("Skills:   %s\n", strings.Join(skills, ", ")))
	}

	p.printBox("CV SUMMARY", strings.TrimSuffix(strings.TrimSuffix(sb.String(), "\n"), "\n"))
}

// PrintValidation outputs the validation result of one CV file.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintValidation(name string, err error) {
	if err == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate("✅ VALID: "+name, boxWidth-4))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var ve *validation.ValidationError
	if !errors.As(err, &ve) {
		p.printBox("❌ INVALID: "+name, err.Error())
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d problems:\n\n", len(ve.Errors)))
	for i, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("⚠ %s\n", fe.Field))
		sb.WriteString(fmt.Sprintf("  %s", fe.Message))
		if i < len(ve.Errors)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("❌ INVALID: "+name, sb.String())
}

// PrintExport outputs where a generated document was written. A non-positive page
// count is omitted.
func (p *Printer) PrintExport(path string, pages int) {
	content := fmt.Sprintf("File:     %s", path)
	if pages > 0 {
		content += fmt.Sprintf("\nPages:    %d", pages)
	}
	p.printBox("PDF GENERATED", content)
}
