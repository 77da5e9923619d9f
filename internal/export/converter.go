// Package export converts rendered markup into PDF documents and hands them to viewers
// and share targets.
package export

import (
	"context"
	"fmt"
	"time"
)

// Format identifies the markup a converter consumes.
type Format string

const (
	FormatHTML  Format = "html"
	FormatLaTeX Format = "latex"
)

// Converter names accepted by New.
const (
	ConverterChrome = "chrome"
	ConverterLaTeX  = "latex"
)

// Converter turns markup into a document written at dest and returns its path.
type Converter interface {
	Format() Format
	Convert(ctx context.Context, markup string, dest string) (string, error)
}

// New returns the converter registered under name.
func New(name string, timeout time.Duration, verbose bool) (Converter, error) {
	switch name {
	case ConverterChrome, "":
		return &ChromeConverter{Timeout: timeout, Verbose: verbose}, nil
	case ConverterLaTeX:
		return &LaTeXConverter{Timeout: timeout, Verbose: verbose}, nil
	default:
		return nil, fmt.Errorf("unknown converter %q (expected %q or %q)", name, ConverterChrome, ConverterLaTeX)
	}
}
