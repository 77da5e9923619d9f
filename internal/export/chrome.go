package export

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultChromeTimeout bounds one HTML to PDF conversion.
const DefaultChromeTimeout = 30 * time.Second

// A4 paper size in inches.
const (
	a4Width  = 8.27
	a4Height = 11.69
)

// ChromeConverter prints HTML to PDF with a headless Chrome/Chromium.
// Requires Chrome/Chromium to be installed on the system.
type ChromeConverter struct {
	Timeout time.Duration
	Verbose bool
}

// Format reports that the converter consumes HTML.
func (c *ChromeConverter) Format() Format { return FormatHTML }

// Convert loads markup into a blank page and prints it as an A4 PDF at dest.
func (c *ChromeConverter) Convert(ctx context.Context, markup string, dest string) (string, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultChromeTimeout
	}

	if c.Verbose {
		log.Printf("[EXPORT] Starting headless browser for %s", dest)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, markup).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4Width).
				WithPaperHeight(a4Height).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return "", &ConversionError{Message: "browser printing failed", Cause: err}
	}

	if err := writeDocument(dest, pdf); err != nil {
		return "", err
	}

	if c.Verbose {
		log.Printf("[EXPORT] Wrote PDF: %d bytes", len(pdf))
	}
	return dest, nil
}

func writeDocument(dest string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return &ConversionError{
			Message: fmt.Sprintf("failed to create output directory: %s", filepath.Dir(dest)),
			Cause:   err,
		}
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return &ConversionError{
			Message: fmt.Sprintf("failed to write document: %s", dest),
			Cause:   err,
		}
	}
	return nil
}
