package editor

import (
	"context"
	"errors"
	"log"

	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/i18n"
	"github.com/jonathan/cv-builder/internal/images"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/types"
)

// Render produces the markup format expects from doc. For HTML the profile image is
// resolved through reader; an unreadable image is logged and rendered as a placeholder.
func Render(ctx context.Context, doc *types.CVDocument, format export.Format, opts rendering.Options, reader images.Reader) (string, error) {
	if format == export.FormatLaTeX {
		return rendering.RenderLaTeX(doc, opts)
	}

	if ref := doc.PersonalInfo.ProfileImage; ref != "" && reader != nil && opts.ProfileImage == "" {
		uri, err := reader.DataURI(ctx, ref)
		if err != nil {
			log.Printf("[EDITOR] rendering without profile image: %v", err)
		} else {
			opts.ProfileImage = uri
		}
	}
	return rendering.RenderHTML(doc, opts)
}

// Preview returns a plain-text rendering of the current document.
func (e *Editor) Preview(ctx context.Context) (string, error) {
	doc := e.store.Snapshot()
	markup, err := Render(ctx, &doc, export.FormatHTML, e.render, nil)
	if err != nil {
		return "", err
	}
	return rendering.PlainText(markup)
}

// GeneratePDF renders the current snapshot and converts it. On failure the user is
// alerted and the previously generated document stays current.
func (e *Editor) GeneratePDF(ctx context.Context) (string, error) {
	doc := e.store.Snapshot()
	markup, err := Render(ctx, &doc, e.export.Converter.Format(), e.render, e.images)
	if err == nil {
		var path string
		if path, err = e.export.Generate(ctx, markup); err == nil {
			e.logf("PDF generated at %s", path)
			e.alert(ctx, i18n.MsgTitlePDFGenerated, e.printer.Sprintf(i18n.MsgPDFReady))
			return path, nil
		}
	}

	log.Printf("[EDITOR] PDF generation failed: %v", err)
	e.alert(ctx, i18n.MsgTitleError, e.printer.Sprintf(i18n.MsgPDFFailed))
	return "", err
}

// ViewPDF opens the last generated document.
func (e *Editor) ViewPDF(ctx context.Context) error {
	return e.deliver(ctx, e.export.View, i18n.MsgViewFailed)
}

// SharePDF shares the last generated document.
func (e *Editor) SharePDF(ctx context.Context) error {
	return e.deliver(ctx, e.export.Share, i18n.MsgShareFailed)
}

func (e *Editor) deliver(ctx context.Context, action func(context.Context) error, failure string) error {
	err := action(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, export.ErrNotGenerated):
		e.alert(ctx, i18n.MsgTitleError, e.printer.Sprintf(i18n.MsgGenerateFirst))
	default:
		log.Printf("[EDITOR] %v", err)
		e.alert(ctx, i18n.MsgTitleError, e.printer.Sprintf(failure))
	}
	return err
}
