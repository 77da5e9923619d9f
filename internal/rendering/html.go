package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/cv-builder/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	htmlTemplateName  = "cv.html.tmpl"
	latexTemplateName = "cv.tex.tmpl"
)

// dataImageURI accepts only base64 image data URIs as produced by the image reader.
var dataImageURI = regexp.MustCompile(`^data:image/[a-z0-9.+-]+;base64,[A-Za-z0-9+/]*={0,2}$`)

// Options controls a render.
type Options struct {
	// Locale selects placeholder and label language ("es" by default).
	Locale string
	// ProfileImage is the resolved profile photo as a data URI. Empty renders a placeholder.
	ProfileImage string
	// TemplatePath overrides the embedded template.
	TemplatePath string
}

// htmlView wraps TemplateData so the trusted image URI is not re-filtered by html/template.
type htmlView struct {
	*TemplateData
	Image template.URL
}

// RenderHTML renders doc as a complete HTML document. The output is deterministic for a
// given document and options, every user value is escaped, and the result is checked
// with CheckWellFormed before it is returned.
func RenderHTML(doc *types.CVDocument, opts Options) (string, error) {
	tmpl, err := parseHTMLTemplate(opts.TemplatePath)
	if err != nil {
		return "", err
	}

	if opts.ProfileImage != "" && !dataImageURI.MatchString(opts.ProfileImage) {
		return "", &RenderError{Message: "profile image must be a base64 image data URI"}
	}

	data := buildTemplateData(doc, opts.Locale, opts.ProfileImage)
	view := htmlView{TemplateData: data, Image: template.URL(data.Image)}

	var result strings.Builder
	if err := tmpl.Execute(&result, view); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	markup := result.String()
	if err := CheckWellFormed(markup); err != nil {
		return "", &RenderError{
			Message: "rendered document is not well-formed",
			Cause:   err,
		}
	}

	return markup, nil
}

// parseHTMLTemplate parses the template at path, or the embedded one when path is empty.
func parseHTMLTemplate(path string) (*template.Template, error) {
	content, err := readTemplate(path, htmlTemplateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("cv").Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

func readTemplate(path, embedded string) (string, error) {
	if path == "" {
		content, err := templateFS.ReadFile("templates/" + embedded)
		if err != nil {
			return "", &TemplateError{Message: fmt.Sprintf("embedded template missing: %s", embedded), Cause: err}
		}
		return string(content), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", path),
				Cause:   err,
			}
		}
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", path),
			Cause:   err,
		}
	}
	return string(content), nil
}
