package rendering

import (
	"strings"
	"text/template"

	"github.com/jonathan/cv-builder/internal/types"
)

// RenderLaTeX renders doc as a standalone LaTeX document for the pdflatex converter.
// All user text is escaped with EscapeLaTeX. The profile image is not embedded.
func RenderLaTeX(doc *types.CVDocument, opts Options) (string, error) {
	tmpl, err := parseLaTeXTemplate(opts.TemplatePath)
	if err != nil {
		return "", err
	}

	data := escapeTemplateData(buildTemplateData(doc, opts.Locale, ""))

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

// parseLaTeXTemplate parses the template at path, or the embedded one when path is empty.
// Template data arrives already escaped; the escape func is for literals and computed
// text in override templates.
func parseLaTeXTemplate(path string) (*template.Template, error) {
	content, err := readTemplate(path, latexTemplateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("cv").Funcs(template.FuncMap{
		"escape": EscapeLaTeX,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}

	return tmpl, nil
}

// escapeTemplateData returns a copy of data with every text field escaped for LaTeX.
func escapeTemplateData(data *TemplateData) *TemplateData {
	escaped := *data
	escaped.Title = EscapeLaTeX(data.Title)
	escaped.Name = EscapeLaTeX(data.Name)
	escaped.Summary = EscapeLaTeXParagraphs(data.Summary)

	escaped.Contact = make([]ContactItem, len(data.Contact))
	for i, c := range data.Contact {
		escaped.Contact[i] = ContactItem{Icon: "", Text: EscapeLaTeX(c.Text)}
	}

	escaped.Experiences = make([]ExperienceItem, len(data.Experiences))
	for i, e := range data.Experiences {
		escaped.Experiences[i] = ExperienceItem{
			Position:    EscapeLaTeX(e.Position),
			Company:     EscapeLaTeX(e.Company),
			Period:      EscapeLaTeX(e.Period),
			Description: EscapeLaTeXParagraphs(e.Description),
		}
	}

	escaped.Education = make([]EducationItem, len(data.Education))
	for i, e := range data.Education {
		escaped.Education[i] = EducationItem{
			Degree:      EscapeLaTeX(e.Degree),
			Field:       EscapeLaTeX(e.Field),
			Institution: EscapeLaTeX(e.Institution),
			Year:        EscapeLaTeX(e.Year),
		}
	}

	escaped.Skills = make([]SkillItem, len(data.Skills))
	for i, s := range data.Skills {
		escaped.Skills[i] = SkillItem{Name: EscapeLaTeX(s.Name), Level: EscapeLaTeX(s.Level)}
	}

	l := data.Labels
	escaped.Labels = Labels{
		Summary:      EscapeLaTeX(l.Summary),
		Experience:   EscapeLaTeX(l.Experience),
		Education:    EscapeLaTeX(l.Education),
		Skills:       EscapeLaTeX(l.Skills),
		NoExperience: EscapeLaTeX(l.NoExperience),
		NoEducation:  EscapeLaTeX(l.NoEducation),
		NoSkills:     EscapeLaTeX(l.NoSkills),
	}

	return &escaped
}
