// Package rendering renders a CV document to HTML or LaTeX markup.
package rendering

import (
	"github.com/jonathan/cv-builder/internal/i18n"
	"github.com/jonathan/cv-builder/internal/types"
	"golang.org/x/text/message"
)

// TemplateData represents the data structure passed to the document templates.
// String fields hold raw user text; each renderer escapes for its own format.
type TemplateData struct {
	Lang        string
	Title       string
	Name        string
	Image       string
	Contact     []ContactItem
	Summary     string
	Experiences []ExperienceItem
	Education   []EducationItem
	Skills      []SkillItem
	Labels      Labels
}

// ContactItem is one non-empty entry of the contact line.
type ContactItem struct {
	Icon string
	Text string
}

// ExperienceItem is one entry of the experience section.
type ExperienceItem struct {
	Position    string
	Company     string
	Period      string // e.g. "Marzo 2020 - Actual"
	Description string
}

// EducationItem is one entry of the education section.
type EducationItem struct {
	Degree      string
	Field       string
	Institution string
	Year        string // e.g. "Año: 2019"
}

// SkillItem is one line of the skills section.
type SkillItem struct {
	Name  string
	Level string // e.g. "Nivel: Experto"
}

// Labels holds the localized section titles and placeholders.
type Labels struct {
	Summary      string
	Experience   string
	Education    string
	Skills       string
	NoExperience string
	NoEducation  string
	NoSkills     string
}

// buildTemplateData maps a CV document to the template view model, in stored order.
func buildTemplateData(doc *types.CVDocument, locale string, image string) *TemplateData {
	p := i18n.NewPrinter(locale)
	info := doc.PersonalInfo

	data := &TemplateData{
		Lang:    i18n.Resolve(locale).String(),
		Title:   p.Sprintf(i18n.MsgDocumentTitle),
		Name:    info.FullName,
		Image:   image,
		Contact: contactItems(info),
		Summary: info.Summary,
		Labels: Labels{
			Summary:      p.Sprintf(i18n.MsgSummary),
			Experience:   p.Sprintf(i18n.MsgExperience),
			Education:    p.Sprintf(i18n.MsgEducation),
			Skills:       p.Sprintf(i18n.MsgSkills),
			NoExperience: p.Sprintf(i18n.MsgNoExperience),
			NoEducation:  p.Sprintf(i18n.MsgNoEducation),
			NoSkills:     p.Sprintf(i18n.MsgNoSkills),
		},
	}
	if data.Name == "" {
		data.Name = p.Sprintf(i18n.MsgNamePlaceholder)
	}

	for _, exp := range doc.Experiences {
		data.Experiences = append(data.Experiences, ExperienceItem{
			Position:    exp.Position,
			Company:     exp.Company,
			Period:      formatPeriod(p, exp),
			Description: exp.Description,
		})
	}

	for _, edu := range doc.Education {
		year := edu.GraduationYear
		if year == "" {
			year = "—"
		}
		data.Education = append(data.Education, EducationItem{
			Degree:      edu.Degree,
			Field:       edu.Field,
			Institution: edu.Institution,
			Year:        p.Sprintf(i18n.MsgYear, year),
		})
	}

	for _, skill := range doc.Skills {
		data.Skills = append(data.Skills, SkillItem{
			Name:  skill.Name,
			Level: p.Sprintf(i18n.MsgLevel, string(skill.Level)),
		})
	}

	return data
}

func contactItems(info types.PersonalInfo) []ContactItem {
	var items []ContactItem
	for _, c := range []ContactItem{
		{Icon: "📧", Text: info.Email},
		{Icon: "📱", Text: info.Phone},
		{Icon: "📍", Text: info.Location},
	} {
		if c.Text != "" {
			items = append(items, c)
		}
	}
	return items
}

// formatPeriod renders "start - end", substituting the present literal for an ongoing job.
func formatPeriod(p *message.Printer, exp types.Experience) string {
	end := exp.EndDate
	if exp.Ongoing() {
		end = p.Sprintf(i18n.MsgPresent)
	}
	return exp.StartDate + " - " + end
}
