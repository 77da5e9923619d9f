// Package types provides type definitions for structured data used throughout the cv-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// SkillLevel is the proficiency of a skill. Only the four declared values are valid.
type SkillLevel string

// Skill levels, stored with their display value.
const (
	LevelBasic        SkillLevel = "Básico"
	LevelIntermediate SkillLevel = "Intermedio"
	LevelAdvanced     SkillLevel = "Avanzado"
	LevelExpert       SkillLevel = "Experto"
)

// SkillLevels lists the valid levels in ascending order.
var SkillLevels = []SkillLevel{LevelBasic, LevelIntermediate, LevelAdvanced, LevelExpert}

// Valid reports whether l is one of the four fixed levels.
func (l SkillLevel) Valid() bool {
	for _, level := range SkillLevels {
		if l == level {
			return true
		}
	}
	return false
}

// PersonalInfo holds the singleton header data of a CV.
// ProfileImage is an opaque reference (path or URI) owned by the image collaborator.
type PersonalInfo struct {
	FullName     string `json:"fullName" yaml:"fullName"`
	Email        string `json:"email" yaml:"email"`
	Phone        string `json:"phone" yaml:"phone"`
	Location     string `json:"location" yaml:"location"`
	Summary      string `json:"summary" yaml:"summary"`
	ProfileImage string `json:"profileImage,omitempty" yaml:"profileImage,omitempty"`
}

// Experience represents a single job. An empty EndDate means the job is ongoing.
type Experience struct {
	ID          string `json:"id" yaml:"id" validate:"required"`
	Company     string `json:"company" yaml:"company"`
	Position    string `json:"position" yaml:"position"`
	StartDate   string `json:"startDate" yaml:"startDate"`
	EndDate     string `json:"endDate" yaml:"endDate"`
	Description string `json:"description" yaml:"description"`
}

// Ongoing reports whether the experience has no end date. A blank end date counts as none.
func (e Experience) Ongoing() bool {
	return strings.TrimSpace(e.EndDate) == ""
}

// NormalizeDates rewrites both dates in canonical "Month Year" form.
// Tokens that do not parse are only trimmed, so validation still reports them.
func (e *Experience) NormalizeDates() {
	e.StartDate = CanonicalMonthYear(e.StartDate)
	e.EndDate = CanonicalMonthYear(e.EndDate)
}

// Education represents a degree or course of study.
type Education struct {
	ID             string `json:"id" yaml:"id" validate:"required"`
	Institution    string `json:"institution" yaml:"institution"`
	Degree         string `json:"degree" yaml:"degree"`
	Field          string `json:"field" yaml:"field"`
	GraduationYear string `json:"graduationYear" yaml:"graduationYear"`
}

// Skill represents a named skill with a proficiency level.
type Skill struct {
	ID    string     `json:"id" yaml:"id" validate:"required"`
	Name  string     `json:"name" yaml:"name"`
	Level SkillLevel `json:"level" yaml:"level" validate:"required,oneof=Básico Intermedio Avanzado Experto"`
}

// CVDocument is the aggregate root: one PersonalInfo plus three insertion-ordered collections.
type CVDocument struct {
	PersonalInfo PersonalInfo `json:"personalInfo" yaml:"personalInfo"`
	Experiences  []Experience `json:"experiences" yaml:"experiences"`
	Education    []Education  `json:"education" yaml:"education"`
	Skills       []Skill      `json:"skills" yaml:"skills"`
}

// Clone returns a deep copy of the document.
func (d *CVDocument) Clone() CVDocument {
	return CVDocument{
		PersonalInfo: d.PersonalInfo,
		Experiences:  append([]Experience(nil), d.Experiences...),
		Education:    append([]Education(nil), d.Education...),
		Skills:       append([]Skill(nil), d.Skills...),
	}
}

// IsEmpty reports whether the document has no personal data and no entries.
func (d *CVDocument) IsEmpty() bool {
	return d.PersonalInfo == PersonalInfo{} &&
		len(d.Experiences) == 0 && len(d.Education) == 0 && len(d.Skills) == 0
}
