package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillLevel_Valid(t *testing.T) {
	for _, level := range SkillLevels {
		assert.True(t, level.Valid(), "level %q", level)
	}
	assert.False(t, SkillLevel("Maestro").Valid())
	assert.False(t, SkillLevel("").Valid())
}

func TestExperience_Ongoing(t *testing.T) {
	assert.True(t, Experience{}.Ongoing())
	assert.True(t, Experience{EndDate: "  "}.Ongoing())
	assert.False(t, Experience{EndDate: "Enero 2023"}.Ongoing())
}

func TestExperience_NormalizeDates(t *testing.T) {
	exp := Experience{StartDate: "marzo 2020", EndDate: " "}
	exp.NormalizeDates()
	assert.Equal(t, "Marzo 2020", exp.StartDate)
	assert.Equal(t, "", exp.EndDate)

	exp = Experience{StartDate: " Primavera 2020 ", EndDate: "DICIEMBRE   2021"}
	exp.NormalizeDates()
	assert.Equal(t, "Primavera 2020", exp.StartDate, "unparseable tokens are only trimmed")
	assert.Equal(t, "Diciembre 2021", exp.EndDate)
}

func TestCVDocument_CloneIsIndependent(t *testing.T) {
	doc := CVDocument{
		PersonalInfo: PersonalInfo{FullName: "Juan Pérez"},
		Skills:       []Skill{{ID: "1", Name: "Go", Level: LevelExpert}},
	}

	clone := doc.Clone()
	clone.Skills[0].Name = "Rust"
	clone.PersonalInfo.FullName = "Ana"

	assert.Equal(t, "Go", doc.Skills[0].Name)
	assert.Equal(t, "Juan Pérez", doc.PersonalInfo.FullName)
}

func TestCVDocument_IsEmpty(t *testing.T) {
	var doc CVDocument
	assert.True(t, doc.IsEmpty())

	doc.Education = append(doc.Education, Education{ID: "e1"})
	assert.False(t, doc.IsEmpty())
}

func TestCVDocument_JSONFieldNames(t *testing.T) {
	input := `{
		"personalInfo": {"fullName": "Ana", "email": "a@b.c", "phone": "+34", "location": "Madrid", "summary": "", "profileImage": "file:///tmp/a.jpg"},
		"experiences": [{"id": "x1", "company": "Acme", "position": "Dev", "startDate": "Marzo 2020", "endDate": "", "description": ""}],
		"education": [{"id": "e1", "institution": "UCM", "degree": "Grado", "field": "Informática", "graduationYear": "2019"}],
		"skills": [{"id": "s1", "name": "Go", "level": "Experto"}]
	}`

	var doc CVDocument
	require.NoError(t, json.Unmarshal([]byte(input), &doc))
	assert.Equal(t, "file:///tmp/a.jpg", doc.PersonalInfo.ProfileImage)
	assert.True(t, doc.Experiences[0].Ongoing())
	assert.Equal(t, "2019", doc.Education[0].GraduationYear)
	assert.Equal(t, LevelExpert, doc.Skills[0].Level)
}
