package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/cv-builder/internal/i18n"
	"github.com/jonathan/cv-builder/internal/types"
	"golang.org/x/text/message"
)

// Record names a record type with its own rule set.
type Record string

const (
	RecordPersonalInfo Record = "personalInfo"
	RecordExperience   Record = "experience"
	RecordEducation    Record = "education"
	RecordSkill        Record = "skill"
)

// Field length bounds.
const (
	MaxShortText = 50
	MaxPhone     = 15
	MaxLongText  = 250
)

// FieldRules binds a field name to its rules.
type FieldRules struct {
	Field string
	Rules []Rule
}

// Validator evaluates the rule sets of every record type.
// Messages are produced in the configured locale.
type Validator struct {
	printer *message.Printer
	now     func() time.Time
	structs *validator.Validate
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock sets the time source used for "not in the future" and "not after this year" checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New creates a Validator producing messages in locale.
func New(locale string, opts ...Option) *Validator {
	structs := validator.New()
	structs.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v := &Validator{
		printer: i18n.NewPrinter(locale),
		now:     time.Now,
		structs: structs,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Printer returns the message printer used for rule messages.
func (v *Validator) Printer() *message.Printer {
	return v.printer
}

// Now returns the current time according to the validator's clock.
func (v *Validator) Now() time.Time {
	return v.now()
}

// Rules returns the field rule set of a record, in form order.
func (v *Validator) Rules(record Record) []FieldRules {
	p := v.printer
	letters := Pattern(LettersAndSpaces, p.Sprintf(i18n.MsgLettersOnly))
	maxShort := MaxLength(MaxShortText, p.Sprintf(i18n.MsgMaxLength, MaxShortText))
	maxLong := MaxLength(MaxLongText, p.Sprintf(i18n.MsgMaxLength, MaxLongText))

	switch record {
	case RecordPersonalInfo:
		return []FieldRules{
			{"fullName", []Rule{Required(p.Sprintf(i18n.MsgFullNameRequired)), letters, maxShort}},
			{"email", []Rule{Required(p.Sprintf(i18n.MsgEmailRequired)), Pattern(EmailShape, p.Sprintf(i18n.MsgInvalidEmail))}},
			{"phone", []Rule{
				Required(p.Sprintf(i18n.MsgPhoneRequired)),
				Pattern(PhoneChars, p.Sprintf(i18n.MsgPhoneChars)),
				MaxLength(MaxPhone, p.Sprintf(i18n.MsgMaxLength, MaxPhone)),
			}},
			{"location", []Rule{Required(p.Sprintf(i18n.MsgLocationRequired)), maxShort}},
			{"summary", []Rule{maxLong}},
		}
	case RecordExperience:
		return []FieldRules{
			{"company", []Rule{Required(p.Sprintf(i18n.MsgCompanyRequired)), maxShort, letters}},
			{"position", []Rule{Required(p.Sprintf(i18n.MsgPositionRequired)), maxShort, letters}},
			{"description", []Rule{maxLong}},
		}
	case RecordEducation:
		year := v.now().Year()
		return []FieldRules{
			{"institution", []Rule{Required(p.Sprintf(i18n.MsgInstitutionRequired)), letters, maxShort}},
			{"degree", []Rule{Required(p.Sprintf(i18n.MsgDegreeRequired)), maxShort}},
			{"field", []Rule{Required(p.Sprintf(i18n.MsgFieldRequired)), maxLong}},
			{"graduationYear", []Rule{
				Required(p.Sprintf(i18n.MsgYearRequired)),
				Pattern(DigitsOnly, p.Sprintf(i18n.MsgNumberOnly)),
				Max(year, p.Sprintf(i18n.MsgMaxValue, year)),
			}},
		}
	case RecordSkill:
		return []FieldRules{
			{"name", []Rule{Required(p.Sprintf(i18n.MsgSkillNameRequired)), letters, maxShort}},
		}
	}
	return nil
}

// ValidateField checks one field of a record and returns one message per violated rule.
// Fields without rules are always accepted.
func (v *Validator) ValidateField(record Record, field, value string) []string {
	for _, fr := range v.Rules(record) {
		if fr.Field == field {
			return Check(value, fr.Rules)
		}
	}
	return nil
}

func (v *Validator) checkFields(record Record, values map[string]string) *ValidationError {
	result := &ValidationError{}
	for _, fr := range v.Rules(record) {
		result.add(fr.Field, Check(values[fr.Field], fr.Rules)...)
	}
	return result
}

// ValidatePersonalInfo validates every field of a personal info draft.
func (v *Validator) ValidatePersonalInfo(info types.PersonalInfo) error {
	return v.checkFields(RecordPersonalInfo, map[string]string{
		"fullName": info.FullName,
		"email":    info.Email,
		"phone":    info.Phone,
		"location": info.Location,
		"summary":  info.Summary,
	}).orNil()
}

// ValidateExperience validates the single-field rules of an experience draft.
// Date ordering is checked separately by CheckExperienceDates at submit time.
func (v *Validator) ValidateExperience(exp types.Experience) error {
	return v.checkFields(RecordExperience, map[string]string{
		"company":     exp.Company,
		"position":    exp.Position,
		"description": exp.Description,
	}).orNil()
}

// ValidateEducation validates every field of an education draft.
func (v *Validator) ValidateEducation(edu types.Education) error {
	return v.checkFields(RecordEducation, map[string]string{
		"institution":    edu.Institution,
		"degree":         edu.Degree,
		"field":          edu.Field,
		"graduationYear": edu.GraduationYear,
	}).orNil()
}

// ValidateSkill validates a skill draft, including the fixed level enumeration.
func (v *Validator) ValidateSkill(skill types.Skill) error {
	result := v.checkFields(RecordSkill, map[string]string{"name": skill.Name})
	result.add("level", v.checkStruct(skill, "ID")...)
	return result.orNil()
}

// checkStruct runs the struct tags of s, skipping the named fields, and
// returns localized messages for the violations.
func (v *Validator) checkStruct(s any, except ...string) []string {
	err := v.structs.StructExcept(s, except...)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, v.structMessage(fe))
	}
	return messages
}

func (v *Validator) structMessage(fe validator.FieldError) string {
	switch {
	case fe.Field() == "id":
		return v.printer.Sprintf(i18n.MsgIDRequired)
	case fe.Field() == "level":
		levels := make([]string, len(types.SkillLevels))
		for i, l := range types.SkillLevels {
			levels[i] = string(l)
		}
		return v.printer.Sprintf(i18n.MsgInvalidLevel, strings.Join(levels, ", "))
	}
	return fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
}
