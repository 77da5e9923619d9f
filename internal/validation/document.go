package validation

import (
	"errors"
	"fmt"

	"github.com/jonathan/cv-builder/internal/i18n"
	"github.com/jonathan/cv-builder/internal/types"
)

// ValidateDocument validates a whole CV: every record's field rules, the
// experience date rule, struct tags, and id uniqueness within each list.
// Field paths look like "experiences[1].company".
func (v *Validator) ValidateDocument(doc *types.CVDocument) error {
	result := &ValidationError{}

	mergeRecord(result, "personalInfo", v.ValidatePersonalInfo(doc.PersonalInfo))

	seen := make(map[string]bool)
	for i, exp := range doc.Experiences {
		prefix := fmt.Sprintf("experiences[%d]", i)
		mergeRecord(result, prefix, v.ValidateExperience(exp))
		var dateErr *DateRuleError
		if err := v.CheckExperienceDates(exp.StartDate, exp.EndDate); errors.As(err, &dateErr) {
			result.add(prefix+"."+dateErr.Field, dateErr.Message)
		}
		v.checkID(result, prefix, exp.ID, seen, exp)
	}

	seen = make(map[string]bool)
	for i, edu := range doc.Education {
		prefix := fmt.Sprintf("education[%d]", i)
		mergeRecord(result, prefix, v.ValidateEducation(edu))
		v.checkID(result, prefix, edu.ID, seen, edu)
	}

	seen = make(map[string]bool)
	for i, skill := range doc.Skills {
		prefix := fmt.Sprintf("skills[%d]", i)
		mergeRecord(result, prefix, v.ValidateSkill(skill))
		v.checkID(result, prefix, skill.ID, seen, skill)
	}

	return result.orNil()
}

func (v *Validator) checkID(result *ValidationError, prefix, id string, seen map[string]bool, record any) {
	if err := v.structs.StructPartial(record, "ID"); err != nil {
		result.add(prefix+".id", v.printer.Sprintf(i18n.MsgIDRequired))
		return
	}
	if seen[id] {
		result.add(prefix+".id", v.printer.Sprintf(i18n.MsgDuplicateID, id))
	}
	seen[id] = true
}

func mergeRecord(result *ValidationError, prefix string, err error) {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return
	}
	for _, fe := range ve.Errors {
		result.add(prefix+"."+fe.Field, fe.Message)
	}
}
