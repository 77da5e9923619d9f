package validation

import (
	"strings"

	"github.com/jonathan/cv-builder/internal/i18n"
	"github.com/jonathan/cv-builder/internal/types"
)

// CheckExperienceDates applies the cross-field date rule of an experience.
// The first failing check is returned as a *DateRuleError; an empty end date means ongoing.
func (v *Validator) CheckExperienceDates(startDate, endDate string) error {
	p := v.printer
	today := types.MonthYearOf(v.now())

	if strings.TrimSpace(startDate) == "" {
		return &DateRuleError{Field: "startDate", Message: p.Sprintf(i18n.MsgStartRequired)}
	}

	start, err := types.ParseMonthYear(startDate)
	if err != nil {
		return &DateRuleError{Field: "startDate", Message: p.Sprintf(i18n.MsgInvalidDate, startDate), Cause: err}
	}
	if start.After(today) {
		return &DateRuleError{Field: "startDate", Message: p.Sprintf(i18n.MsgStartFuture)}
	}

	if strings.TrimSpace(endDate) == "" {
		return nil
	}

	end, err := types.ParseMonthYear(endDate)
	if err != nil {
		return &DateRuleError{Field: "endDate", Message: p.Sprintf(i18n.MsgInvalidDate, endDate), Cause: err}
	}
	if end.After(today) {
		return &DateRuleError{Field: "endDate", Message: p.Sprintf(i18n.MsgEndFuture)}
	}
	if end.Before(start) {
		return &DateRuleError{Field: "endDate", Message: p.Sprintf(i18n.MsgEndBeforeStart)}
	}

	return nil
}
