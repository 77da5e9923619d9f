package editor

import (
	"context"
	"errors"
	"strings"

	"github.com/jonathan/cv-builder/internal/i18n"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
)

// Wizard walks a user through every screen in order using the editor's prompter.
type Wizard struct {
	Editor *Editor
	// Photo enables the profile photo step.
	Photo bool
}

// Run asks for personal info, then any number of experiences, education entries,
// and skills, and finally an optional profile photo. Each field is re-asked until
// it passes its rules.
func (w *Wizard) Run(ctx context.Context) error {
	if err := w.personalInfo(ctx); err != nil {
		return err
	}
	if err := w.repeat(ctx, i18n.MsgAskAddExperience, w.experience); err != nil {
		return err
	}
	if err := w.repeat(ctx, i18n.MsgAskAddEducation, w.education); err != nil {
		return err
	}
	if err := w.repeat(ctx, i18n.MsgAskAddSkill, w.skill); err != nil {
		return err
	}
	if w.Photo {
		return w.photo(ctx)
	}
	return nil
}

func (w *Wizard) personalInfo(ctx context.Context) error {
	rec := validation.RecordPersonalInfo
	var info types.PersonalInfo
	var err error
	if info.FullName, err = w.askField(ctx, rec, "fullName", i18n.MsgLabelFullName); err != nil {
		return err
	}
	if info.Email, err = w.askField(ctx, rec, "email", i18n.MsgLabelEmail); err != nil {
		return err
	}
	if info.Phone, err = w.askField(ctx, rec, "phone", i18n.MsgLabelPhone); err != nil {
		return err
	}
	if info.Location, err = w.askField(ctx, rec, "location", i18n.MsgLabelLocation); err != nil {
		return err
	}
	if info.Summary, err = w.askField(ctx, rec, "summary", i18n.MsgLabelSummary); err != nil {
		return err
	}
	return w.Editor.SavePersonalInfo(ctx, info)
}

func (w *Wizard) experience(ctx context.Context) error {
	rec := validation.RecordExperience
	var draft types.Experience
	var err error
	if draft.Company, err = w.askField(ctx, rec, "company", i18n.MsgLabelCompany); err != nil {
		return err
	}
	if draft.Position, err = w.askField(ctx, rec, "position", i18n.MsgLabelPosition); err != nil {
		return err
	}
	if draft.Description, err = w.askField(ctx, rec, "description", i18n.MsgLabelDescription); err != nil {
		return err
	}

	for {
		if draft.StartDate, err = w.ask(ctx, i18n.MsgLabelStartDate); err != nil {
			return err
		}
		if draft.EndDate, err = w.ask(ctx, i18n.MsgLabelEndDate); err != nil {
			return err
		}
		_, err = w.Editor.AddExperience(ctx, draft)
		var dateErr *validation.DateRuleError
		if !errors.As(err, &dateErr) {
			return err
		}
	}
}

func (w *Wizard) education(ctx context.Context) error {
	rec := validation.RecordEducation
	var draft types.Education
	var err error
	if draft.Institution, err = w.askField(ctx, rec, "institution", i18n.MsgLabelInstitution); err != nil {
		return err
	}
	if draft.Degree, err = w.askField(ctx, rec, "degree", i18n.MsgLabelDegree); err != nil {
		return err
	}
	if draft.Field, err = w.askField(ctx, rec, "field", i18n.MsgLabelField); err != nil {
		return err
	}
	if draft.GraduationYear, err = w.askField(ctx, rec, "graduationYear", i18n.MsgLabelYear); err != nil {
		return err
	}
	_, err = w.Editor.AddEducation(ctx, draft)
	return err
}

func (w *Wizard) skill(ctx context.Context) error {
	var draft types.Skill
	var err error
	if draft.Name, err = w.askField(ctx, validation.RecordSkill, "name", i18n.MsgLabelSkillName); err != nil {
		return err
	}

	levels := make([]string, len(types.SkillLevels))
	for i, l := range types.SkillLevels {
		levels[i] = string(l)
	}
	p := w.Editor.printer
	label := p.Sprintf(i18n.MsgLabelSkillLevel, strings.Join(levels, "/"))
	for draft.Level == "" {
		answer, err := w.Editor.prompter.Ask(ctx, label)
		if err != nil {
			return err
		}
		if level, ok := matchLevel(answer); ok {
			draft.Level = level
			continue
		}
		w.Editor.alert(ctx, i18n.MsgTitleError, p.Sprintf(i18n.MsgInvalidLevel, strings.Join(levels, ", ")))
	}

	_, err = w.Editor.AddSkill(ctx, draft)
	return err
}

func (w *Wizard) photo(ctx context.Context) error {
	p := w.Editor.printer
	ok, err := w.Editor.prompter.Confirm(ctx, p.Sprintf(i18n.MsgTitleConfirm), p.Sprintf(i18n.MsgAskPhoto))
	if err != nil || !ok {
		return err
	}
	// Pick and save failures are alerted by the editor; the CV stays valid without a photo.
	ref, err := w.Editor.PickPhoto(ctx)
	if err != nil || ref == "" {
		return nil
	}
	_ = w.Editor.SavePhoto(ctx, ref)
	return nil
}

// repeat runs step while the user confirms question.
func (w *Wizard) repeat(ctx context.Context, question string, step func(context.Context) error) error {
	p := w.Editor.printer
	for {
		ok, err := w.Editor.prompter.Confirm(ctx, p.Sprintf(i18n.MsgTitleConfirm), p.Sprintf(question))
		if err != nil || !ok {
			return err
		}
		if err := step(ctx); err != nil {
			return err
		}
	}
}

// askField asks for a field until its rules pass, alerting the messages of each failure.
func (w *Wizard) askField(ctx context.Context, record validation.Record, field, labelKey string) (string, error) {
	for {
		value, err := w.ask(ctx, labelKey)
		if err != nil {
			return "", err
		}
		messages := w.Editor.validator.ValidateField(record, field, value)
		if len(messages) == 0 {
			return value, nil
		}
		w.Editor.alert(ctx, i18n.MsgTitleError, strings.Join(messages, "\n"))
	}
}

func (w *Wizard) ask(ctx context.Context, labelKey string) (string, error) {
	return w.Editor.prompter.Ask(ctx, w.Editor.printer.Sprintf(labelKey))
}

// matchLevel maps an answer to a skill level, ignoring case.
func matchLevel(answer string) (types.SkillLevel, bool) {
	for _, level := range types.SkillLevels {
		if strings.EqualFold(answer, string(level)) {
			return level, true
		}
	}
	return "", false
}
