// Package editor implements the CV editing screens as handlers over the store: each
// submission is validated, confirmed when destructive, applied, and acknowledged.
package editor

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jonathan/cv-builder/internal/dialog"
	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/i18n"
	"github.com/jonathan/cv-builder/internal/images"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/store"
	"github.com/jonathan/cv-builder/internal/types"
	"github.com/jonathan/cv-builder/internal/validation"
	"golang.org/x/text/message"
)

// Deps are the collaborators of an Editor. Picker, Images, and Export may be nil
// when the corresponding screens are not used.
type Deps struct {
	Store     *store.Store
	Validator *validation.Validator
	Prompter  dialog.Prompter
	Picker    images.Picker
	Images    images.Reader
	Export    *export.Session
	Render    rendering.Options
	NewID     func() string
	Verbose   bool
}

// Editor applies screen actions to one session's store.
type Editor struct {
	store     *store.Store
	validator *validation.Validator
	prompter  dialog.Prompter
	picker    images.Picker
	images    images.Reader
	export    *export.Session
	render    rendering.Options
	newID     func() string
	printer   *message.Printer
	verbose   bool
}

// New creates an Editor. A nil NewID uses store.NewID.
func New(deps Deps) *Editor {
	newID := deps.NewID
	if newID == nil {
		newID = store.NewID
	}
	return &Editor{
		store:     deps.Store,
		validator: deps.Validator,
		prompter:  deps.Prompter,
		picker:    deps.Picker,
		images:    deps.Images,
		export:    deps.Export,
		render:    deps.Render,
		newID:     newID,
		printer:   deps.Validator.Printer(),
		verbose:   deps.Verbose,
	}
}

// Validator returns the validator used for submissions.
func (e *Editor) Validator() *validation.Validator {
	return e.validator
}

// Snapshot returns an immutable copy of the current document.
func (e *Editor) Snapshot() types.CVDocument {
	return e.store.Snapshot()
}

// SavePersonalInfo validates info and replaces the personal info with it. The current
// profile image is carried over; the photo screen owns that field. Field errors are
// returned as *validation.ValidationError without touching the store.
func (e *Editor) SavePersonalInfo(ctx context.Context, info types.PersonalInfo) error {
	if err := e.validator.ValidatePersonalInfo(info); err != nil {
		return err
	}
	info.ProfileImage = e.store.PersonalInfo().ProfileImage
	e.store.UpdatePersonalInfo(info)
	e.logf("personal info saved")
	return e.success(ctx, i18n.MsgPersonalSaved)
}

// AddExperience validates the draft, checks its dates, assigns an id, and appends it
// with its dates in canonical form.
// A date rule failure is alerted and returned as *validation.DateRuleError.
func (e *Editor) AddExperience(ctx context.Context, draft types.Experience) (types.Experience, error) {
	if err := e.validator.ValidateExperience(draft); err != nil {
		return types.Experience{}, err
	}
	if err := e.validator.CheckExperienceDates(draft.StartDate, draft.EndDate); err != nil {
		var dateErr *validation.DateRuleError
		if errors.As(err, &dateErr) {
			e.alert(ctx, i18n.MsgTitleError, dateErr.Message)
		}
		return types.Experience{}, err
	}

	draft.NormalizeDates()
	draft.ID = e.newID()
	if err := e.store.AddExperience(draft); err != nil {
		e.alert(ctx, i18n.MsgTitleError, e.printer.Sprintf(i18n.MsgSaveFailed))
		return types.Experience{}, err
	}
	e.logf("experience %s added", draft.ID)
	return draft, e.success(ctx, i18n.MsgExperienceAdded)
}

// AddEducation validates the draft, assigns an id, and appends it.
func (e *Editor) AddEducation(ctx context.Context, draft types.Education) (types.Education, error) {
	if err := e.validator.ValidateEducation(draft); err != nil {
		return types.Education{}, err
	}

	draft.ID = e.newID()
	if err := e.store.AddEducation(draft); err != nil {
		e.alert(ctx, i18n.MsgTitleError, e.printer.Sprintf(i18n.MsgSaveFailed))
		return types.Education{}, err
	}
	e.logf("education %s added", draft.ID)
	return draft, e.success(ctx, i18n.MsgEducationAdded)
}

// AddSkill validates the draft, assigns an id, and appends it.
func (e *Editor) AddSkill(ctx context.Context, draft types.Skill) (types.Skill, error) {
	if err := e.validator.ValidateSkill(draft); err != nil {
		return types.Skill{}, err
	}

	draft.ID = e.newID()
	if err := e.store.AddSkill(draft); err != nil {
		e.alert(ctx, i18n.MsgTitleError, e.printer.Sprintf(i18n.MsgSaveFailed))
		return types.Skill{}, err
	}
	e.logf("skill %s added", draft.ID)
	return draft, e.success(ctx, i18n.MsgSkillAdded)
}

// DeleteExperience asks for confirmation and removes the experience. It reports
// whether the entry was deleted.
func (e *Editor) DeleteExperience(ctx context.Context, id string) (bool, error) {
	return e.confirmDelete(ctx, i18n.MsgConfirmDelExperience, func() { e.store.DeleteExperience(id) })
}

// DeleteEducation asks for confirmation and removes the education entry.
func (e *Editor) DeleteEducation(ctx context.Context, id string) (bool, error) {
	return e.confirmDelete(ctx, i18n.MsgConfirmDelEducation, func() { e.store.DeleteEducation(id) })
}

// DeleteSkill asks for confirmation and removes the skill.
func (e *Editor) DeleteSkill(ctx context.Context, id string) (bool, error) {
	return e.confirmDelete(ctx, i18n.MsgConfirmDelSkill, func() { e.store.DeleteSkill(id) })
}

func (e *Editor) confirmDelete(ctx context.Context, question string, remove func()) (bool, error) {
	ok, err := e.prompter.Confirm(ctx, e.printer.Sprintf(i18n.MsgTitleConfirm), e.printer.Sprintf(question))
	if err != nil || !ok {
		return false, err
	}
	remove()
	return true, nil
}

func (e *Editor) success(ctx context.Context, key string) error {
	return e.prompter.Alert(ctx, e.printer.Sprintf(i18n.MsgTitleSuccess), e.printer.Sprintf(key))
}

// alert shows a failure dialog. A failure to show it is only logged.
func (e *Editor) alert(ctx context.Context, titleKey, message string) {
	if err := e.prompter.Alert(ctx, e.printer.Sprintf(titleKey), message); err != nil {
		log.Printf("[EDITOR] failed to show alert %q: %v", message, err)
	}
}

func (e *Editor) logf(format string, args ...any) {
	if e.verbose {
		log.Printf("[EDITOR] "+format, args...)
	}
}

// FieldMessages flattens a validation error into "field: message" lines for display.
func FieldMessages(err error) string {
	var ve *validation.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	lines := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		lines = append(lines, fe.Field+": "+fe.Message)
	}
	return strings.Join(lines, "\n")
}
