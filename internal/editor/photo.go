package editor

import (
	"context"
	"errors"
	"log"

	"github.com/jonathan/cv-builder/internal/i18n"
	"github.com/jonathan/cv-builder/internal/images"
)

// PickPhoto asks the picker for an image and returns its reference without saving it.
// A cancelled pick returns "" and no error. Permission and read failures are alerted
// and returned.
func (e *Editor) PickPhoto(ctx context.Context) (string, error) {
	ref, err := e.picker.Pick(ctx)
	switch {
	case err == nil:
		return ref, nil
	case errors.Is(err, images.ErrCancelled):
		e.logf("photo selection cancelled")
		return "", nil
	case errors.Is(err, images.ErrPermissionDenied):
		log.Printf("[EDITOR] photo access denied: %v", err)
		e.alert(ctx, i18n.MsgTitlePermission, e.printer.Sprintf(i18n.MsgPhotoPermission))
		return "", err
	default:
		log.Printf("[EDITOR] photo pick failed: %v", err)
		e.alert(ctx, i18n.MsgTitleError, e.printer.Sprintf(i18n.MsgPhotoReadFailed))
		return "", err
	}
}

// SavePhoto stores ref as the profile image after checking that it can be read.
// The rest of the personal info is kept.
func (e *Editor) SavePhoto(ctx context.Context, ref string) error {
	if e.images != nil {
		if _, err := e.images.DataURI(ctx, ref); err != nil {
			log.Printf("[EDITOR] photo unreadable: %v", err)
			e.alert(ctx, i18n.MsgTitleError, e.printer.Sprintf(i18n.MsgPhotoReadFailed))
			return err
		}
	}

	info := e.store.PersonalInfo()
	info.ProfileImage = ref
	e.store.UpdatePersonalInfo(info)
	e.logf("profile photo set to %s", ref)
	return e.success(ctx, i18n.MsgPhotoSaved)
}

// RemovePhoto asks for confirmation and clears the profile image.
func (e *Editor) RemovePhoto(ctx context.Context) (bool, error) {
	return e.confirmDelete(ctx, i18n.MsgConfirmDelPhoto, func() {
		info := e.store.PersonalInfo()
		info.ProfileImage = ""
		e.store.UpdatePersonalInfo(info)
	})
}
