package journal

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

const (
	maxLocationTagLength = 200
	maxPhotoRefLength    = 1024
)

// SubmitInput holds parameters for answering today's prompt. PromptID is
// optional; when set it must match today's prompt.
type SubmitInput struct {
	PromptID    *uuid.UUID
	Text        string
	PhotoRef    *string
	LocationTag string
}

func (i *SubmitInput) normalize() {
	i.Text = strings.TrimSpace(i.Text)
	i.LocationTag = strings.TrimSpace(i.LocationTag)
	if i.PhotoRef != nil && strings.TrimSpace(*i.PhotoRef) == "" {
		i.PhotoRef = nil
	}
}

// Validate validates the submit input against the configured maximum length.
func (i SubmitInput) Validate(maxLength int) error {
	errs := validateText(nil, i.Text, maxLength)
	errs = validatePhotoRef(errs, i.PhotoRef)
	errs = validateLocationTag(errs, i.LocationTag)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditInput holds parameters for editing an entry. Nil PhotoRef and
// LocationTag keep the current values; an empty PhotoRef removes the photo.
type EditInput struct {
	Text        string
	PhotoRef    *string
	LocationTag *string
}

func (i *EditInput) normalize() {
	i.Text = strings.TrimSpace(i.Text)
	if i.LocationTag != nil {
		trimmed := strings.TrimSpace(*i.LocationTag)
		i.LocationTag = &trimmed
	}
}

// Validate validates the edit input against the configured maximum length.
func (i EditInput) Validate(maxLength int) error {
	errs := validateText(nil, i.Text, maxLength)
	errs = validatePhotoRef(errs, i.PhotoRef)
	if i.LocationTag != nil {
		errs = validateLocationTag(errs, *i.LocationTag)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(errs []domain.FieldError, text string, maxLength int) []domain.FieldError {
	if text == "" {
		return append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if maxLength > 0 && utf8.RuneCountInString(text) > maxLength {
		return append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}
	return errs
}

func validatePhotoRef(errs []domain.FieldError, ref *string) []domain.FieldError {
	if ref != nil && len(*ref) > maxPhotoRefLength {
		return append(errs, domain.FieldError{Field: "photo_ref", Message: "too long"})
	}
	return errs
}

func validateLocationTag(errs []domain.FieldError, tag string) []domain.FieldError {
	if utf8.RuneCountInString(tag) > maxLocationTagLength {
		return append(errs, domain.FieldError{Field: "location_tag", Message: "too long"})
	}
	return errs
}
