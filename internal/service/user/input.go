package user

import (
	"unicode/utf8"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	DisplayName *string
	Timezone    *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.DisplayName != nil && utf8.RuneCountInString(*i.DisplayName) > 100 {
		errs = append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}

	if i.Timezone != nil && !domain.IsValidTimezone(*i.Timezone) {
		errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown timezone"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
