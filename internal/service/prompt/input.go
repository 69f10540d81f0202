package prompt

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

const (
	maxTextLength = 500
	// maxListDays bounds ListPrompts to roughly one year.
	maxListDays = 366
)

// CreateInput holds parameters for scheduling a prompt.
type CreateInput struct {
	Text       string
	Category   domain.PromptCategory
	ActiveDate time.Time
}

func (i *CreateInput) normalize() {
	i.Text = strings.TrimSpace(i.Text)
	i.ActiveDate = toDate(i.ActiveDate)
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	errs := validateText(nil, i.Text)

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if i.ActiveDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "active_date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the prompt fields to change. Nil fields are kept.
type UpdateInput struct {
	Text       *string
	Category   *domain.PromptCategory
	ActiveDate *time.Time
}

func (i *UpdateInput) normalize() {
	if i.Text != nil {
		trimmed := strings.TrimSpace(*i.Text)
		i.Text = &trimmed
	}
	if i.ActiveDate != nil {
		d := toDate(*i.ActiveDate)
		i.ActiveDate = &d
	}
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.Text != nil {
		errs = validateText(errs, *i.Text)
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds an inclusive calendar date range.
type ListInput struct {
	From time.Time
	To   time.Time
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.From.IsZero() {
		errs = append(errs, domain.FieldError{Field: "from", Message: "required"})
	}
	if i.To.IsZero() {
		errs = append(errs, domain.FieldError{Field: "to", Message: "required"})
	}
	if len(errs) == 0 {
		switch days := domain.DaysBetween(i.From, i.To); {
		case days < 0:
			errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
		case days > maxListDays:
			errs = append(errs, domain.FieldError{Field: "to", Message: "range too large"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(errs []domain.FieldError, text string) []domain.FieldError {
	if text == "" {
		return append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if utf8.RuneCountInString(text) > maxTextLength {
		return append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}
	return errs
}
