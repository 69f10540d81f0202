package spark

import "github.com/heartmarshall/vault-backend/internal/domain"

// RandomInput selects the deck to draw from.
type RandomInput struct {
	Category domain.SparkCategory
	Vibe     *domain.PromptCategory
}

// Validate validates the random spark input.
func (i RandomInput) Validate() error {
	var errs []domain.FieldError

	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid spark category"})
	}
	if i.Vibe != nil && !i.Vibe.IsValid() {
		errs = append(errs, domain.FieldError{Field: "vibe", Message: "invalid vibe"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
