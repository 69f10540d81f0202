package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/vault-backend/internal/domain"
)

const (
	// dateLayout is the wire format of calendar dates.
	dateLayout = "2006-01-02"

	maxBodyBytes = 1 << 20
)

// Validator checks request DTOs and reports failures as domain validation
// errors keyed by JSON field name.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a Validator with the journal's custom tags registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "timezone", func(fl validator.FieldLevel) bool {
		return domain.IsValidTimezone(fl.Field().String())
	})
	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateLayout, fl.Field().String())
		return err == nil
	})
	mustRegister(v, "prompt_category", func(fl validator.FieldLevel) bool {
		return domain.PromptCategory(strings.ToUpper(fl.Field().String())).IsValid()
	})
	mustRegister(v, "spark_category", func(fl validator.FieldLevel) bool {
		return domain.SparkCategory(strings.ToUpper(fl.Field().String())).IsValid()
	})

	return &Validator{v: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// Validate validates a struct and returns a *domain.ValidationError.
func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make([]domain.FieldError, len(validationErrs))
	for i, e := range validationErrs {
		fields[i] = domain.FieldError{Field: e.Field(), Message: friendlyMessage(e)}
	}
	return &domain.ValidationError{Errors: fields}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "timezone":
		return "unknown timezone"
	case "date":
		return "must be a date formatted YYYY-MM-DD"
	case "prompt_category":
		return "unknown category"
	case "spark_category":
		return "unknown spark category"
	default:
		return "is invalid"
	}
}

// decode reads a JSON body into dst and validates it.
func (v *Validator) decode(r *http.Request, w http.ResponseWriter, dst any) error {
	return v.decodeBody(r, w, dst, true)
}

// decodeOptional is decode for endpoints where the body may be omitted.
func (v *Validator) decodeOptional(r *http.Request, w http.ResponseWriter, dst any) error {
	return v.decodeBody(r, w, dst, false)
}

func (v *Validator) decodeBody(r *http.Request, w http.ResponseWriter, dst any, required bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			if !required {
				return v.Validate(dst)
			}
			return domain.NewValidationError("body", "is required")
		}
		return domain.NewValidationError("body", "malformed JSON: "+err.Error())
	}
	return v.Validate(dst)
}

// parseDate parses a validated wire date. An empty string yields nil.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// formatDate renders a calendar date. A nil date renders as nil.
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
