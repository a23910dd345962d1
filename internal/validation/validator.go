// Package validation wraps go-playground/validator with the enum rules used
// by catalog records and search preferences.
//
// Domain enums implement Valid() bool. Two custom tags build on that:
//
//	enum         value must be a member of its enum table
//	enum_or_any  same, but the empty string and domain.NoPreference pass too
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/denisok6893-rgb/ai-pepper-matching/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

type enumValue interface {
	Valid() bool
}

// ValidationError describes one failed field.
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string { return e.Message }

// RequestValidationError collects every field failure of one struct.
type RequestValidationError struct {
	Errors []ValidationError
}

func (ve *RequestValidationError) Error() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(ve.Errors))
	for _, e := range ve.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("enum", validateEnum)
		_ = validate.RegisterValidation("enum_or_any", validateEnumOrAny)
	})
	return validate
}

func validateEnum(fl validator.FieldLevel) bool {
	v, ok := fl.Field().Interface().(enumValue)
	if !ok {
		return false
	}
	return v.Valid()
}

func validateEnumOrAny(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" || s == domain.NoPreference {
		return true
	}
	return validateEnum(fl)
}

// ValidateStruct validates s and returns a *RequestValidationError on failure.
func ValidateStruct(s any) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	out := &RequestValidationError{Errors: make([]ValidationError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: message(fe),
		})
	}
	return out
}

// ValidateItem rejects catalog records whose enums fall outside their order
// tables or whose ranges are inverted.
func ValidateItem(item domain.Item) error {
	if err := ValidateStruct(item); err != nil {
		return fmt.Errorf("item %d (%s): %w", item.ID, item.Name, err)
	}
	return nil
}

func ValidatePreferences(p domain.Preferences) error {
	return ValidateStruct(p)
}

// IsHTTPURL reports whether raw is an absolute http or https URL.
func IsHTTPURL(raw string) bool {
	return getValidator().Var(raw, "required,http_url") == nil
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt", "gte":
		return fmt.Sprintf("%s must be %s %s", fe.Field(), comparison(fe.Tag()), fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "enum", "enum_or_any":
		return fmt.Sprintf("%s has unknown value %q", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func comparison(tag string) string {
	if tag == "gt" {
		return "greater than"
	}
	return "at least"
}
