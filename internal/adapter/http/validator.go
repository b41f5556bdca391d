package http

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-result-engine/internal/domain"
)

var iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
// The first message wins when a field fails more than once.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

// RequestValidator validates request DTOs against their `validate` tags and
// reports failures as English per-field messages keyed by JSON name.
// It implements echo.Validator.
type RequestValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewRequestValidator builds a validator with the API's custom tags.
func NewRequestValidator() *RequestValidator {
	enLoc := en.New()
	uni := ut.New(enLoc, enLoc)
	trans, _ := uni.GetTranslator("en")

	v := validator.New(validator.WithRequiredStructEnabled())

	// prefer json tag names in messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		tag := fld.Tag.Get("json")
		if tag == "-" || tag == "" {
			return fld.Name
		}
		if idx := strings.Index(tag, ","); idx >= 0 {
			tag = tag[:idx]
		}
		return tag
	})

	_ = en_translations.RegisterDefaultTranslations(v, trans)

	_ = v.RegisterValidation("iata", func(fl validator.FieldLevel) bool {
		return iataPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return domain.TimeSlot(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("sortby", func(fl validator.FieldLevel) bool {
		return domain.SortOption(fl.Field().String()).IsValid()
	})

	registerMessage(v, trans, "iata", "{0} must be a 3-letter IATA airport code")
	registerMessage(v, trans, "timeslot", "{0} must be one of: morning, afternoon, evening, night")
	registerMessage(v, trans, "sortby", "{0} must be one of: price, duration, departure, arrival")
	registerMessage(v, trans, "min", "{0} must be at least {1}")
	registerMessage(v, trans, "max", "{0} must be at most {1}")

	return &RequestValidator{validate: v, translator: trans}
}

// Validate implements echo.Validator. Field failures come back as
// *ValidationErrors.
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationErrors{}
	for _, fe := range fieldErrs {
		out.Add(fieldPath(fe), fe.Translate(rv.translator))
	}
	return out
}

// fieldPath drops the struct name from the namespace ("Req.priceRange.min"
// becomes "priceRange.min").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

var _ echo.Validator = (*RequestValidator)(nil)
