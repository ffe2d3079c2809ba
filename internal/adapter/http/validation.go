package http

import (
	"strconv"

	"github.com/go-playground/validator/v10"

	"bridge-lending-backend/internal/domain/pricing"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// term must be one of the offered loan terms
	_ = v.RegisterValidation("term", func(fl validator.FieldLevel) bool {
		n := int(fl.Field().Int())
		for _, t := range pricing.Terms {
			if t == n {
				return true
			}
		}
		return false
	})
	// fico tier must be a known bucket label
	_ = v.RegisterValidation("ficotier", func(fl validator.FieldLevel) bool {
		_, ok := pricing.ResolveFico(pricing.FicoTier(fl.Field().String()))
		return ok
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

func termsList() string {
	s := ""
	for i, t := range pricing.Terms {
		if i > 0 {
			s += ", "
		}
		s += strconv.Itoa(t)
	}
	return s
}

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "term":
			out = append(out, FieldError{Field: field, Message: "must be one of " + termsList()})
		case "ficotier":
			out = append(out, FieldError{Field: field, Message: "must be a known FICO tier"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
