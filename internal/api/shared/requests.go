package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct. A type mismatch
// (e.g. a string where an array of strings is required) is reported against
// the offending field.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return fmt.Errorf("%s must be of type %s", typeErr.Field, typeErr.Type)
		}
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	return validate.Struct(v)
}

// FormatValidationError renders a validator error as one client-facing
// message covering every failing field, not just the first. Missing required
// fields are grouped into a single clause.
func FormatValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Validation error"
	}

	var missing []string
	var problems []string
	for _, fieldErr := range validationErrs {
		field := strings.ToLower(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			missing = append(missing, field)
		case "email":
			problems = append(problems, field+" must be a valid email address")
		case "min":
			problems = append(problems, fmt.Sprintf("%s must be at least %s characters long", field, fieldErr.Param()))
		case "max":
			problems = append(problems, fmt.Sprintf("%s must be at most %s characters long", field, fieldErr.Param()))
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param()))
		default:
			problems = append(problems, field+" is invalid")
		}
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}
	parts = append(parts, problems...)

	return strings.Join(parts, "; ")
}
