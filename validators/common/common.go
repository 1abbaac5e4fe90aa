package commonValidator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Run validates a tagged request struct and flattens the result into a
// field -> message map suitable for middleware.ValidationErrorResponse.
func Run(reqData interface{}) map[string]string {
	errors := make(map[string]string)

	err := validate.Struct(reqData)
	if err == nil {
		return errors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["request"] = "Invalid request data!"
		return errors
	}

	for _, fieldErr := range validationErrors {
		field := lowerFirst(fieldErr.Field())
		switch fieldErr.Tag() {
		case "required":
			errors[field] = fmt.Sprintf("%s is required!", field)
		case "email":
			errors[field] = "Invalid email!"
		case "oneof":
			errors[field] = fmt.Sprintf("%s must be one of: %s!", field, strings.ReplaceAll(fieldErr.Param(), " ", ", "))
		case "gte":
			errors[field] = fmt.Sprintf("%s must be at least %s!", field, fieldErr.Param())
		case "lte":
			errors[field] = fmt.Sprintf("%s must not exceed %s!", field, fieldErr.Param())
		case "min":
			errors[field] = fmt.Sprintf("%s must be at least %s characters long!", field, fieldErr.Param())
		case "max":
			errors[field] = fmt.Sprintf("%s must not exceed %s characters!", field, fieldErr.Param())
		default:
			errors[field] = fmt.Sprintf("%s is invalid!", field)
		}
	}

	return errors
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
