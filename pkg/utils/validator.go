package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as their json tag, the way consumers see them.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens validator errors into one readable message per
// failed field.
func GetValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages = append(messages, validationMessage(fieldErr))
	}
	return messages
}

func validationMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", field)
	case "max":
		return fmt.Sprintf("%s must be shorter than or equal to %s characters", field, fieldErr.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than or equal to %s characters", field, fieldErr.Param())
	case "url":
		return fmt.Sprintf("%s must be a URL address", field)
	default:
		return fmt.Sprintf("%s failed on the %s constraint", field, fieldErr.Tag())
	}
}
