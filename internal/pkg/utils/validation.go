package utils

import (
	"fmt"
	"strings"

	"healthai-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("gender", validateGender)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "male" || value == "female" || value == "other"
}

// FormatAllValidationErrors joins every field failure into one message, the
// way the registration form surfaces them.
func FormatAllValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, formatFieldError(fieldError))
	}
	return strings.Join(messages, ", ")
}

func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}
	return formatFieldError(validationErrors[0])
}

func formatFieldError(fieldError validator.FieldError) string {
	message, exists := constvars.CustomValidationErrorMessages[fieldError.Tag()]
	if !exists {
		return fmt.Sprintf("%s is invalid", fieldError.Field())
	}
	if constvars.TagsWithParams[fieldError.Tag()] {
		message = fmt.Sprintf(message, fieldError.Param())
	}
	return fmt.Sprintf("%s %s", fieldError.Field(), message)
}
