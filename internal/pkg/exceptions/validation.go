package exceptions

import (
	"strings"

	"atenda-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatValidationFields maps validator errors into per-field descriptors
// so clients can attach messages to the offending form inputs.
func FormatValidationFields(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, FieldError{
			Field:   strings.ToLower(fieldErr.Field()),
			Message: formatTagMessage(fieldErr),
		})
	}
	return fields
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		return strings.ToLower(firstErr.Field()) + " " + formatTagMessage(firstErr)
	}
	return constvars.ErrDevInvalidInput
}

func formatTagMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return customMessage
}
