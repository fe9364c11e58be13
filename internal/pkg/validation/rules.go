package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/unidash/internal/app/models"
)

// isLetterGrade implements the letter_grade tag
func isLetterGrade(fl validator.FieldLevel) bool {
	return models.IsLetterGrade(fl.Field().String())
}

// isNotBlank implements the notblank tag: the string must contain a non-space rune
func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "is required"
	case "min":
		if isCollection(e) {
			return fmt.Sprintf("must contain at least %s item(s)", e.Param())
		}
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + e.Param()
	case "letter_grade":
		return "must be one of: " + strings.Join(models.LetterGrades(), ", ")
	case "unique":
		return "must not contain duplicates"
	default:
		return "validation failed: " + e.Tag()
	}
}

func isCollection(e validator.FieldError) bool {
	switch e.Kind().String() {
	case "slice", "array", "map":
		return true
	}
	return false
}
