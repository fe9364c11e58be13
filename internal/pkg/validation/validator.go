package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Engine returns the shared validator, configured to report JSON field names.
func Engine() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("letter_grade", isLetterGrade)
		_ = validate.RegisterValidation("notblank", isNotBlank)
	})
	return validate
}

// Struct validates v and returns every violation as one *apperrors.ValidationError.
func Struct(v any) error {
	return Collect(Engine().Struct(v))
}

// Collect converts validator.ValidationErrors into *apperrors.ValidationError.
// Other errors are returned unchanged.
func Collect(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &apperrors.ValidationError{}
	for _, fe := range verrs {
		out.Add(fieldPath(fe), formatFieldError(fe))
	}
	return out.Err()
}

// fieldPath drops the top-level struct name: "StudentRequest.gpa" becomes "gpa".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
