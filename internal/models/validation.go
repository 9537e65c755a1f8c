package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationError describes a single failed field rule
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// ValidationErrors is returned by ValidateStruct when any rule fails
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	var missing, other []string
	for _, fe := range e {
		switch fe.Tag {
		case "required":
			missing = append(missing, fe.Field)
		case "min":
			other = append(other, fmt.Sprintf("%s must not be empty", fe.Field))
		default:
			other = append(other, fmt.Sprintf("%s failed %s", fe.Field, fe.Tag))
		}
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing field(s): "+strings.Join(missing, ", "))
	}
	parts = append(parts, other...)
	return strings.Join(parts, "; ")
}

// ValidateStruct runs the validate tags on s and reports failures using
// the json field names.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Tag: fe.Tag()})
	}
	return out
}
