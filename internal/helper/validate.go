package helper

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// ValidateStruct runs the `validate` tags of v and returns one message per
// failing json field, or nil.
func ValidateStruct(v interface{}) map[string]string {
	err := validatorInstance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": err.Error()}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "len":
			out[field] = field + " must be " + fe.Param() + " characters"
		case "max":
			out[field] = field + " must be at most " + fe.Param() + " characters"
		case "numeric":
			out[field] = field + " must contain digits only"
		case "alphanum":
			out[field] = field + " must contain letters and digits only"
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}
