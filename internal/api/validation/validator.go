package validation

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sleepitron/sleepitron/pkg/problem"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// caldate validates calendar dates in YYYY-MM-DD form.
	validate.RegisterValidation("caldate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	// clock validates zero-padded 24-hour clock times in HH:MM form.
	validate.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if len(v) != 5 {
			return false
		}
		_, err := time.Parse("15:04", v)
		return err == nil
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "caldate":
		return "must be a valid calendar date (YYYY-MM-DD)"
	case "clock":
		return "must be a valid clock time (HH:MM, 24-hour)"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
