package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("weekday", isWeekday)
}

// Validate runs struct tag validation.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors flattens validation errors into field -> failed tag.
func FieldErrors(err error) map[string]interface{} {
	out := make(map[string]interface{})
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["error"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// IsWeekdayName reports whether s is an English weekday name as produced by time.Weekday.
func IsWeekdayName(s string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == s {
			return true
		}
	}
	return false
}

func isWeekday(fl validator.FieldLevel) bool {
	return IsWeekdayName(fl.Field().String())
}
