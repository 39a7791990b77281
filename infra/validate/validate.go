package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3,}$`)

// New creates a validator configured for the payment API: struct fields are
// reported by their json tag name and the custom currency_code rule is
// registered.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// currency_code accepts ISO-4217-like codes: three or more letters,
	// case-insensitive on input.
	_ = v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		return currencyCodePattern.MatchString(fl.Field().String())
	})

	return v
}
