// internal/validator/validator.go
package validator

import (
	"regexp"
	"slices"

	"github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	// String is not empty and not only whitespace.
	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(regexp.MustCompile(`\S`).FindString(s)) > 0
	})

	// Category belongs to the fixed report taxonomy. Validated at write
	// time so entries can never silently fall outside every report bucket.
	_ = Validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.Categories, fl.Field().String())
	})

	_ = Validate.RegisterValidation("maritalstatus", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.MaritalStatuses, fl.Field().String())
	})
}
