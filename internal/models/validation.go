package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// validate is shared by the BeforeSave hooks so every model is checked
// against its field rules before a row is written.
var validate = newValidator()

var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// slug: letters, digits, hyphens and underscores only.
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return v
}
