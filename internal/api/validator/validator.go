package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const dateRegex = `^\d{4}-\d{2}-\d{2}$`

const DateOnlyTag = "dateonly"

func New() (*validator.Validate, error) {
	v := validator.New()

	if err := v.RegisterValidation(DateOnlyTag, ValidateDateOnly); err != nil {
		return nil, err
	}

	return v, nil
}

func ValidateDateOnly(fl validator.FieldLevel) bool {
	return regexp.MustCompile(dateRegex).MatchString(fl.Field().String())
}
