package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Custom tags usable in DTO struct tags.
const (
	TagPhoneIntl = "phoneintl"
	TagEmailTLD  = "emailtld"
	TagSchedule  = "schedule"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation(TagPhoneIntl, func(fl validator.FieldLevel) bool {
		return IsPhoneIntl(fl.Field().String())
	})
	_ = v.RegisterValidation(TagEmailTLD, func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(TagSchedule, func(fl validator.FieldLevel) bool {
		return ValidateSchedule(fl.Field().String()).Valid
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param()
			case "max":
				errors[field] = field + " must be at most " + e.Param()
			case "gte":
				errors[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				errors[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case TagPhoneIntl:
				errors[field] = MsgInvalidPhone
			case TagEmailTLD:
				errors[field] = MsgInvalidEmail
			case TagSchedule:
				errors[field] = ValidateSchedule(fmt.Sprint(e.Value())).Message
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
