package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()

	// spoken_language restricts transcription requests to supported languages
	_ = v.RegisterValidation("spoken_language", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", "en", "hinglish":
			return true
		}
		return false
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
