package api

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	imageExtPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|webp)$`)
	videoExtPattern = regexp.MustCompile(`(?i)\.(mp4|mov)$`)
)

type Validator struct {
	validator *validator.Validate
}

// NewValidator builds the Echo validator with the URL-suffix checks used by
// the media create payloads.
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterValidation("image_ext", func(fl validator.FieldLevel) bool {
		return imageExtPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("video_ext", func(fl validator.FieldLevel) bool {
		return videoExtPattern.MatchString(fl.Field().String())
	})

	return &Validator{validator: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
