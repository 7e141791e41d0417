// Package validator adapts go-playground/validator to echo and renders
// failures as English sentences keyed by the JSON field name.
package validator

import (
	"reflect"
	"strings"

	"eventhub/internal/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a validator with English error messages.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		trans = nil
	}

	return &CustomValidator{
		validate: validate,
		trans:    trans,
	}
}

// ValidationError lists every failed field with its message.
type ValidationError struct {
	Fields map[string]string
	msg    string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Validate checks the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fe.Error()
		if cv.trans != nil {
			msg = fe.Translate(cv.trans)
		}
		fields[fe.Field()] = msg
		messages = append(messages, msg)
	}

	return &ValidationError{
		Fields: fields,
		msg:    strings.Join(messages, "; "),
	}
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}
