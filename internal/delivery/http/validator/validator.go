// Package validator adapts go-playground/validator to echo and renders field
// failures as the human-readable detail lines returned in VALIDATION_FAILED errors.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "wellness/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that names fields by their `label` tag, falling back to the json name.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldLabel)

	return &CustomValidator{validate: v}
}

// Validate checks i and returns ErrValidationFailed carrying one detail per failed rule.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate request")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details...))
}

func fieldLabel(field reflect.StructField) string {
	if label := field.Tag.Get("label"); label != "" {
		return label
	}

	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}

func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "email":
		return fmt.Sprintf("%s inválido", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter pelo menos %s caracteres", field, fe.Param())
		}

		return fmt.Sprintf("%s deve ser no mínimo %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s deve ter no máximo %s caracteres", field, fe.Param())
		}

		return fmt.Sprintf("%s deve ser no máximo %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s deve ser maior ou igual a %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s deve ser menor ou igual a %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s deve ser: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s falhou na regra %s", field, fe.Tag())
	}
}
