package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	domainerrors "github.com/OSUMed/feature-request-app/internal/domain/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Erros de campo usam o nome JSON (title, description, ...)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	// "notblank" recusa strings só com espaços
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return v
}

// validateStruct valida s e converte as violações em *ValidationError
func validateStruct(s any) error {
	return toValidationError(validate.Struct(s), "")
}

// validateVar valida um valor isolado, atribuindo as violações a field
func validateVar(field string, value any, tag string) error {
	return toValidationError(validate.Var(value, tag), field)
}

// mergeValidation junta as violações de várias validações em um único erro
func mergeValidation(errs ...error) error {
	var merged *domainerrors.ValidationError
	for _, err := range errs {
		if err == nil {
			continue
		}
		var validationErr *domainerrors.ValidationError
		if !errors.As(err, &validationErr) {
			return err
		}
		if merged == nil {
			merged = &domainerrors.ValidationError{}
		}
		merged.Fields = append(merged.Fields, validationErr.Fields...)
	}
	if merged == nil {
		return nil
	}
	return merged
}

func toValidationError(err error, field string) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := &domainerrors.ValidationError{}
	for _, fe := range fieldErrs {
		name := fe.Field()
		if field != "" {
			name = field
		}
		result.Fields = append(result.Fields, domainerrors.FieldError{
			Field:   name,
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: fieldMessage(name, fe.Tag(), fe.Param()),
		})
	}
	return result
}

func fieldMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
