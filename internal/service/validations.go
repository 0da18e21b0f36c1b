package service

import (
	"errors"
	"reflect"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/tenminute/internal/error_values"
	"github.com/limbo/tenminute/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Zero-padded YYYY-MM-DD only, so string order matches date order
		validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return IsISODate(fl.Field().String())
		})
		// Nullable update fields validate as their pointer, so omitnil skips absent and null values
		validate.RegisterCustomTypeFunc(nullableValue, entity.Nullable[string]{}, entity.Nullable[int]{})
	})
}

func nullableValue(field reflect.Value) any {
	return field.FieldByName("Value").Interface()
}

func IsISODate(value string) bool {
	if len(value) != len(entity.DateLayout) {
		return false
	}
	_, err := time.Parse(entity.DateLayout, value)
	return err == nil
}

// validateStruct runs the validator and turns its field errors into one error
// wrapping ErrInvalidInput.
func validateStruct(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errors.New("validation error: ")
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return errors.Join(errorvalues.ErrInvalidInput, err)
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func validateDate(name, value string) error {
	if !IsISODate(value) {
		return errors.Join(errorvalues.ErrInvalidInput, errors.New(name+" must be a YYYY-MM-DD date"))
	}
	return nil
}
