package service

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/pkg/entity"
	"github.com/shopspring/decimal"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// 24h clock, "07:30"
		validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, err := time.Parse("15:04", fl.Field().String())
			return err == nil && len(fl.Field().String()) == 5
		})
		validate.RegisterValidation("expense_category", func(fl validator.FieldLevel) bool {
			return slices.Contains(entity.ExpenseCategories, entity.ExpenseCategory(fl.Field().String()))
		})
		// Amounts are compared as numbers by gt/gte
		validate.RegisterCustomTypeFunc(func(v reflect.Value) any {
			if d, ok := v.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()
				return f
			}
			return nil
		}, decimal.Decimal{})
	})
}

// validateStruct wraps field errors into ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fieldErrs := make([]error, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fieldErrs = append(fieldErrs, fieldErr)
		}
		return fmt.Errorf("%w: %w", errorvalues.ErrValidation, errors.Join(fieldErrs...))
	}
	return fmt.Errorf("validation unexpected error: %w", err)
}
