package dto

import (
	"time"

	"github.com/SscSPs/sheets_ledger_app/internal/utils/fiscal"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom tags used by the request DTOs:
// isodate (YYYY-MM-DD), yearmonth (YYYY-MM) and fylabel (e.g. 2024-25).
func RegisterValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("isodate", layoutValidator(time.DateOnly)); err != nil {
		return err
	}
	if err := v.RegisterValidation("yearmonth", layoutValidator("2006-01")); err != nil {
		return err
	}
	return v.RegisterValidation("fylabel", func(fl validator.FieldLevel) bool {
		return fiscal.Valid(fl.Field().String())
	})
}

func layoutValidator(layout string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := time.Parse(layout, fl.Field().String())
		return err == nil
	}
}
