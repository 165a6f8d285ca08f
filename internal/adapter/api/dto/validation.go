package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/hugohenrick/food-backoffice/pkg/domain"
)

// RegisterValidations registra as tags de validação próprias no validador do gin
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("monthyear", validateMonthYear)
}

func validateMonthYear(fl validator.FieldLevel) bool {
	_, _, err := domain.ParseMonthYear(fl.Field().String())
	return err == nil
}
