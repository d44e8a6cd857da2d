package dto

import (
	"github.com/dashfinanceiro/dashfin_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs the domain-specific binding tags used
// by the request DTOs: "owner", "spendcategory" and "isodate".
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("owner", validateOwner); err != nil {
		return err
	}
	if err := v.RegisterValidation("spendcategory", validateCategory); err != nil {
		return err
	}
	return v.RegisterValidation("isodate", validateISODate)
}

func validateOwner(fl validator.FieldLevel) bool {
	_, ok := domain.ParseOwner(fl.Field().String())
	return ok
}

func validateCategory(fl validator.FieldLevel) bool {
	return domain.Category(fl.Field().String()).IsValid()
}

func validateISODate(fl validator.FieldLevel) bool {
	return domain.IsISODate(fl.Field().String())
}
