package validator

import (
	"workhive_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules wires domain-specific tags.
func registerCustomRules(v *validator.Validate) error {
	if err := v.RegisterValidation("application_status", validateApplicationStatus); err != nil {
		return err
	}
	return nil
}

func validateApplicationStatus(fl validator.FieldLevel) bool {
	return models.IsValidApplicationStatus(models.ApplicationStatus(fl.Field().String()))
}
