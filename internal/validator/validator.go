// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"financas/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("record_kind", validateRecordKind)
		_ = v.RegisterValidation("record_category", validateRecordCategory)
	}
}

func validateRecordKind(fl validator.FieldLevel) bool {
	return models.RecordKind(fl.Field().String()).Valid()
}

// validateRecordCategory accepts any category from either kind's set; the
// form controller enforces the kind-specific enumeration.
func validateRecordCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return models.ValidCategory(models.RecordKindIncome, value) ||
		models.ValidCategory(models.RecordKindExpense, value)
}
