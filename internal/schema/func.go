package schema

import "hookflow/pkg/models"

// Func adapts a plain function into the models.Schema capability, for
// validators that also coerce or transform their input.
type Func func(input any) *models.ValidationResult

// Validate implements models.Schema.
func (f Func) Validate(input any) *models.ValidationResult {
	return f(input)
}
