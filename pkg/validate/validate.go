package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO según sus tags `validate`. Devuelve el error del validador tal cual;
// los handlers lo traducen a una respuesta 400 con código VALIDATION.
func Struct(s interface{}) error {
	return v.Struct(s)
}
