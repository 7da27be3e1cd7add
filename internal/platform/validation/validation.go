// Package validation traduce reglas de validator/v10 a errores por campo de formulario.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Codes usados al rechazar un campo fuera de las reglas declarativas.
const (
	CodeRequired     = "required"
	CodeNotFound     = "notFound"
	CodeDuplicate    = "duplicate"
	CodeTypeMismatch = "typeMismatch"
)

// FieldError es un valor rechazado en un campo del formulario.
type FieldError struct {
	Field   string
	Code    string
	Message string
}

// Errors acumula errores de campo. Vacío significa formulario válido.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Reject agrega un error al campo.
func (e *Errors) Reject(field, code, message string) {
	*e = append(*e, FieldError{Field: field, Code: code, Message: message})
}

func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Message devuelve el primer mensaje del campo, o "".
func (e Errors) Message(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

// Err devuelve nil si no hay errores (evita el nil tipado).
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// As extrae Errors de una cadena de errores.
func As(err error) (Errors, bool) {
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs, true
	}
	return nil, false
}

var (
	once     sync.Once
	instance *validator.Validate
)

func validate() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Los nombres de campo son los del formulario, no los del struct.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
		instance = v
	})
	return instance
}

// Struct valida los tags `validate` de v y devuelve los errores por campo.
func Struct(v any) Errors {
	err := validate().Struct(v)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return Errors{{Field: "", Code: "invalid", Message: err.Error()}}
	}

	out := make(Errors, 0, len(ves))
	for _, fe := range ves {
		out.Reject(fe.Field(), fe.Tag(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be blank"
	case "number", "numeric":
		return "must contain only digits"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}
