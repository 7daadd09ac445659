// Package validation holds the shared per-field validation error type
// surfaced by the entity schemas.
package validation

import "fmt"

const (
	RequiredMessage = "este campo es requerido"
	MinOneMessage   = "Unidades mínima: 1"
	EmailMessage    = "debe ser un correo váldio"
)

// FieldError reports the first unmet rule for a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is a validation failure carrying one message per field.
type Errors struct {
	Fields []FieldError `json:"errors"`
}

func (e *Errors) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("%s: %s", e.Fields[0].Field, e.Fields[0].Message)
	}
	return "validation error"
}

// Add records a failure for field unless one is already present. Only
// the first unmet rule per field is reported.
func (e *Errors) Add(field, message string) {
	for _, f := range e.Fields {
		if f.Field == field {
			return
		}
	}
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// OrNil returns the collected errors, or nil when every rule passed.
func (e *Errors) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
