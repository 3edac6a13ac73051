package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
)

// ValidationError acumula mensajes por campo para respuestas 422.
// Cada operación de escritura valida todos los campos y reporta todos los
// fallos de una vez, no solo el primero.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError construye un acumulador vacío.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add agrega un mensaje de error para un campo.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// HasErrors indica si se acumuló al menos un fallo.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implementa error.
func (e *ValidationError) Error() string {
	return "validación fallida"
}

// AsValidation extrae un *ValidationError de la cadena de errores, si existe.
func AsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
