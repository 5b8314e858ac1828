package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthenticated = errors.New("sesión inexistente o expirada")
	ErrUnauthorized    = errors.New("rol sin acceso a este recurso")
	ErrInvalidLogin    = errors.New("credenciales inválidas")
)

// ValidationError enumera los campos requeridos ausentes o con formato inválido.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "campos inválidos: " + strings.Join(e.Fields, ", ")
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError construye el error con los campos indicados.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// ErrorKind es la categoría cerrada a la que se reduce cualquier fallo en el borde HTTP.
type ErrorKind int

const (
	KindStorage ErrorKind = iota
	KindUnauthenticated
	KindUnauthorized
	KindValidation
	KindDuplicate
	KindNotFound
)

// String devuelve el código estable que viaja en las respuestas.
func (k ErrorKind) String() string {
	switch k {
	case KindUnauthenticated:
		return "UNAUTHENTICATED"
	case KindUnauthorized:
		return "FORBIDDEN"
	case KindValidation:
		return "VALIDATION"
	case KindDuplicate:
		return "DUPLICATE"
	case KindNotFound:
		return "NOT_FOUND"
	default:
		return "INTERNAL"
	}
}

// KindOf clasifica err. Todo lo que no es un error de dominio conocido es KindStorage.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidLogin):
		return KindUnauthenticated
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrDuplicate):
		return KindDuplicate
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindStorage
	}
}
