package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrDomain marca parámetros fuera del dominio del modelo de costos
	// (demanda no positiva, costo de mantener nulo, tasas fuera de rango).
	ErrDomain = errors.New("parámetros fuera del dominio del modelo")
)

// DomainError detalla qué parámetro quedó fuera del dominio del modelo.
// errors.Is(err, ErrDomain) es verdadero para cualquier *DomainError.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

// NewDomainError construye el error tipado.
func NewDomainError(field string, value float64, reason string) *DomainError {
	return &DomainError{Field: field, Value: value, Reason: reason}
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s=%v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap permite errors.Is(err, ErrDomain).
func (e *DomainError) Unwrap() error { return ErrDomain }
