package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los adaptadores de
// persistencia y los casos de uso envuelven estos sentinelas con %w para
// conservar el detalle (campo en conflicto, id faltante, etc.).
var (
	// ErrInvalidInput datos de entrada incompletos o fuera de regla (validación).
	ErrInvalidInput = errors.New("entrada inválida")
	// ErrDuplicate violación de unicidad; también cuando el constraint UNIQUE
	// dispara en el commit aunque el pre-chequeo haya pasado.
	ErrDuplicate = errors.New("recurso duplicado")
	// ErrNotFound recurso inexistente.
	ErrNotFound = errors.New("recurso no encontrado")
	// ErrProtected eliminación bloqueada por relaciones protegidas.
	ErrProtected = errors.New("eliminación bloqueada por relaciones protegidas")
	// ErrInvalidArgument parámetro de consulta no reconocido (ej. campo de orden).
	ErrInvalidArgument = errors.New("argumento inválido")
	// ErrNegativeStock el ajuste dejaría la cantidad bajo cero.
	ErrNegativeStock = errors.New("el stock no puede quedar negativo")
	// ErrUnauthorized credenciales inválidas o token ausente.
	ErrUnauthorized = errors.New("no autorizado")
	// ErrForbidden el rol del usuario no permite la operación.
	ErrForbidden = errors.New("acceso denegado")
)
