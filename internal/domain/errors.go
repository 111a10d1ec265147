package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrOutOfStock      = errors.New("producto sin stock")
	ErrInactiveProduct = errors.New("producto inactivo")

	// ErrMissingState indica que falta un estado con nombre conocido en el
	// registro de estados. Es un invariante de configuración del despliegue,
	// no un error de la petición: se reporta como 500.
	ErrMissingState = errors.New("estado requerido no existe en el registro")
)
