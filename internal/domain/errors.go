package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidMovement   = errors.New("movimiento inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrStoreUnavailable  = errors.New("almacén de datos no disponible")
)
