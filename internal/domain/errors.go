package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrCustomerNotFound = errors.New("cliente no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
)
