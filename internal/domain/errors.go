package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrDuplicate      = errors.New("recurso duplicado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("credenciales inválidas")
	ErrAccessDenied   = errors.New("acceso denegado")
	ErrSessionExpired = errors.New("sesión expirada")
	ErrConflict       = errors.New("conflicto con el estado actual")
)

// DuplicateCustomerError indica que ya existe un cliente con ese teléfono en la
// misma tienda. Lleva el cliente en conflicto para que la UI pueda nombrarlo.
type DuplicateCustomerError struct {
	ExistingID   string
	ExistingName string
	Phone        string
}

func (e *DuplicateCustomerError) Error() string {
	return fmt.Sprintf("ya existe el cliente %q con teléfono %s en esta tienda", e.ExistingName, e.Phone)
}

// Is permite errors.Is(err, ErrDuplicate).
func (e *DuplicateCustomerError) Is(target error) bool {
	return target == ErrDuplicate
}

// ReferentialConflictError indica un borrado bloqueado por filas dependientes.
// Lleva el número de pedidos que referencian el registro.
type ReferentialConflictError struct {
	Orders int
}

func (e *ReferentialConflictError) Error() string {
	return fmt.Sprintf("no se puede eliminar: %d pedido(s) referencian este registro", e.Orders)
}

// Is permite errors.Is(err, ErrConflict).
func (e *ReferentialConflictError) Is(target error) bool {
	return target == ErrConflict
}
