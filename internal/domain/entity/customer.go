package entity

import "time"

// Customer representa un cliente de una tienda. (StoreID, Phone) es único:
// el teléfono puede repetirse entre tiendas pero no dentro de una.
// Un cliente pertenece a su StoreID para siempre; nunca se reasigna.
type Customer struct {
	ID          string
	StoreID     string
	Name        string
	Phone       string
	Email       string
	Address     string
	DateOfBirth string // fecha en texto, como la captura el formulario
	Remarks     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
