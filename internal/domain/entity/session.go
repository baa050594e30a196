package entity

import "time"

// Ventanas de vida de cada eje de sesión.
const (
	StoreSessionTTL      = 24 * time.Hour
	SuperAdminSessionTTL = 2 * time.Hour
)

// RoleSuperAdmin es el único rol elevado del sistema.
const RoleSuperAdmin = "super_admin"

// StoreSession es la sesión de tienda. Expira de forma perezosa: se detecta en
// la siguiente consulta, nunca por un proceso de fondo.
type StoreSession struct {
	ID        string
	StoreID   string
	StoreName string
	Timestamp time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión venció respecto a now.
func (s *StoreSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SuperAdminSession es la sesión del super administrador. Eje independiente de
// la sesión de tienda: un principal puede tener ninguna, una o ambas.
type SuperAdminSession struct {
	ID        string
	Username  string
	Role      string
	Timestamp time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión venció respecto a now.
func (s *SuperAdminSession) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
