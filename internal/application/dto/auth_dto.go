package dto

import "time"

// StoreLoginRequest login de tienda por PIN.
type StoreLoginRequest struct {
	StoreID string `json:"store_id"`
	PIN     string `json:"pin"`
}

// AdminLoginRequest login del super administrador.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse estado de una sesión (cualquiera de los dos ejes).
type SessionResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	ExpiresAt time.Time `json:"expires_at"`
}

// StoreLoginResponse token + tienda + sesión tras autenticar con PIN.
type StoreLoginResponse struct {
	Token   string          `json:"token"`
	Store   StoreResponse   `json:"store"`
	Session SessionResponse `json:"session"`
}

// AdminLoginResponse token + sesión del super admin.
type AdminLoginResponse struct {
	Token    string          `json:"token"`
	Username string          `json:"username"`
	Role     string          `json:"role"`
	Session  SessionResponse `json:"session"`
}

// AuthStatusResponse estado combinado de ambos ejes de autenticación.
type AuthStatusResponse struct {
	IsSuperAdmin         bool           `json:"is_super_admin"`
	IsStoreAuthenticated bool           `json:"is_store_authenticated"`
	CurrentStore         *StoreResponse `json:"current_store,omitempty"`
	CurrentSuperAdmin    string         `json:"current_super_admin,omitempty"`
	HasAnyAuth           bool           `json:"has_any_auth"`
	StoreTimeRemaining   string         `json:"store_time_remaining,omitempty"`
	AdminTimeRemaining   string         `json:"admin_time_remaining,omitempty"`
}
