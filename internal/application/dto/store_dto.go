package dto

import "time"

// CreateStoreRequest alta de tienda (solo super admin). PIN de 4 a 10 dígitos.
type CreateStoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	PIN     string `json:"pin"`
}

// UpdateStoreRequest edición de tienda. PIN vacío conserva el actual.
type UpdateStoreRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	PIN     string `json:"pin"`
}

// StoreResponse tienda sin material de PIN.
type StoreResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
