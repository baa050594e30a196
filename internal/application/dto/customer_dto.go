package dto

import "time"

// CreateCustomerRequest alta de cliente en la tienda del principal.
type CreateCustomerRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth"`
	Remarks     string `json:"remarks"`
}

// UpdateCustomerRequest edición de cliente; mismos campos que el alta.
type UpdateCustomerRequest = CreateCustomerRequest

// CustomerResponse cliente de una tienda.
type CustomerResponse struct {
	ID          string    `json:"id"`
	StoreID     string    `json:"store_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Remarks     string    `json:"remarks,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
