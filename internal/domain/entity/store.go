package entity

import "time"

// Store representa una óptica (tenant). PINHash es bcrypt del PIN de 4–10 dígitos;
// el PIN en claro nunca se persiste ni se devuelve en listados.
type Store struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	PINHash   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
