package repository

import (
	"context"

	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Toda consulta lleva el filtro de tienda: ese filtro ES la frontera de
// seguridad, no hay row-level security en el almacén.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetAll(ctx context.Context, storeID string) ([]*entity.Customer, error)
	GetByID(ctx context.Context, id, storeID string) (*entity.Customer, error)
	FindByPhone(ctx context.Context, phone, storeID string) (*entity.Customer, error)
	FindByName(ctx context.Context, name, storeID string) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
