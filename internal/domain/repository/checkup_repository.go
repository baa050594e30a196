package repository

import (
	"context"

	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// CheckupRepository define el puerto de persistencia para Checkup.
type CheckupRepository interface {
	Create(ctx context.Context, checkup *entity.Checkup) error
	GetAll(ctx context.Context, storeID string) ([]*entity.Checkup, error)
	GetByID(ctx context.Context, id, storeID string) (*entity.Checkup, error)
	GetByCustomerID(ctx context.Context, customerID, storeID string) ([]*entity.Checkup, error)
	Update(ctx context.Context, checkup *entity.Checkup) error
	Delete(ctx context.Context, id, storeID string) error
}
