package repository

import (
	"context"

	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para Store (tenant).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type StoreRepository interface {
	Create(ctx context.Context, store *entity.Store) error
	GetAll(ctx context.Context) ([]*entity.Store, error)
	GetByID(ctx context.Context, id string) (*entity.Store, error)
	// GetByIDWithPIN incluye el hash del PIN; solo lo usa la autenticación.
	GetByIDWithPIN(ctx context.Context, id string) (*entity.Store, error)
	Update(ctx context.Context, store *entity.Store) error
	Delete(ctx context.Context, id string) error
}
