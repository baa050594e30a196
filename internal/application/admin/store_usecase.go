package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/optica-pro/internal/application/auth"
	"github.com/tu-usuario/optica-pro/internal/application/authz"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// StoreUseCase CRUD de tiendas. Es la única entidad con la regla invertida:
// solo el super admin escribe; una sesión de tienda apenas lee su propia fila.
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Create crea una tienda con su PIN (bcrypt en reposo).
func (uc *StoreUseCase) Create(ctx context.Context, p authz.Principal, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if d := authz.AuthorizeStoreAdmin(p); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	if err := auth.ValidatePIN(in.PIN); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.PIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		PINHash:   string(hash),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, store); err != nil {
		return nil, err
	}
	resp := auth.ToStoreResponse(store)
	return &resp, nil
}

// List lista todas las tiendas sin material de PIN. Pública: alimenta el
// selector del login de tienda.
func (uc *StoreUseCase) List(ctx context.Context) ([]dto.StoreResponse, error) {
	list, err := uc.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		out = append(out, auth.ToStoreResponse(s))
	}
	return out, nil
}

// GetByID obtiene una tienda. La sesión de tienda solo puede leer la propia;
// el super admin, cualquiera.
func (uc *StoreUseCase) GetByID(ctx context.Context, p authz.Principal, id string) (*dto.StoreResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, id); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	resp := auth.ToStoreResponse(store)
	return &resp, nil
}

// Update edita una tienda. PIN vacío conserva el hash actual; PIN nuevo se
// valida y re-hashea.
func (uc *StoreUseCase) Update(ctx context.Context, p authz.Principal, id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	if d := authz.AuthorizeStoreAdmin(p); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name requerido", domain.ErrInvalidInput)
	}
	store, err := uc.repo.GetByIDWithPIN(ctx, id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if in.PIN != "" {
		if err := auth.ValidatePIN(in.PIN); err != nil {
			return nil, err
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.PIN), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		store.PINHash = string(hash)
	}
	store.Name = in.Name
	store.Address = in.Address
	store.Phone = in.Phone
	store.Email = in.Email
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, store); err != nil {
		return nil, err
	}
	resp := auth.ToStoreResponse(store)
	return &resp, nil
}

// Delete elimina una tienda.
func (uc *StoreUseCase) Delete(ctx context.Context, p authz.Principal, id string) error {
	if d := authz.AuthorizeStoreAdmin(p); !d.Allowed {
		return domain.ErrAccessDenied
	}
	store, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}
