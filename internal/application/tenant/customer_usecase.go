package tenant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/optica-pro/internal/application/authz"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

// CustomerUseCase CRUD de clientes de una tienda. Cada operación consulta la
// puerta de acceso antes de tocar almacenamiento; Allowed=false es un corte
// duro. No hay borrado de clientes: el historial se conserva por regla de
// negocio.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente en la tienda indicada. Si ya existe otro cliente con
// ese teléfono en la MISMA tienda devuelve DuplicateCustomerError nombrando al
// existente; el mismo teléfono en otra tienda es válido.
func (uc *CustomerUseCase) Create(ctx context.Context, p authz.Principal, storeID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if d := authz.Authorize(p, authz.OpWrite, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	if in.Name == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: name y phone son requeridos", domain.ErrInvalidInput)
	}
	existing, err := uc.repo.FindByPhone(ctx, in.Phone, storeID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.DuplicateCustomerError{
			ExistingID:   existing.ID,
			ExistingName: existing.Name,
			Phone:        in.Phone,
		}
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Address:     in.Address,
		DateOfBirth: in.DateOfBirth,
		Remarks:     in.Remarks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// GetAll lista los clientes de la tienda.
func (uc *CustomerUseCase) GetAll(ctx context.Context, p authz.Principal, storeID string) ([]dto.CustomerResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	list, err := uc.repo.GetAll(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// GetByID obtiene un cliente por id dentro de la tienda. Un id de otra tienda
// se comporta como inexistente, nunca filtra la fila ajena.
func (uc *CustomerUseCase) GetByID(ctx context.Context, p authz.Principal, id, storeID string) (*dto.CustomerResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	c, err := uc.repo.GetByID(ctx, id, storeID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// FindByPhone busca por teléfono exacto dentro de la tienda.
func (uc *CustomerUseCase) FindByPhone(ctx context.Context, p authz.Principal, phone, storeID string) (*dto.CustomerResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	c, err := uc.repo.FindByPhone(ctx, phone, storeID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// SearchByName busca por nombre (subcadena) dentro de la tienda.
func (uc *CustomerUseCase) SearchByName(ctx context.Context, p authz.Principal, name, storeID string) ([]dto.CustomerResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	list, err := uc.repo.FindByName(ctx, name, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update edita un cliente. Mantiene la unicidad (store_id, phone): si el nuevo
// teléfono pertenece a OTRO cliente de la tienda, DuplicateCustomerError.
func (uc *CustomerUseCase) Update(ctx context.Context, p authz.Principal, id, storeID string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if d := authz.Authorize(p, authz.OpWrite, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	if in.Name == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: name y phone son requeridos", domain.ErrInvalidInput)
	}
	customer, err := uc.repo.GetByID(ctx, id, storeID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.repo.FindByPhone(ctx, in.Phone, storeID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, &domain.DuplicateCustomerError{
			ExistingID:   existing.ID,
			ExistingName: existing.Name,
			Phone:        in.Phone,
		}
	}
	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Email = in.Email
	customer.Address = in.Address
	customer.DateOfBirth = in.DateOfBirth
	customer.Remarks = in.Remarks
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:          c.ID,
		StoreID:     c.StoreID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		DateOfBirth: c.DateOfBirth,
		Remarks:     c.Remarks,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
