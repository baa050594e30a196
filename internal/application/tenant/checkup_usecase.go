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

// CheckupUseCase exámenes de la vista de una tienda. La integridad
// cliente↔examen dentro de la misma tienda se garantiza aquí: no hay foreign
// key que cruce la partición.
type CheckupUseCase struct {
	repo      repository.CheckupRepository
	customers repository.CustomerRepository
	orders    repository.OrderRepository
}

// NewCheckupUseCase construye el caso de uso.
func NewCheckupUseCase(repo repository.CheckupRepository, customers repository.CustomerRepository, orders repository.OrderRepository) *CheckupUseCase {
	return &CheckupUseCase{repo: repo, customers: customers, orders: orders}
}

// Create crea un examen. El cliente debe existir en la MISMA tienda; un
// customer_id de otra tienda se rechaza como inexistente.
func (uc *CheckupUseCase) Create(ctx context.Context, p authz.Principal, storeID string, in dto.CheckupRequest) (*dto.CheckupResponse, error) {
	if d := authz.Authorize(p, authz.OpWrite, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	if in.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id requerido", domain.ErrInvalidInput)
	}
	customer, err := uc.customers.GetByID(ctx, in.CustomerID, storeID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	date := in.Date
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}
	checkup := &entity.Checkup{
		ID:         uuid.New().String(),
		StoreID:    storeID,
		CustomerID: in.CustomerID,
		Date:       date,

		RightEyeSphericalDV:   in.RightEyeSphericalDV,
		RightEyeCylindricalDV: in.RightEyeCylindricalDV,
		RightEyeAxisDV:        in.RightEyeAxisDV,
		RightEyeSphericalNV:   in.RightEyeSphericalNV,
		RightEyeCylindricalNV: in.RightEyeCylindricalNV,
		RightEyeAxisNV:        in.RightEyeAxisNV,
		LeftEyeSphericalDV:    in.LeftEyeSphericalDV,
		LeftEyeCylindricalDV:  in.LeftEyeCylindricalDV,
		LeftEyeAxisDV:         in.LeftEyeAxisDV,
		LeftEyeSphericalNV:    in.LeftEyeSphericalNV,
		LeftEyeCylindricalNV:  in.LeftEyeCylindricalNV,
		LeftEyeAxisNV:         in.LeftEyeAxisNV,

		BifocalDetails: in.BifocalDetails,
		IPDBridge:      in.IPDBridge,
		TestedBy:       in.TestedBy,
		CreatedAt:      time.Now(),
	}
	if err := uc.repo.Create(ctx, checkup); err != nil {
		return nil, err
	}
	resp := toCheckupResponse(checkup)
	return &resp, nil
}

// GetByID obtiene un examen dentro de la tienda.
func (uc *CheckupUseCase) GetByID(ctx context.Context, p authz.Principal, id, storeID string) (*dto.CheckupResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	ch, err := uc.repo.GetByID(ctx, id, storeID)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, domain.ErrNotFound
	}
	resp := toCheckupResponse(ch)
	return &resp, nil
}

// GetByCustomerID lista los exámenes de un cliente, más reciente primero.
func (uc *CheckupUseCase) GetByCustomerID(ctx context.Context, p authz.Principal, customerID, storeID string) ([]dto.CheckupResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	list, err := uc.repo.GetByCustomerID(ctx, customerID, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CheckupResponse, 0, len(list))
	for _, ch := range list {
		out = append(out, toCheckupResponse(ch))
	}
	return out, nil
}

// Update edita las medidas de un examen. El customer_id y el store_id del
// examen son inmutables tras la creación.
func (uc *CheckupUseCase) Update(ctx context.Context, p authz.Principal, id, storeID string, in dto.CheckupRequest) (*dto.CheckupResponse, error) {
	if d := authz.Authorize(p, authz.OpWrite, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	checkup, err := uc.repo.GetByID(ctx, id, storeID)
	if err != nil {
		return nil, err
	}
	if checkup == nil {
		return nil, domain.ErrNotFound
	}
	if in.Date != "" {
		checkup.Date = in.Date
	}
	checkup.RightEyeSphericalDV = in.RightEyeSphericalDV
	checkup.RightEyeCylindricalDV = in.RightEyeCylindricalDV
	checkup.RightEyeAxisDV = in.RightEyeAxisDV
	checkup.RightEyeSphericalNV = in.RightEyeSphericalNV
	checkup.RightEyeCylindricalNV = in.RightEyeCylindricalNV
	checkup.RightEyeAxisNV = in.RightEyeAxisNV
	checkup.LeftEyeSphericalDV = in.LeftEyeSphericalDV
	checkup.LeftEyeCylindricalDV = in.LeftEyeCylindricalDV
	checkup.LeftEyeAxisDV = in.LeftEyeAxisDV
	checkup.LeftEyeSphericalNV = in.LeftEyeSphericalNV
	checkup.LeftEyeCylindricalNV = in.LeftEyeCylindricalNV
	checkup.LeftEyeAxisNV = in.LeftEyeAxisNV
	checkup.BifocalDetails = in.BifocalDetails
	checkup.IPDBridge = in.IPDBridge
	checkup.TestedBy = in.TestedBy
	if err := uc.repo.Update(ctx, checkup); err != nil {
		return nil, err
	}
	resp := toCheckupResponse(checkup)
	return &resp, nil
}

// Delete elimina un examen SOLO si ningún pedido lo referencia. Con pedidos
// colgando devuelve ReferentialConflictError con el conteo: se rechaza, nunca
// se hace cascada, para no corromper el historial de pedidos.
func (uc *CheckupUseCase) Delete(ctx context.Context, p authz.Principal, id, storeID string) error {
	if d := authz.Authorize(p, authz.OpWrite, storeID); !d.Allowed {
		return domain.ErrAccessDenied
	}
	checkup, err := uc.repo.GetByID(ctx, id, storeID)
	if err != nil {
		return err
	}
	if checkup == nil {
		return domain.ErrNotFound
	}
	count, err := uc.orders.CountByCheckupID(ctx, id, storeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.ReferentialConflictError{Orders: count}
	}
	return uc.repo.Delete(ctx, id, storeID)
}

func toCheckupResponse(ch *entity.Checkup) dto.CheckupResponse {
	return dto.CheckupResponse{
		ID:         ch.ID,
		StoreID:    ch.StoreID,
		CustomerID: ch.CustomerID,
		Date:       ch.Date,

		RightEyeSphericalDV:   ch.RightEyeSphericalDV,
		RightEyeCylindricalDV: ch.RightEyeCylindricalDV,
		RightEyeAxisDV:        ch.RightEyeAxisDV,
		RightEyeSphericalNV:   ch.RightEyeSphericalNV,
		RightEyeCylindricalNV: ch.RightEyeCylindricalNV,
		RightEyeAxisNV:        ch.RightEyeAxisNV,
		LeftEyeSphericalDV:    ch.LeftEyeSphericalDV,
		LeftEyeCylindricalDV:  ch.LeftEyeCylindricalDV,
		LeftEyeAxisDV:         ch.LeftEyeAxisDV,
		LeftEyeSphericalNV:    ch.LeftEyeSphericalNV,
		LeftEyeCylindricalNV:  ch.LeftEyeCylindricalNV,
		LeftEyeAxisNV:         ch.LeftEyeAxisNV,

		BifocalDetails: ch.BifocalDetails,
		IPDBridge:      ch.IPDBridge,
		TestedBy:       ch.TestedBy,
		CreatedAt:      ch.CreatedAt,
	}
}
