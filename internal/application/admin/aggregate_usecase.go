package admin

import (
	"context"

	"github.com/tu-usuario/optica-pro/internal/application/authz"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

// AggregationUseCase lecturas que cruzan todas las tiendas, exclusivas del
// super admin. Solo lectura: la capacidad de supervisión jamás se convierte en
// capacidad de mutación sobre datos de tienda.
type AggregationUseCase struct {
	repo repository.AdminRepository
}

// NewAggregationUseCase construye el caso de uso.
func NewAggregationUseCase(repo repository.AdminRepository) *AggregationUseCase {
	return &AggregationUseCase{repo: repo}
}

// requireAll corta si el principal no tiene lectura con alcance ALL.
func requireAll(p authz.Principal) error {
	d := authz.Authorize(p, authz.OpRead, "")
	if !d.Allowed || !d.Scope.All {
		return domain.ErrAccessDenied
	}
	return nil
}

// AllCustomers lista los clientes de todas las tiendas con atribución de tienda.
func (uc *AggregationUseCase) AllCustomers(ctx context.Context, p authz.Principal) ([]dto.AdminCustomerResponse, error) {
	if err := requireAll(p); err != nil {
		return nil, err
	}
	rows, err := uc.repo.AllCustomers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminCustomerResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AdminCustomerResponse{
			CustomerResponse: dto.CustomerResponse{
				ID:          r.ID,
				StoreID:     r.StoreID,
				Name:        r.Name,
				Phone:       r.Phone,
				Email:       r.Email,
				Address:     r.Address,
				DateOfBirth: r.DateOfBirth,
				Remarks:     r.Remarks,
				CreatedAt:   r.CreatedAt,
				UpdatedAt:   r.UpdatedAt,
			},
			StoreName:    r.StoreName,
			StoreAddress: r.StoreAddress,
		})
	}
	return out, nil
}

// AllCheckups lista los exámenes de todas las tiendas.
func (uc *AggregationUseCase) AllCheckups(ctx context.Context, p authz.Principal) ([]dto.AdminCheckupResponse, error) {
	if err := requireAll(p); err != nil {
		return nil, err
	}
	rows, err := uc.repo.AllCheckups(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminCheckupResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AdminCheckupResponse{
			CheckupResponse: dto.CheckupResponse{
				ID:         r.ID,
				StoreID:    r.StoreID,
				CustomerID: r.CustomerID,
				Date:       r.Date,

				RightEyeSphericalDV:   r.RightEyeSphericalDV,
				RightEyeCylindricalDV: r.RightEyeCylindricalDV,
				RightEyeAxisDV:        r.RightEyeAxisDV,
				RightEyeSphericalNV:   r.RightEyeSphericalNV,
				RightEyeCylindricalNV: r.RightEyeCylindricalNV,
				RightEyeAxisNV:        r.RightEyeAxisNV,
				LeftEyeSphericalDV:    r.LeftEyeSphericalDV,
				LeftEyeCylindricalDV:  r.LeftEyeCylindricalDV,
				LeftEyeAxisDV:         r.LeftEyeAxisDV,
				LeftEyeSphericalNV:    r.LeftEyeSphericalNV,
				LeftEyeCylindricalNV:  r.LeftEyeCylindricalNV,
				LeftEyeAxisNV:         r.LeftEyeAxisNV,

				BifocalDetails: r.BifocalDetails,
				IPDBridge:      r.IPDBridge,
				TestedBy:       r.TestedBy,
				CreatedAt:      r.CreatedAt,
			},
			CustomerName:  r.CustomerName,
			CustomerPhone: r.CustomerPhone,
			StoreName:     r.StoreName,
		})
	}
	return out, nil
}

// AllOrders lista los pedidos de todas las tiendas con atribución de tienda.
func (uc *AggregationUseCase) AllOrders(ctx context.Context, p authz.Principal) ([]dto.AdminOrderResponse, error) {
	if err := requireAll(p); err != nil {
		return nil, err
	}
	rows, err := uc.repo.AllOrders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminOrderResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AdminOrderResponse{
			OrderResponse: dto.OrderResponse{
				ID:                   r.ID,
				StoreID:              r.StoreID,
				CustomerID:           r.CustomerID,
				CheckupID:            r.CheckupID,
				OrderDate:            r.OrderDate,
				ExpectedDeliveryDate: r.ExpectedDeliveryDate,
				DeliveredDate:        r.DeliveredDate,
				Frame:                r.Frame,
				Lenses:               r.Lenses,
				TotalAmount:          r.TotalAmount,
				AdvanceAmount:        r.AdvanceAmount,
				BalanceAmount:        r.BalanceAmount,
				Status:               r.Status,
				Notes:                r.Notes,
				CreatedAt:            r.CreatedAt,
				CustomerName:         r.CustomerName,
				CustomerPhone:        r.CustomerPhone,
				HasCheckup:           r.HasCheckup,
			},
			StoreName: r.StoreName,
		})
	}
	return out, nil
}

// SalesReportByStore reporte por tienda y día en el rango dado.
// storeIDs == nil: todas las tiendas. Slice vacío no nulo: "ninguna
// seleccionada", cero filas SIN tocar almacenamiento — los dos casos no se
// confunden jamás.
func (uc *AggregationUseCase) SalesReportByStore(ctx context.Context, p authz.Principal, startDate, endDate string, storeIDs []string) ([]dto.StoreSalesRowResponse, error) {
	if err := requireAll(p); err != nil {
		return nil, err
	}
	if storeIDs != nil && len(storeIDs) == 0 {
		return []dto.StoreSalesRowResponse{}, nil
	}
	rows, err := uc.repo.SalesReportByStore(ctx, startDate, endDate, storeIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreSalesRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StoreSalesRowResponse{
			StoreID:      r.StoreID,
			StoreName:    r.StoreName,
			Date:         r.Date,
			TotalOrders:  r.TotalOrders,
			TotalSales:   r.TotalSales,
			TotalAdvance: r.TotalAdvance,
			TotalBalance: r.TotalBalance,
		})
	}
	return out, nil
}

// ConsolidatedSalesReport reporte por día con todas las tiendas combinadas.
// Misma semántica de storeIDs que SalesReportByStore.
func (uc *AggregationUseCase) ConsolidatedSalesReport(ctx context.Context, p authz.Principal, startDate, endDate string, storeIDs []string) ([]dto.SalesReportRowResponse, error) {
	if err := requireAll(p); err != nil {
		return nil, err
	}
	if storeIDs != nil && len(storeIDs) == 0 {
		return []dto.SalesReportRowResponse{}, nil
	}
	rows, err := uc.repo.ConsolidatedSalesReport(ctx, startDate, endDate, storeIDs)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesReportRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesReportRowResponse{
			Date:         r.Date,
			TotalOrders:  r.TotalOrders,
			TotalSales:   r.TotalSales,
			TotalAdvance: r.TotalAdvance,
			TotalBalance: r.TotalBalance,
		})
	}
	return out, nil
}

// CustomersByStore conteo de clientes por tienda.
func (uc *AggregationUseCase) CustomersByStore(ctx context.Context, p authz.Principal) ([]dto.StoreCountResponse, error) {
	if err := requireAll(p); err != nil {
		return nil, err
	}
	rows, err := uc.repo.CustomersByStore(ctx)
	if err != nil {
		return nil, err
	}
	return toStoreCounts(rows), nil
}

// CheckupsByStore conteo de exámenes por tienda.
func (uc *AggregationUseCase) CheckupsByStore(ctx context.Context, p authz.Principal) ([]dto.StoreCountResponse, error) {
	if err := requireAll(p); err != nil {
		return nil, err
	}
	rows, err := uc.repo.CheckupsByStore(ctx)
	if err != nil {
		return nil, err
	}
	return toStoreCounts(rows), nil
}

// OrdersByStore acumulados de pedidos por tienda.
func (uc *AggregationUseCase) OrdersByStore(ctx context.Context, p authz.Principal) ([]dto.StoreOrderTotalsResponse, error) {
	if err := requireAll(p); err != nil {
		return nil, err
	}
	rows, err := uc.repo.OrdersByStore(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StoreOrderTotalsResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StoreOrderTotalsResponse{
			StoreID:      r.StoreID,
			StoreName:    r.StoreName,
			OrderCount:   r.OrderCount,
			TotalSales:   r.TotalSales,
			TotalAdvance: r.TotalAdvance,
			TotalBalance: r.TotalBalance,
		})
	}
	return out, nil
}

func toStoreCounts(rows []repository.StoreCount) []dto.StoreCountResponse {
	out := make([]dto.StoreCountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StoreCountResponse{
			StoreID:   r.StoreID,
			StoreName: r.StoreName,
			Count:     r.Count,
		})
	}
	return out
}
