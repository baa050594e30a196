package tenant

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/tu-usuario/optica-pro/internal/application/authz"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

// OrderUseCase pedidos de gafas de una tienda. El alta asigna el número corto
// denso por tienda ("001", "002", …) desde un contador durable, dentro de la
// misma transacción que el INSERT.
type OrderUseCase struct {
	repo      repository.OrderRepository
	customers repository.CustomerRepository
	checkups  repository.CheckupRepository
	tx        TxRunner
	events    OrderEventPublisher
	log       zerolog.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	customers repository.CustomerRepository,
	checkups repository.CheckupRepository,
	tx TxRunner,
	events OrderEventPublisher,
	log zerolog.Logger,
) *OrderUseCase {
	return &OrderUseCase{repo: repo, customers: customers, checkups: checkups, tx: tx, events: events, log: log}
}

// Create crea un pedido. Cliente y examen (si viene) deben pertenecer a la
// MISMA tienda. balance_amount se guarda tal cual lo calculó el llamador.
func (uc *OrderUseCase) Create(ctx context.Context, p authz.Principal, storeID string, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if d := authz.Authorize(p, authz.OpWrite, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	if in.CustomerID == "" {
		return nil, fmt.Errorf("%w: customer_id requerido", domain.ErrInvalidInput)
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: estado de pedido desconocido %q", domain.ErrInvalidInput, status)
	}
	customer, err := uc.customers.GetByID(ctx, in.CustomerID, storeID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.CheckupID != "" {
		checkup, err := uc.checkups.GetByID(ctx, in.CheckupID, storeID)
		if err != nil {
			return nil, err
		}
		if checkup == nil {
			return nil, domain.ErrNotFound
		}
	}
	orderDate := in.OrderDate
	if orderDate == "" {
		orderDate = time.Now().UTC().Format("2006-01-02")
	}
	order := &entity.Order{
		StoreID:              storeID,
		CustomerID:           in.CustomerID,
		CheckupID:            in.CheckupID,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		DeliveredDate:        in.DeliveredDate,
		Frame:                in.Frame,
		Lenses:               in.Lenses,
		TotalAmount:          in.TotalAmount,
		AdvanceAmount:        in.AdvanceAmount,
		BalanceAmount:        in.BalanceAmount,
		Status:               status,
		Notes:                in.Notes,
		CreatedAt:            time.Now(),
	}

	// Número y fila confirman juntos: sin rescate a "001" ni hueco en la serie.
	err = uc.tx.Run(ctx, func(orders repository.OrderRepository, seq repository.OrderSequenceRepository) error {
		n, err := seq.Next(ctx, storeID)
		if err != nil {
			return err
		}
		order.ID = fmt.Sprintf("%03d", n)
		return orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	if uc.events != nil {
		if err := uc.events.PublishOrderCreated(ctx, order); err != nil {
			uc.log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo publicar order.created")
		}
	}

	order.CustomerName = customer.Name
	order.CustomerPhone = customer.Phone
	order.HasCheckup = order.CheckupID != ""
	resp := toOrderResponse(order)
	return &resp, nil
}

// GetAll lista los pedidos de la tienda con sus anotaciones de cliente.
func (uc *OrderUseCase) GetAll(ctx context.Context, p authz.Principal, storeID string) ([]dto.OrderResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	list, err := uc.repo.GetAll(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// GetByID obtiene un pedido dentro de la tienda.
func (uc *OrderUseCase) GetByID(ctx context.Context, p authz.Principal, id, storeID string) (*dto.OrderResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	o, err := uc.repo.GetByID(ctx, id, storeID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	resp := toOrderResponse(o)
	return &resp, nil
}

// GetByCustomerID lista los pedidos de un cliente, más reciente primero.
func (uc *OrderUseCase) GetByCustomerID(ctx context.Context, p authz.Principal, customerID, storeID string) ([]dto.OrderResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	list, err := uc.repo.GetByCustomerID(ctx, customerID, storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// Update edita un pedido completo. El número corto no cambia nunca.
func (uc *OrderUseCase) Update(ctx context.Context, p authz.Principal, id, storeID string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	if d := authz.Authorize(p, authz.OpWrite, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	order, err := uc.repo.GetByID(ctx, id, storeID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: estado de pedido desconocido %q", domain.ErrInvalidInput, status)
	}
	if in.CustomerID != "" && in.CustomerID != order.CustomerID {
		customer, err := uc.customers.GetByID(ctx, in.CustomerID, storeID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		order.CustomerID = in.CustomerID
	}
	if in.CheckupID != "" && in.CheckupID != order.CheckupID {
		checkup, err := uc.checkups.GetByID(ctx, in.CheckupID, storeID)
		if err != nil {
			return nil, err
		}
		if checkup == nil {
			return nil, domain.ErrNotFound
		}
	}
	order.CheckupID = in.CheckupID
	if in.OrderDate != "" {
		order.OrderDate = in.OrderDate
	}
	order.ExpectedDeliveryDate = in.ExpectedDeliveryDate
	order.DeliveredDate = in.DeliveredDate
	order.Frame = in.Frame
	order.Lenses = in.Lenses
	order.TotalAmount = in.TotalAmount
	order.AdvanceAmount = in.AdvanceAmount
	order.BalanceAmount = in.BalanceAmount
	order.Status = status
	order.Notes = in.Notes
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	if uc.events != nil {
		if err := uc.events.PublishOrderUpdated(ctx, order); err != nil {
			uc.log.Warn().Err(err).Str("order_id", order.ID).Msg("no se pudo publicar order.updated")
		}
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// UpdateStatus cambia solo el estado del pedido.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, p authz.Principal, id, storeID, status string) error {
	if d := authz.Authorize(p, authz.OpWrite, storeID); !d.Allowed {
		return domain.ErrAccessDenied
	}
	if !entity.ValidOrderStatus(status) {
		return fmt.Errorf("%w: estado de pedido desconocido %q", domain.ErrInvalidInput, status)
	}
	order, err := uc.repo.GetByID(ctx, id, storeID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.UpdateStatus(ctx, id, status, storeID); err != nil {
		return err
	}
	if uc.events != nil {
		if err := uc.events.PublishOrderStatusChanged(ctx, storeID, id, status); err != nil {
			uc.log.Warn().Err(err).Str("order_id", id).Msg("no se pudo publicar order.status_changed")
		}
	}
	return nil
}

// Delete elimina un pedido de la tienda.
func (uc *OrderUseCase) Delete(ctx context.Context, p authz.Principal, id, storeID string) error {
	if d := authz.Authorize(p, authz.OpWrite, storeID); !d.Allowed {
		return domain.ErrAccessDenied
	}
	order, err := uc.repo.GetByID(ctx, id, storeID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id, storeID)
}

// SalesReport totales de ventas por día de la tienda en el rango dado.
func (uc *OrderUseCase) SalesReport(ctx context.Context, p authz.Principal, storeID, startDate, endDate string) ([]dto.SalesReportRowResponse, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	rows, err := uc.repo.SalesReport(ctx, storeID, startDate, endDate)
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

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:                   o.ID,
		StoreID:              o.StoreID,
		CustomerID:           o.CustomerID,
		CheckupID:            o.CheckupID,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		DeliveredDate:        o.DeliveredDate,
		Frame:                o.Frame,
		Lenses:               o.Lenses,
		TotalAmount:          o.TotalAmount,
		AdvanceAmount:        o.AdvanceAmount,
		BalanceAmount:        o.BalanceAmount,
		Status:               o.Status,
		Notes:                o.Notes,
		CreatedAt:            o.CreatedAt,
		CustomerName:         o.CustomerName,
		CustomerPhone:        o.CustomerPhone,
		HasCheckup:           o.HasCheckup,
	}
}
