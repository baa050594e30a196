package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// SalesReportRow totales de ventas de un día.
type SalesReportRow struct {
	Date         string
	TotalOrders  int
	TotalSales   decimal.Decimal
	TotalAdvance decimal.Decimal
	TotalBalance decimal.Decimal
}

// OrderRepository define el puerto de persistencia para Order.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetAll(ctx context.Context, storeID string) ([]*entity.Order, error)
	GetByID(ctx context.Context, id, storeID string) (*entity.Order, error)
	GetByCustomerID(ctx context.Context, customerID, storeID string) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, id, status, storeID string) error
	Delete(ctx context.Context, id, storeID string) error
	// CountByCheckupID cuenta los pedidos que referencian un examen; sostiene la
	// guarda de borrado de checkups.
	CountByCheckupID(ctx context.Context, checkupID, storeID string) (int, error)
	SalesReport(ctx context.Context, storeID, startDate, endDate string) ([]SalesReportRow, error)
}

// OrderSequenceRepository entrega el siguiente número corto de pedido de una
// tienda desde un contador durable (nunca escaneando el máximo existente).
type OrderSequenceRepository interface {
	Next(ctx context.Context, storeID string) (int, error)
}
