package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// CustomerWithStore fila de cliente anotada con su tienda (atribución de UI,
// no frontera de seguridad).
type CustomerWithStore struct {
	entity.Customer
	StoreName    string
	StoreAddress string
}

// CheckupWithStore fila de examen anotada con cliente y tienda.
type CheckupWithStore struct {
	entity.Checkup
	CustomerName  string
	CustomerPhone string
	StoreName     string
}

// OrderWithStore fila de pedido anotada con su tienda.
type OrderWithStore struct {
	entity.Order
	StoreName string
}

// StoreSalesRow totales de ventas de un día desglosados por tienda.
type StoreSalesRow struct {
	StoreID      string
	StoreName    string
	Date         string
	TotalOrders  int
	TotalSales   decimal.Decimal
	TotalAdvance decimal.Decimal
	TotalBalance decimal.Decimal
}

// StoreCount conteo de filas por tienda.
type StoreCount struct {
	StoreID   string
	StoreName string
	Count     int
}

// StoreOrderTotals totales acumulados de pedidos por tienda.
type StoreOrderTotals struct {
	StoreID      string
	StoreName    string
	OrderCount   int
	TotalSales   decimal.Decimal
	TotalAdvance decimal.Decimal
	TotalBalance decimal.Decimal
}

// AdminRepository consultas de solo lectura que cruzan todas las tiendas.
// Solo la capa de aplicación con sesión de super admin debe invocarlas.
// En los reportes, storeIDs == nil significa "todas las tiendas"; un slice
// vacío no nulo significa "ninguna seleccionada" y el caso de uso lo corta
// antes de llegar aquí.
type AdminRepository interface {
	AllCustomers(ctx context.Context) ([]CustomerWithStore, error)
	AllCheckups(ctx context.Context) ([]CheckupWithStore, error)
	AllOrders(ctx context.Context) ([]OrderWithStore, error)
	SalesReportByStore(ctx context.Context, startDate, endDate string, storeIDs []string) ([]StoreSalesRow, error)
	ConsolidatedSalesReport(ctx context.Context, startDate, endDate string, storeIDs []string) ([]SalesReportRow, error)
	CustomersByStore(ctx context.Context) ([]StoreCount, error)
	OrdersByStore(ctx context.Context) ([]StoreOrderTotals, error)
	CheckupsByStore(ctx context.Context) ([]StoreCount, error)
}
