package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest alta de pedido. BalanceAmount llega calculado por el
// llamador (total − anticipo); el servicio lo guarda tal cual.
type CreateOrderRequest struct {
	CustomerID           string          `json:"customer_id"`
	CheckupID            string          `json:"checkup_id"`
	OrderDate            string          `json:"order_date"`
	ExpectedDeliveryDate string          `json:"expected_delivery_date"`
	DeliveredDate        string          `json:"delivered_date"`
	Frame                string          `json:"frame"`
	Lenses               string          `json:"lenses"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	AdvanceAmount        decimal.Decimal `json:"advance_amount"`
	BalanceAmount        decimal.Decimal `json:"balance_amount"`
	Status               string          `json:"status"`
	Notes                string          `json:"notes"`
}

// UpdateOrderRequest edición de pedido; mismos campos que el alta.
type UpdateOrderRequest = CreateOrderRequest

// UpdateOrderStatusRequest cambio de estado puntual.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse pedido con anotaciones de lectura.
type OrderResponse struct {
	ID                   string          `json:"id"`
	StoreID              string          `json:"store_id"`
	CustomerID           string          `json:"customer_id"`
	CheckupID            string          `json:"checkup_id,omitempty"`
	OrderDate            string          `json:"order_date"`
	ExpectedDeliveryDate string          `json:"expected_delivery_date,omitempty"`
	DeliveredDate        string          `json:"delivered_date,omitempty"`
	Frame                string          `json:"frame,omitempty"`
	Lenses               string          `json:"lenses,omitempty"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	AdvanceAmount        decimal.Decimal `json:"advance_amount"`
	BalanceAmount        decimal.Decimal `json:"balance_amount"`
	Status               string          `json:"status"`
	Notes                string          `json:"notes,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	CustomerName         string          `json:"customer_name,omitempty"`
	CustomerPhone        string          `json:"customer_phone,omitempty"`
	HasCheckup           bool            `json:"has_checkup"`
}

// SalesReportRowResponse totales de ventas de un día.
type SalesReportRowResponse struct {
	Date         string          `json:"date"`
	TotalOrders  int             `json:"total_orders"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalAdvance decimal.Decimal `json:"total_advance"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}
