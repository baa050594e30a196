package dto

import "github.com/shopspring/decimal"

// AdminCustomerResponse cliente anotado con su tienda (vista de supervisión).
type AdminCustomerResponse struct {
	CustomerResponse
	StoreName    string `json:"store_name"`
	StoreAddress string `json:"store_address,omitempty"`
}

// AdminCheckupResponse examen anotado con cliente y tienda.
type AdminCheckupResponse struct {
	CheckupResponse
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	StoreName     string `json:"store_name"`
}

// AdminOrderResponse pedido anotado con su tienda.
type AdminOrderResponse struct {
	OrderResponse
	StoreName string `json:"store_name"`
}

// StoreSalesRowResponse ventas de un día desglosadas por tienda.
type StoreSalesRowResponse struct {
	StoreID      string          `json:"store_id"`
	StoreName    string          `json:"store_name"`
	Date         string          `json:"date"`
	TotalOrders  int             `json:"total_orders"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalAdvance decimal.Decimal `json:"total_advance"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}

// StoreCountResponse conteo de filas por tienda.
type StoreCountResponse struct {
	StoreID   string `json:"store_id"`
	StoreName string `json:"store_name"`
	Count     int    `json:"count"`
}

// StoreOrderTotalsResponse acumulados de pedidos por tienda.
type StoreOrderTotalsResponse struct {
	StoreID      string          `json:"store_id"`
	StoreName    string          `json:"store_name"`
	OrderCount   int             `json:"order_count"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	TotalAdvance decimal.Decimal `json:"total_advance"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}
