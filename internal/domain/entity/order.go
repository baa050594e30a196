package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusReady      = "ready"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus indica si s es uno de los estados conocidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order es un pedido de gafas. El ID es el número corto visible al cliente
// ("001", "002", …), denso y único por tienda; la clave real es (StoreID, ID).
// BalanceAmount lo calcula el llamador (total − anticipo); el servicio guarda
// lo que recibe sin recomputarlo.
type Order struct {
	ID                   string
	StoreID              string
	CustomerID           string
	CheckupID            string
	OrderDate            string
	ExpectedDeliveryDate string
	DeliveredDate        string
	Frame                string
	Lenses               string
	TotalAmount          decimal.Decimal
	AdvanceAmount        decimal.Decimal
	BalanceAmount        decimal.Decimal
	Status               string
	Notes                string
	CreatedAt            time.Time

	// Anotaciones de lectura (joins); no se persisten en orders.
	CustomerName  string
	CustomerPhone string
	HasCheckup    bool
}
