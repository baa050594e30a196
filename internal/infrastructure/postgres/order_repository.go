package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación de OrderRepository (usable con pool o tx).
// Las lecturas anotan nombre y teléfono del cliente con un join; el join usa
// también store_id para no cruzar particiones.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderSelect = `
	SELECT o.id, o.store_id, o.customer_id, o.checkup_id, o.order_date,
		o.expected_delivery_date, o.delivered_date, o.frame, o.lenses,
		o.total_amount, o.advance_amount, o.balance_amount, o.status, o.notes, o.created_at,
		COALESCE(c.name, ''), COALESCE(c.phone, ''), o.checkup_id <> ''
	FROM orders o
	LEFT JOIN customers c ON c.id = o.customer_id AND c.store_id = o.store_id`

// Create persiste un nuevo pedido. El ID ya viene asignado por el contador.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, store_id, customer_id, checkup_id, order_date, expected_delivery_date,
			delivered_date, frame, lenses, total_amount, advance_amount, balance_amount, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.StoreID, order.CustomerID, order.CheckupID, order.OrderDate,
		order.ExpectedDeliveryDate, order.DeliveredDate, order.Frame, order.Lenses,
		order.TotalAmount, order.AdvanceAmount, order.BalanceAmount, order.Status, order.Notes,
		order.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetAll lista los pedidos de la tienda, más reciente primero.
func (r *OrderRepo) GetAll(ctx context.Context, storeID string) ([]*entity.Order, error) {
	query := orderSelect + ` WHERE o.store_id = $1 ORDER BY o.created_at DESC`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// GetByID obtiene un pedido por número corto dentro de la tienda.
func (r *OrderRepo) GetByID(ctx context.Context, id, storeID string) (*entity.Order, error) {
	query := orderSelect + ` WHERE o.id = $1 AND o.store_id = $2`
	var o entity.Order
	err := r.q.QueryRow(ctx, query, id, storeID).Scan(orderDests(&o)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// GetByCustomerID lista los pedidos de un cliente, más reciente primero.
func (r *OrderRepo) GetByCustomerID(ctx context.Context, customerID, storeID string) ([]*entity.Order, error) {
	query := orderSelect + ` WHERE o.customer_id = $1 AND o.store_id = $2 ORDER BY o.created_at DESC`
	rows, err := r.q.Query(ctx, query, customerID, storeID)
	if err != nil {
		return nil, fmt.Errorf("list orders by customer: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// Update actualiza un pedido, acotado a su tienda. El número corto no cambia.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders SET customer_id = $3, checkup_id = $4, order_date = $5, expected_delivery_date = $6,
			delivered_date = $7, frame = $8, lenses = $9, total_amount = $10, advance_amount = $11,
			balance_amount = $12, status = $13, notes = $14
		WHERE id = $1 AND store_id = $2`
	_, err := r.q.Exec(ctx, query,
		order.ID, order.StoreID, order.CustomerID, order.CheckupID, order.OrderDate,
		order.ExpectedDeliveryDate, order.DeliveredDate, order.Frame, order.Lenses,
		order.TotalAmount, order.AdvanceAmount, order.BalanceAmount, order.Status, order.Notes,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado de un pedido dentro de la tienda.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id, status, storeID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $3 WHERE id = $1 AND store_id = $2`, id, storeID, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// Delete elimina un pedido dentro de la tienda.
func (r *OrderRepo) Delete(ctx context.Context, id, storeID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// CountByCheckupID cuenta los pedidos que referencian un examen.
func (r *OrderRepo) CountByCheckupID(ctx context.Context, checkupID, storeID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE checkup_id = $1 AND store_id = $2`, checkupID, storeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count orders by checkup: %w", err)
	}
	return count, nil
}

// SalesReport totales de ventas por día de la tienda en el rango [startDate, endDate].
func (r *OrderRepo) SalesReport(ctx context.Context, storeID, startDate, endDate string) ([]repository.SalesReportRow, error) {
	query := `
		SELECT order_date, COUNT(*),
			COALESCE(SUM(total_amount), 0), COALESCE(SUM(advance_amount), 0), COALESCE(SUM(balance_amount), 0)
		FROM orders
		WHERE store_id = $1 AND order_date >= $2 AND order_date <= $3
		GROUP BY order_date ORDER BY order_date`
	rows, err := r.q.Query(ctx, query, storeID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	defer rows.Close()
	var out []repository.SalesReportRow
	for rows.Next() {
		var row repository.SalesReportRow
		if err := rows.Scan(&row.Date, &row.TotalOrders, &row.TotalSales, &row.TotalAdvance, &row.TotalBalance); err != nil {
			return nil, fmt.Errorf("scan sales report row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func orderDests(o *entity.Order) []any {
	return []any{
		&o.ID, &o.StoreID, &o.CustomerID, &o.CheckupID, &o.OrderDate,
		&o.ExpectedDeliveryDate, &o.DeliveredDate, &o.Frame, &o.Lenses,
		&o.TotalAmount, &o.AdvanceAmount, &o.BalanceAmount, &o.Status, &o.Notes, &o.CreatedAt,
		&o.CustomerName, &o.CustomerPhone, &o.HasCheckup,
	}
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(orderDests(&o)...); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
