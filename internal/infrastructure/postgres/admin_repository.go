package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo consultas de solo lectura que cruzan todas las tiendas. Son las
// únicas consultas del paquete sin filtro de store_id; la capa de aplicación
// ya verificó que el principal es super admin.
type AdminRepo struct {
	q Querier
}

// NewAdminRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAdminRepository(q Querier) *AdminRepo {
	return &AdminRepo{q: q}
}

// AllCustomers lista los clientes de todas las tiendas con su tienda.
func (r *AdminRepo) AllCustomers(ctx context.Context) ([]repository.CustomerWithStore, error) {
	query := `
		SELECT c.id, c.store_id, c.name, c.phone, c.email, c.address, c.date_of_birth, c.remarks,
			c.created_at, c.updated_at, s.name, s.address
		FROM customers c
		JOIN stores s ON s.id = c.store_id
		ORDER BY s.name, c.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all customers: %w", err)
	}
	defer rows.Close()
	var out []repository.CustomerWithStore
	for rows.Next() {
		var row repository.CustomerWithStore
		if err := rows.Scan(&row.ID, &row.StoreID, &row.Name, &row.Phone, &row.Email, &row.Address,
			&row.DateOfBirth, &row.Remarks, &row.CreatedAt, &row.UpdatedAt,
			&row.StoreName, &row.StoreAddress); err != nil {
			return nil, fmt.Errorf("scan customer with store: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// AllCheckups lista los exámenes de todas las tiendas con cliente y tienda.
func (r *AdminRepo) AllCheckups(ctx context.Context) ([]repository.CheckupWithStore, error) {
	query := `
		SELECT ch.id, ch.store_id, ch.customer_id, ch.date,
			ch.right_eye_spherical_dv, ch.right_eye_cylindrical_dv, ch.right_eye_axis_dv,
			ch.right_eye_spherical_nv, ch.right_eye_cylindrical_nv, ch.right_eye_axis_nv,
			ch.left_eye_spherical_dv, ch.left_eye_cylindrical_dv, ch.left_eye_axis_dv,
			ch.left_eye_spherical_nv, ch.left_eye_cylindrical_nv, ch.left_eye_axis_nv,
			ch.bifocal_details, ch.ipd_bridge, ch.tested_by, ch.created_at,
			COALESCE(c.name, ''), COALESCE(c.phone, ''), s.name
		FROM checkups ch
		JOIN stores s ON s.id = ch.store_id
		LEFT JOIN customers c ON c.id = ch.customer_id AND c.store_id = ch.store_id
		ORDER BY ch.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all checkups: %w", err)
	}
	defer rows.Close()
	var out []repository.CheckupWithStore
	for rows.Next() {
		var row repository.CheckupWithStore
		dests := checkupDests(&row.Checkup)
		dests = append(dests, &row.CustomerName, &row.CustomerPhone, &row.StoreName)
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scan checkup with store: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// AllOrders lista los pedidos de todas las tiendas con su tienda.
func (r *AdminRepo) AllOrders(ctx context.Context) ([]repository.OrderWithStore, error) {
	query := `
		SELECT o.id, o.store_id, o.customer_id, o.checkup_id, o.order_date,
			o.expected_delivery_date, o.delivered_date, o.frame, o.lenses,
			o.total_amount, o.advance_amount, o.balance_amount, o.status, o.notes, o.created_at,
			COALESCE(c.name, ''), COALESCE(c.phone, ''), o.checkup_id <> '', s.name
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		LEFT JOIN customers c ON c.id = o.customer_id AND c.store_id = o.store_id
		ORDER BY o.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	defer rows.Close()
	var out []repository.OrderWithStore
	for rows.Next() {
		var row repository.OrderWithStore
		dests := orderDests(&row.Order)
		dests = append(dests, &row.StoreName)
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scan order with store: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// SalesReportByStore ventas por tienda y día en el rango. storeIDs nil cubre
// todas las tiendas; la capa de aplicación ya cortó el slice vacío no nulo.
func (r *AdminRepo) SalesReportByStore(ctx context.Context, startDate, endDate string, storeIDs []string) ([]repository.StoreSalesRow, error) {
	query := `
		SELECT o.store_id, s.name, o.order_date, COUNT(*),
			COALESCE(SUM(o.total_amount), 0), COALESCE(SUM(o.advance_amount), 0), COALESCE(SUM(o.balance_amount), 0)
		FROM orders o
		JOIN stores s ON s.id = o.store_id
		WHERE o.order_date >= $1 AND o.order_date <= $2
			AND ($3::text[] IS NULL OR o.store_id = ANY($3))
		GROUP BY o.store_id, s.name, o.order_date
		ORDER BY s.name, o.order_date`
	rows, err := r.q.Query(ctx, query, startDate, endDate, storeIDs)
	if err != nil {
		return nil, fmt.Errorf("sales report by store: %w", err)
	}
	defer rows.Close()
	var out []repository.StoreSalesRow
	for rows.Next() {
		var row repository.StoreSalesRow
		if err := rows.Scan(&row.StoreID, &row.StoreName, &row.Date, &row.TotalOrders,
			&row.TotalSales, &row.TotalAdvance, &row.TotalBalance); err != nil {
			return nil, fmt.Errorf("scan store sales row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ConsolidatedSalesReport ventas por día con todas las tiendas combinadas.
func (r *AdminRepo) ConsolidatedSalesReport(ctx context.Context, startDate, endDate string, storeIDs []string) ([]repository.SalesReportRow, error) {
	query := `
		SELECT order_date, COUNT(*),
			COALESCE(SUM(total_amount), 0), COALESCE(SUM(advance_amount), 0), COALESCE(SUM(balance_amount), 0)
		FROM orders
		WHERE order_date >= $1 AND order_date <= $2
			AND ($3::text[] IS NULL OR store_id = ANY($3))
		GROUP BY order_date ORDER BY order_date`
	rows, err := r.q.Query(ctx, query, startDate, endDate, storeIDs)
	if err != nil {
		return nil, fmt.Errorf("consolidated sales report: %w", err)
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

// CustomersByStore conteo de clientes por tienda.
func (r *AdminRepo) CustomersByStore(ctx context.Context) ([]repository.StoreCount, error) {
	query := `
		SELECT s.id, s.name, COUNT(c.id)
		FROM stores s
		LEFT JOIN customers c ON c.store_id = s.id
		GROUP BY s.id, s.name ORDER BY s.name`
	return r.scanCounts(ctx, query, "customers by store")
}

// CheckupsByStore conteo de exámenes por tienda.
func (r *AdminRepo) CheckupsByStore(ctx context.Context) ([]repository.StoreCount, error) {
	query := `
		SELECT s.id, s.name, COUNT(ch.id)
		FROM stores s
		LEFT JOIN checkups ch ON ch.store_id = s.id
		GROUP BY s.id, s.name ORDER BY s.name`
	return r.scanCounts(ctx, query, "checkups by store")
}

// OrdersByStore acumulados de pedidos por tienda.
func (r *AdminRepo) OrdersByStore(ctx context.Context) ([]repository.StoreOrderTotals, error) {
	query := `
		SELECT s.id, s.name, COUNT(o.id),
			COALESCE(SUM(o.total_amount), 0), COALESCE(SUM(o.advance_amount), 0), COALESCE(SUM(o.balance_amount), 0)
		FROM stores s
		LEFT JOIN orders o ON o.store_id = s.id
		GROUP BY s.id, s.name ORDER BY s.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("orders by store: %w", err)
	}
	defer rows.Close()
	var out []repository.StoreOrderTotals
	for rows.Next() {
		var row repository.StoreOrderTotals
		if err := rows.Scan(&row.StoreID, &row.StoreName, &row.OrderCount,
			&row.TotalSales, &row.TotalAdvance, &row.TotalBalance); err != nil {
			return nil, fmt.Errorf("scan store order totals: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *AdminRepo) scanCounts(ctx context.Context, query, op string) ([]repository.StoreCount, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var out []repository.StoreCount
	for rows.Next() {
		var row repository.StoreCount
		if err := rows.Scan(&row.StoreID, &row.StoreName, &row.Count); err != nil {
			return nil, fmt.Errorf("scan store count: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
