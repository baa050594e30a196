package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

var _ repository.OrderSequenceRepository = (*OrderSequenceRepo)(nil)

// OrderSequenceRepo contador durable del número corto de pedido por tienda.
// Debe usarse dentro de la misma transacción que el INSERT del pedido: el
// UPDATE bloquea la fila del contador y serializa las altas concurrentes de la
// tienda, así la numeración queda densa y sin duplicados.
type OrderSequenceRepo struct {
	q Querier
}

// NewOrderSequenceRepository construye el adaptador. Pasar la tx (Querier).
func NewOrderSequenceRepository(q Querier) *OrderSequenceRepo {
	return &OrderSequenceRepo{q: q}
}

// Next entrega el siguiente número de la tienda e incrementa el contador.
func (r *OrderSequenceRepo) Next(ctx context.Context, storeID string) (int, error) {
	query := `
		INSERT INTO order_sequences (store_id, next_value) VALUES ($1, 2)
		ON CONFLICT (store_id) DO UPDATE SET next_value = order_sequences.next_value + 1
		RETURNING next_value - 1`
	var n int
	if err := r.q.QueryRow(ctx, query, storeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("next order number: %w", err)
	}
	return n, nil
}
