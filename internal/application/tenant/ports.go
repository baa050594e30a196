package tenant

import (
	"context"

	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

// TxRunner ejecuta el alta de pedido dentro de una transacción: el contador de
// numeración y el INSERT deben confirmar juntos o no confirmar.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orders repository.OrderRepository,
		seq repository.OrderSequenceRepository,
	) error) error
}

// OrderEventPublisher publica eventos del ciclo de vida de pedidos.
// La publicación es best-effort: un broker caído no debe tumbar la venta.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *entity.Order) error
	PublishOrderUpdated(ctx context.Context, order *entity.Order) error
	PublishOrderStatusChanged(ctx context.Context, storeID, orderID, status string) error
}
