package events

import (
	"context"

	"github.com/tu-usuario/optica-pro/internal/application/tenant"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

var _ tenant.OrderEventPublisher = NoopPublisher{}

// NoopPublisher descarta los eventos. Se usa cuando AMQP_URL está vacío.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderCreated(ctx context.Context, order *entity.Order) error { return nil }
func (NoopPublisher) PublishOrderUpdated(ctx context.Context, order *entity.Order) error { return nil }
func (NoopPublisher) PublishOrderStatusChanged(ctx context.Context, storeID, orderID, status string) error {
	return nil
}
