package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/streadway/amqp"
	"github.com/tu-usuario/optica-pro/internal/application/tenant"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

var _ tenant.OrderEventPublisher = (*Publisher)(nil)

const orderQueue = "order_events"

// Tipos de evento publicados.
const (
	EventOrderCreated       = "order.created"
	EventOrderUpdated       = "order.updated"
	EventOrderStatusChanged = "order.status_changed"
)

// Publisher publica eventos de pedidos en RabbitMQ como mensajes JSON
// persistentes en una cola durable. El consumidor típico arma notificaciones
// al cliente (pedido listo, entregado).
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewPublisher conecta con el broker y declara la cola.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("conectar a RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("abrir canal: %w", err)
	}
	_, err = ch.QueueDeclare(
		orderQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declarar cola %s: %w", orderQueue, err)
	}
	return &Publisher{conn: conn, channel: ch}, nil
}

// Close cierra canal y conexión.
func (p *Publisher) Close() error {
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cerrar canal: %w", err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cerrar conexión: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("cerrar publisher: %v", errs)
	}
	return nil
}

type orderEvent struct {
	Event      string `json:"event"`
	StoreID    string `json:"store_id"`
	OrderID    string `json:"order_id"`
	CustomerID string `json:"customer_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Total      string `json:"total_amount,omitempty"`
	Balance    string `json:"balance_amount,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// PublishOrderCreated publica el alta de un pedido.
func (p *Publisher) PublishOrderCreated(ctx context.Context, order *entity.Order) error {
	return p.publish(orderEvent{
		Event:      EventOrderCreated,
		StoreID:    order.StoreID,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Status:     order.Status,
		Total:      order.TotalAmount.StringFixed(2),
		Balance:    order.BalanceAmount.StringFixed(2),
	})
}

// PublishOrderUpdated publica la edición de un pedido.
func (p *Publisher) PublishOrderUpdated(ctx context.Context, order *entity.Order) error {
	return p.publish(orderEvent{
		Event:      EventOrderUpdated,
		StoreID:    order.StoreID,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Status:     order.Status,
		Total:      order.TotalAmount.StringFixed(2),
		Balance:    order.BalanceAmount.StringFixed(2),
	})
}

// PublishOrderStatusChanged publica un cambio de estado.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, storeID, orderID, status string) error {
	return p.publish(orderEvent{
		Event:   EventOrderStatusChanged,
		StoreID: storeID,
		OrderID: orderID,
		Status:  status,
	})
}

func (p *Publisher) publish(ev orderEvent) error {
	if p.channel == nil {
		return fmt.Errorf("canal RabbitMQ no disponible")
	}
	now := time.Now()
	ev.OccurredAt = now.UTC().Format(time.RFC3339)
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal evento: %w", err)
	}
	err = p.channel.Publish(
		"",         // exchange por defecto
		orderQueue, // routing key = nombre de la cola
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    now,
		})
	if err != nil {
		return fmt.Errorf("publicar evento %s: %w", ev.Event, err)
	}
	return nil
}
