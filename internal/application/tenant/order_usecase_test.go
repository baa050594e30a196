package tenant_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/application/tenant"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del caso de uso de pedidos: numeración corta densa por tienda,
// validaciones de misma tienda y publicación de eventos.
// ──────────────────────────────────────────────────────────────────────────────

type orderFixture struct {
	uc        *tenant.OrderUseCase
	orders    *fakeOrderRepo
	customers *fakeCustomerRepo
	checkups  *fakeCheckupRepo
	seq       *fakeSequenceRepo
	events    *fakePublisher
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orders:    &fakeOrderRepo{},
		customers: &fakeCustomerRepo{},
		checkups:  &fakeCheckupRepo{},
		seq:       newFakeSequenceRepo(),
		events:    &fakePublisher{},
	}
	tx := &fakeTxRunner{orders: f.orders, seq: f.seq}
	f.uc = tenant.NewOrderUseCase(f.orders, f.customers, f.checkups, tx, f.events, zerolog.Nop())
	return f
}

func createOrderRequest(customerID string) dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		CustomerID:    customerID,
		OrderDate:     "2025-06-15",
		Frame:         "Ray-Ban RB5154",
		Lenses:        "Antirreflejo 1.61",
		TotalAmount:   decimal.NewFromFloat(250.00),
		AdvanceAmount: decimal.NewFromFloat(100.00),
		BalanceAmount: decimal.NewFromFloat(150.00),
	}
}

// El número corto viene del contador durable: "001", "002", … sin huecos, y
// cada tienda lleva su propia serie.
func TestOrderCreate_NumeracionDensaPorTienda(t *testing.T) {
	f := newOrderFixture()
	seedCustomer(f.customers, "c1", "store-a", "Ana", "111")
	seedCustomer(f.customers, "c2", "store-b", "Marta", "333")

	first, err := f.uc.Create(context.Background(), storeAPrincipal, "store-a", createOrderRequest("c1"))
	require.NoError(t, err)
	assert.Equal(t, "001", first.ID, "el primer pedido de la tienda es 001")

	second, err := f.uc.Create(context.Background(), storeAPrincipal, "store-a", createOrderRequest("c1"))
	require.NoError(t, err)
	assert.Equal(t, "002", second.ID, "la serie avanza sin huecos")

	// La serie de otra tienda arranca en 001 de forma independiente.
	otherStore, err := f.uc.Create(context.Background(), storeBPrincipal, "store-b", createOrderRequest("c2"))
	require.NoError(t, err)
	assert.Equal(t, "001", otherStore.ID, "cada tienda tiene su propia serie")
}

// balance_amount se guarda tal cual lo calculó el llamador, aunque no cuadre
// con total − anticipo.
func TestOrderCreate_BalanceSeGuardaTalCual(t *testing.T) {
	f := newOrderFixture()
	seedCustomer(f.customers, "c1", "store-a", "Ana", "111")

	in := createOrderRequest("c1")
	in.BalanceAmount = decimal.NewFromFloat(999.99) // incoherente a propósito

	got, err := f.uc.Create(context.Background(), storeAPrincipal, "store-a", in)
	require.NoError(t, err)
	assert.True(t, got.BalanceAmount.Equal(decimal.NewFromFloat(999.99)),
		"el servicio no recomputa el saldo: guarda lo que recibe")
}

func TestOrderCreate_EstadoPorDefectoYValidacion(t *testing.T) {
	f := newOrderFixture()
	seedCustomer(f.customers, "c1", "store-a", "Ana", "111")

	got, err := f.uc.Create(context.Background(), storeAPrincipal, "store-a", createOrderRequest("c1"))
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, got.Status, "sin estado explícito queda pending")

	in := createOrderRequest("c1")
	in.Status = "volando"
	_, err = f.uc.Create(context.Background(), storeAPrincipal, "store-a", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado desconocido se rechaza")
}

func TestOrderCreate_ClienteDeOtraTiendaSeRechaza(t *testing.T) {
	f := newOrderFixture()
	seedCustomer(f.customers, "c1", "store-b", "Marta", "333")

	_, err := f.uc.Create(context.Background(), storeAPrincipal, "store-a", createOrderRequest("c1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, f.orders.orders)
}

func TestOrderCreate_ExamenDeOtraTiendaSeRechaza(t *testing.T) {
	f := newOrderFixture()
	seedCustomer(f.customers, "c1", "store-a", "Ana", "111")
	seedCheckup(f.checkups, "ch1", "store-b", "x")

	in := createOrderRequest("c1")
	in.CheckupID = "ch1"
	_, err := f.uc.Create(context.Background(), storeAPrincipal, "store-a", in)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"el examen referenciado debe pertenecer a la misma tienda")
}

func TestOrderCreate_PublicaEvento(t *testing.T) {
	f := newOrderFixture()
	seedCustomer(f.customers, "c1", "store-a", "Ana", "111")

	got, err := f.uc.Create(context.Background(), storeAPrincipal, "store-a", createOrderRequest("c1"))
	require.NoError(t, err)
	require.Len(t, f.events.created, 1)
	assert.Equal(t, got.ID, f.events.created[0])
}

func TestOrderCreate_SuperAdminNoCrea(t *testing.T) {
	f := newOrderFixture()
	seedCustomer(f.customers, "c1", "store-a", "Ana", "111")

	_, err := f.uc.Create(context.Background(), adminPrincipal, "store-a", createOrderRequest("c1"))
	assert.ErrorIs(t, err, domain.ErrAccessDenied,
		"la capacidad de supervisión nunca se convierte en escritura")
}

func TestOrderGetByID_AislamientoEntreTiendas(t *testing.T) {
	f := newOrderFixture()
	f.orders.orders = append(f.orders.orders, &entity.Order{ID: "001", StoreID: "store-a", CustomerID: "c1"})

	got, err := f.uc.GetByID(context.Background(), storeAPrincipal, "001", "store-a")
	require.NoError(t, err)
	assert.Equal(t, "001", got.ID)

	// "001" existe también como id en otra serie; cada tienda solo ve la suya.
	_, err = f.uc.GetByID(context.Background(), storeBPrincipal, "001", "store-b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUpdateStatus(t *testing.T) {
	f := newOrderFixture()
	f.orders.orders = append(f.orders.orders, &entity.Order{
		ID: "001", StoreID: "store-a", CustomerID: "c1", Status: entity.OrderStatusPending,
	})

	err := f.uc.UpdateStatus(context.Background(), storeAPrincipal, "001", "store-a", entity.OrderStatusReady)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReady, f.orders.orders[0].Status)
	assert.Equal(t, []string{"001:ready"}, f.events.statusChanges)

	err = f.uc.UpdateStatus(context.Background(), storeAPrincipal, "001", "store-a", "roto")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdate_ConservaElNumeroCorto(t *testing.T) {
	f := newOrderFixture()
	seedCustomer(f.customers, "c1", "store-a", "Ana", "111")
	f.orders.orders = append(f.orders.orders, &entity.Order{
		ID: "001", StoreID: "store-a", CustomerID: "c1", Status: entity.OrderStatusPending,
	})

	in := createOrderRequest("c1")
	in.Frame = "Oakley OX8046"
	got, err := f.uc.Update(context.Background(), storeAPrincipal, "001", "store-a", in)
	require.NoError(t, err)
	assert.Equal(t, "001", got.ID, "el número corto jamás cambia en la edición")
	assert.Equal(t, "Oakley OX8046", got.Frame)
	assert.Equal(t, []string{"001"}, f.events.updated)
}

func TestOrderDelete(t *testing.T) {
	f := newOrderFixture()
	f.orders.orders = append(f.orders.orders, &entity.Order{ID: "001", StoreID: "store-a", CustomerID: "c1"})

	require.NoError(t, f.uc.Delete(context.Background(), storeAPrincipal, "001", "store-a"))
	assert.Empty(t, f.orders.orders)

	err := f.uc.Delete(context.Background(), storeAPrincipal, "001", "store-a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderGetByCustomerID(t *testing.T) {
	f := newOrderFixture()
	f.orders.orders = append(f.orders.orders,
		&entity.Order{ID: "001", StoreID: "store-a", CustomerID: "c1"},
		&entity.Order{ID: "002", StoreID: "store-a", CustomerID: "c2"},
		&entity.Order{ID: "001", StoreID: "store-b", CustomerID: "c1"},
	)

	list, err := f.uc.GetByCustomerID(context.Background(), storeAPrincipal, "c1", "store-a")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
