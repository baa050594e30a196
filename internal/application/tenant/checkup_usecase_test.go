package tenant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/application/tenant"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del caso de uso de exámenes: integridad cliente↔examen dentro de la
// misma tienda y guarda referencial en el borrado.
// ──────────────────────────────────────────────────────────────────────────────

func newCheckupFixture() (*tenant.CheckupUseCase, *fakeCheckupRepo, *fakeCustomerRepo, *fakeOrderRepo) {
	checkups := &fakeCheckupRepo{}
	customers := &fakeCustomerRepo{}
	orders := &fakeOrderRepo{}
	return tenant.NewCheckupUseCase(checkups, customers, orders), checkups, customers, orders
}

func seedCheckup(repo *fakeCheckupRepo, id, storeID, customerID string) {
	repo.checkups = append(repo.checkups, &entity.Checkup{
		ID: id, StoreID: storeID, CustomerID: customerID, Date: "2025-06-01",
	})
}

func TestCheckupCreate_OK(t *testing.T) {
	uc, _, customers, _ := newCheckupFixture()
	seedCustomer(customers, "c1", "store-a", "Ana", "111")

	got, err := uc.Create(context.Background(), storeAPrincipal, "store-a", dto.CheckupRequest{
		CustomerID:          "c1",
		Date:                "2025-06-15",
		RightEyeSphericalDV: "-1.25",
		LeftEyeSphericalDV:  "-1.00",
		IPDBridge:           "62",
		TestedBy:            "Dr. Rivas",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "store-a", got.StoreID)
	assert.Equal(t, "-1.25", got.RightEyeSphericalDV)
	assert.Equal(t, "Dr. Rivas", got.TestedBy)
}

// La integridad cliente↔examen vive en el caso de uso: un customer_id de otra
// tienda se rechaza como inexistente, no hay FK que cruce la partición.
func TestCheckupCreate_ClienteDeOtraTiendaSeRechaza(t *testing.T) {
	uc, checkups, customers, _ := newCheckupFixture()
	seedCustomer(customers, "c1", "store-b", "Marta", "333")

	_, err := uc.Create(context.Background(), storeAPrincipal, "store-a", dto.CheckupRequest{
		CustomerID: "c1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"el cliente de otra tienda es invisible; el examen no debe crearse")
	assert.Empty(t, checkups.checkups)
}

func TestCheckupCreate_SinCustomerID(t *testing.T) {
	uc, _, _, _ := newCheckupFixture()
	_, err := uc.Create(context.Background(), storeAPrincipal, "store-a", dto.CheckupRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckupCreate_EscrituraCruzadaSeNiega(t *testing.T) {
	uc, _, customers, _ := newCheckupFixture()
	seedCustomer(customers, "c1", "store-a", "Ana", "111")

	_, err := uc.Create(context.Background(), storeBPrincipal, "store-a", dto.CheckupRequest{CustomerID: "c1"})
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestCheckupGetByID_AislamientoEntreTiendas(t *testing.T) {
	uc, checkups, _, _ := newCheckupFixture()
	seedCheckup(checkups, "ch1", "store-a", "c1")

	got, err := uc.GetByID(context.Background(), storeAPrincipal, "ch1", "store-a")
	require.NoError(t, err)
	assert.Equal(t, "ch1", got.ID)

	_, err = uc.GetByID(context.Background(), storeBPrincipal, "ch1", "store-b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckupUpdate_NoCambiaElCliente(t *testing.T) {
	uc, checkups, _, _ := newCheckupFixture()
	seedCheckup(checkups, "ch1", "store-a", "c1")

	got, err := uc.Update(context.Background(), storeAPrincipal, "ch1", "store-a", dto.CheckupRequest{
		CustomerID:          "c-distinto", // se ignora: el cliente del examen es inmutable
		RightEyeSphericalDV: "-2.00",
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", got.CustomerID, "el customer_id del examen no cambia tras la creación")
	assert.Equal(t, "-2.00", got.RightEyeSphericalDV)
}

func TestCheckupUpdate_FechaVaciaConservaLaAnterior(t *testing.T) {
	uc, checkups, _, _ := newCheckupFixture()
	seedCheckup(checkups, "ch1", "store-a", "c1")

	got, err := uc.Update(context.Background(), storeAPrincipal, "ch1", "store-a", dto.CheckupRequest{})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", got.Date)
}

// ── Borrado con guarda referencial ───────────────────────────────────────────

func TestCheckupDelete_SinPedidosColgando(t *testing.T) {
	uc, checkups, _, _ := newCheckupFixture()
	seedCheckup(checkups, "ch1", "store-a", "c1")

	err := uc.Delete(context.Background(), storeAPrincipal, "ch1", "store-a")
	require.NoError(t, err)
	assert.Empty(t, checkups.checkups)
}

// Con pedidos que referencian el examen, el borrado se rechaza con el conteo;
// nunca hay cascada.
func TestCheckupDelete_BloqueadoPorPedidos(t *testing.T) {
	uc, checkups, _, orders := newCheckupFixture()
	seedCheckup(checkups, "ch1", "store-a", "c1")
	orders.orders = append(orders.orders,
		&entity.Order{ID: "001", StoreID: "store-a", CustomerID: "c1", CheckupID: "ch1"},
		&entity.Order{ID: "002", StoreID: "store-a", CustomerID: "c1", CheckupID: "ch1"},
	)

	err := uc.Delete(context.Background(), storeAPrincipal, "ch1", "store-a")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	var conflict *domain.ReferentialConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 2, conflict.Orders, "el error lleva cuántos pedidos bloquean el borrado")
	assert.Len(t, checkups.checkups, 1, "el examen sigue intacto")
}

// Los pedidos de OTRA tienda que apunten al mismo id de examen no cuentan.
func TestCheckupDelete_PedidosDeOtraTiendaNoBloquean(t *testing.T) {
	uc, checkups, _, orders := newCheckupFixture()
	seedCheckup(checkups, "ch1", "store-a", "c1")
	orders.orders = append(orders.orders,
		&entity.Order{ID: "001", StoreID: "store-b", CustomerID: "x", CheckupID: "ch1"},
	)

	err := uc.Delete(context.Background(), storeAPrincipal, "ch1", "store-a")
	assert.NoError(t, err, "el conteo referencial también respeta la partición")
}

func TestCheckupDelete_Inexistente(t *testing.T) {
	uc, _, _, _ := newCheckupFixture()
	err := uc.Delete(context.Background(), storeAPrincipal, "no-existe", "store-a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCheckupGetByCustomerID(t *testing.T) {
	uc, checkups, _, _ := newCheckupFixture()
	seedCheckup(checkups, "ch1", "store-a", "c1")
	seedCheckup(checkups, "ch2", "store-a", "c1")
	seedCheckup(checkups, "ch3", "store-a", "c2")

	list, err := uc.GetByCustomerID(context.Background(), storeAPrincipal, "c1", "store-a")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
