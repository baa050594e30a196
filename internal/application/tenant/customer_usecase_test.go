package tenant_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/optica-pro/internal/application/authz"
	"github.com/tu-usuario/optica-pro/internal/application/dto"
	"github.com/tu-usuario/optica-pro/internal/application/tenant"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del caso de uso de clientes: puerta de acceso, aislamiento entre
// tiendas y unicidad de teléfono POR tienda.
// ──────────────────────────────────────────────────────────────────────────────

var (
	storeAPrincipal = authz.Principal{StoreID: "store-a"}
	storeBPrincipal = authz.Principal{StoreID: "store-b"}
	adminPrincipal  = authz.Principal{SuperAdmin: true, AdminUser: "root"}
)

func seedCustomer(repo *fakeCustomerRepo, id, storeID, name, phone string) {
	repo.customers = append(repo.customers, &entity.Customer{
		ID: id, StoreID: storeID, Name: name, Phone: phone,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	})
}

func TestCustomerCreate_OK(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := tenant.NewCustomerUseCase(repo)

	got, err := uc.Create(context.Background(), storeAPrincipal, "store-a", dto.CreateCustomerRequest{
		Name:  "Ana Pérez",
		Phone: "3001234567",
		Email: "ana@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "store-a", got.StoreID, "el cliente queda anclado a la tienda del principal")
	assert.Equal(t, "Ana Pérez", got.Name)
	assert.Len(t, repo.customers, 1)
}

func TestCustomerCreate_SinSesionDeTiendaSeNiega(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := tenant.NewCustomerUseCase(repo)

	// El super admin lee todo pero no escribe datos de tienda.
	_, err := uc.Create(context.Background(), adminPrincipal, "store-a", dto.CreateCustomerRequest{
		Name: "Ana", Phone: "3001234567",
	})
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	assert.Empty(t, repo.customers, "no debe tocarse el almacenamiento tras un corte de la puerta")
}

func TestCustomerCreate_CamposRequeridos(t *testing.T) {
	uc := tenant.NewCustomerUseCase(&fakeCustomerRepo{})

	_, err := uc.Create(context.Background(), storeAPrincipal, "store-a", dto.CreateCustomerRequest{Phone: "3001234567"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin name debe rechazarse")

	_, err = uc.Create(context.Background(), storeAPrincipal, "store-a", dto.CreateCustomerRequest{Name: "Ana"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin phone debe rechazarse")
}

// El mismo teléfono en la MISMA tienda es duplicado y el error nombra al
// cliente existente; en OTRA tienda es perfectamente válido.
func TestCustomerCreate_TelefonoDuplicadoPorTienda(t *testing.T) {
	repo := &fakeCustomerRepo{}
	seedCustomer(repo, "c1", "store-a", "Ana Pérez", "3001234567")
	uc := tenant.NewCustomerUseCase(repo)

	_, err := uc.Create(context.Background(), storeAPrincipal, "store-a", dto.CreateCustomerRequest{
		Name: "Otra Ana", Phone: "3001234567",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	var dup *domain.DuplicateCustomerError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "c1", dup.ExistingID, "el error debe nombrar al cliente existente")
	assert.Equal(t, "Ana Pérez", dup.ExistingName)
	assert.Equal(t, "3001234567", dup.Phone)

	// La misma alta en otra tienda pasa sin conflicto.
	got, err := uc.Create(context.Background(), storeBPrincipal, "store-b", dto.CreateCustomerRequest{
		Name: "Ana de B", Phone: "3001234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "store-b", got.StoreID,
		"el mismo teléfono en otra tienda no es duplicado: la unicidad es por tienda")
}

// Aislamiento P1: un id de otra tienda se comporta como inexistente.
func TestCustomerGetByID_NoFiltraFilasDeOtraTienda(t *testing.T) {
	repo := &fakeCustomerRepo{}
	seedCustomer(repo, "c1", "store-a", "Ana", "3001234567")
	uc := tenant.NewCustomerUseCase(repo)

	got, err := uc.GetByID(context.Background(), storeAPrincipal, "c1", "store-a")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	// La tienda B pregunta por el id de A dentro de SU partición: not found,
	// jamás la fila ajena.
	_, err = uc.GetByID(context.Background(), storeBPrincipal, "c1", "store-b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerGetAll_SoloLaParticionPropia(t *testing.T) {
	repo := &fakeCustomerRepo{}
	seedCustomer(repo, "c1", "store-a", "Ana", "111")
	seedCustomer(repo, "c2", "store-a", "Luis", "222")
	seedCustomer(repo, "c3", "store-b", "Marta", "333")
	uc := tenant.NewCustomerUseCase(repo)

	list, err := uc.GetAll(context.Background(), storeAPrincipal, "store-a")
	require.NoError(t, err)
	assert.Len(t, list, 2, "solo los clientes de store-a")
	for _, c := range list {
		assert.Equal(t, "store-a", c.StoreID)
	}
}

func TestCustomerGetAll_SuperAdminLeeCualquierTienda(t *testing.T) {
	repo := &fakeCustomerRepo{}
	seedCustomer(repo, "c3", "store-b", "Marta", "333")
	uc := tenant.NewCustomerUseCase(repo)

	list, err := uc.GetAll(context.Background(), adminPrincipal, "store-b")
	require.NoError(t, err)
	assert.Len(t, list, 1, "la lectura cruzada del super admin sobre una tienda concreta es válida")
}

func TestCustomerSearchByName(t *testing.T) {
	repo := &fakeCustomerRepo{}
	seedCustomer(repo, "c1", "store-a", "Ana María López", "111")
	seedCustomer(repo, "c2", "store-a", "Luis Gómez", "222")
	seedCustomer(repo, "c3", "store-b", "Ana Torres", "333")
	uc := tenant.NewCustomerUseCase(repo)

	list, err := uc.SearchByName(context.Background(), storeAPrincipal, "ana", "store-a")
	require.NoError(t, err)
	require.Len(t, list, 1, "la búsqueda no cruza la frontera de la tienda")
	assert.Equal(t, "c1", list[0].ID)
}

func TestCustomerFindByPhone_Inexistente(t *testing.T) {
	uc := tenant.NewCustomerUseCase(&fakeCustomerRepo{})
	_, err := uc.FindByPhone(context.Background(), storeAPrincipal, "999", "store-a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerUpdate_OK(t *testing.T) {
	repo := &fakeCustomerRepo{}
	seedCustomer(repo, "c1", "store-a", "Ana", "111")
	uc := tenant.NewCustomerUseCase(repo)

	got, err := uc.Update(context.Background(), storeAPrincipal, "c1", "store-a", dto.UpdateCustomerRequest{
		Name: "Ana Actualizada", Phone: "111", Remarks: "usa lentes progresivos",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Actualizada", got.Name)
	assert.Equal(t, "usa lentes progresivos", got.Remarks)
}

// Cambiar el teléfono al de OTRO cliente de la misma tienda es duplicado;
// conservar el propio no lo es.
func TestCustomerUpdate_UnicidadDeTelefono(t *testing.T) {
	repo := &fakeCustomerRepo{}
	seedCustomer(repo, "c1", "store-a", "Ana", "111")
	seedCustomer(repo, "c2", "store-a", "Luis", "222")
	uc := tenant.NewCustomerUseCase(repo)

	_, err := uc.Update(context.Background(), storeAPrincipal, "c1", "store-a", dto.UpdateCustomerRequest{
		Name: "Ana", Phone: "222",
	})
	var dup *domain.DuplicateCustomerError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "c2", dup.ExistingID)

	// Re-guardar con el mismo teléfono propio no dispara el duplicado.
	_, err = uc.Update(context.Background(), storeAPrincipal, "c1", "store-a", dto.UpdateCustomerRequest{
		Name: "Ana", Phone: "111",
	})
	assert.NoError(t, err)
}

func TestCustomerUpdate_OtraTiendaEsNotFound(t *testing.T) {
	repo := &fakeCustomerRepo{}
	seedCustomer(repo, "c1", "store-a", "Ana", "111")
	uc := tenant.NewCustomerUseCase(repo)

	_, err := uc.Update(context.Background(), storeBPrincipal, "c1", "store-b", dto.UpdateCustomerRequest{
		Name: "Pirata", Phone: "999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
