package tenant_test

import (
	"context"
	"strings"

	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests de los casos de uso de tienda.
// Imitan el contrato de los repositorios reales: (nil, nil) sin fila y filtro
// de store_id en TODA consulta — ese filtro es exactamente lo que los tests
// de aislamiento verifican.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers []*entity.Customer
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	cp := *c
	f.customers = append(f.customers, &cp)
	return nil
}

func (f *fakeCustomerRepo) GetAll(_ context.Context, storeID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.customers {
		if c.StoreID == storeID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id, storeID string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.ID == id && c.StoreID == storeID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindByPhone(_ context.Context, phone, storeID string) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.Phone == phone && c.StoreID == storeID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindByName(_ context.Context, name, storeID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.customers {
		if c.StoreID == storeID && strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	for i, existing := range f.customers {
		if existing.ID == c.ID && existing.StoreID == c.StoreID {
			cp := *c
			f.customers[i] = &cp
			return nil
		}
	}
	return nil
}

type fakeCheckupRepo struct {
	checkups []*entity.Checkup
}

func (f *fakeCheckupRepo) Create(_ context.Context, ch *entity.Checkup) error {
	cp := *ch
	f.checkups = append(f.checkups, &cp)
	return nil
}

func (f *fakeCheckupRepo) GetAll(_ context.Context, storeID string) ([]*entity.Checkup, error) {
	var out []*entity.Checkup
	for _, ch := range f.checkups {
		if ch.StoreID == storeID {
			cp := *ch
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCheckupRepo) GetByID(_ context.Context, id, storeID string) (*entity.Checkup, error) {
	for _, ch := range f.checkups {
		if ch.ID == id && ch.StoreID == storeID {
			cp := *ch
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCheckupRepo) GetByCustomerID(_ context.Context, customerID, storeID string) ([]*entity.Checkup, error) {
	var out []*entity.Checkup
	for _, ch := range f.checkups {
		if ch.CustomerID == customerID && ch.StoreID == storeID {
			cp := *ch
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCheckupRepo) Update(_ context.Context, ch *entity.Checkup) error {
	for i, existing := range f.checkups {
		if existing.ID == ch.ID && existing.StoreID == ch.StoreID {
			cp := *ch
			f.checkups[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeCheckupRepo) Delete(_ context.Context, id, storeID string) error {
	for i, ch := range f.checkups {
		if ch.ID == id && ch.StoreID == storeID {
			f.checkups = append(f.checkups[:i], f.checkups[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	cp := *o
	f.orders = append(f.orders, &cp)
	return nil
}

func (f *fakeOrderRepo) GetAll(_ context.Context, storeID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.StoreID == storeID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id, storeID string) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.ID == id && o.StoreID == storeID {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) GetByCustomerID(_ context.Context, customerID, storeID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID && o.StoreID == storeID {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *entity.Order) error {
	for i, existing := range f.orders {
		if existing.ID == o.ID && existing.StoreID == o.StoreID {
			cp := *o
			f.orders[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, status, storeID string) error {
	for _, o := range f.orders {
		if o.ID == id && o.StoreID == storeID {
			o.Status = status
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id, storeID string) error {
	for i, o := range f.orders {
		if o.ID == id && o.StoreID == storeID {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeOrderRepo) CountByCheckupID(_ context.Context, checkupID, storeID string) (int, error) {
	count := 0
	for _, o := range f.orders {
		if o.CheckupID == checkupID && o.StoreID == storeID {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) SalesReport(_ context.Context, storeID, startDate, endDate string) ([]repository.SalesReportRow, error) {
	return nil, nil
}

// fakeSequenceRepo contador por tienda, igual que la tabla order_sequences.
type fakeSequenceRepo struct {
	next map[string]int
}

func newFakeSequenceRepo() *fakeSequenceRepo {
	return &fakeSequenceRepo{next: make(map[string]int)}
}

func (f *fakeSequenceRepo) Next(_ context.Context, storeID string) (int, error) {
	n, ok := f.next[storeID]
	if !ok {
		n = 1
	}
	f.next[storeID] = n + 1
	return n, nil
}

// fakeTxRunner ejecuta el cierre directamente sobre los fakes, sin transacción.
type fakeTxRunner struct {
	orders repository.OrderRepository
	seq    repository.OrderSequenceRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.OrderRepository, repository.OrderSequenceRepository) error) error {
	return fn(f.orders, f.seq)
}

// fakePublisher registra los eventos publicados para poder afirmarlos.
type fakePublisher struct {
	created       []string
	updated       []string
	statusChanges []string
}

func (f *fakePublisher) PublishOrderCreated(_ context.Context, o *entity.Order) error {
	f.created = append(f.created, o.ID)
	return nil
}

func (f *fakePublisher) PublishOrderUpdated(_ context.Context, o *entity.Order) error {
	f.updated = append(f.updated, o.ID)
	return nil
}

func (f *fakePublisher) PublishOrderStatusChanged(_ context.Context, storeID, orderID, status string) error {
	f.statusChanges = append(f.statusChanges, orderID+":"+status)
	return nil
}
