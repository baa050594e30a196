package backup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/optica-pro/internal/application/authz"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

// Formatos de export soportados.
const (
	FormatSQL = "sql"
	FormatCSV = "csv"
)

// Export resultado de un respaldo listo para descargar.
type Export struct {
	Data        []byte
	Filename    string
	ContentType string
}

// UseCase arma respaldos SQL/CSV. La puerta de acceso decide el alcance antes
// de leer una sola fila; los generadores reciben los datos ya acotados.
type UseCase struct {
	stores    repository.StoreRepository
	customers repository.CustomerRepository
	checkups  repository.CheckupRepository
	orders    repository.OrderRepository
	admin     repository.AdminRepository
	now       func() time.Time
}

// NewUseCase construye el caso de uso. clock nil usa time.Now.
func NewUseCase(
	stores repository.StoreRepository,
	customers repository.CustomerRepository,
	checkups repository.CheckupRepository,
	orders repository.OrderRepository,
	admin repository.AdminRepository,
	clock func() time.Time,
) *UseCase {
	if clock == nil {
		clock = time.Now
	}
	return &UseCase{stores: stores, customers: customers, checkups: checkups, orders: orders, admin: admin, now: clock}
}

// ExportStore respaldo de UNA tienda, por la vía de tienda o de super admin.
func (uc *UseCase) ExportStore(ctx context.Context, p authz.Principal, storeID, format string) (*Export, error) {
	if d := authz.Authorize(p, authz.OpRead, storeID); !d.Allowed {
		return nil, domain.ErrAccessDenied
	}
	format = strings.ToLower(format)
	if format != FormatSQL && format != FormatCSV {
		return nil, fmt.Errorf("%w: formato de export no soportado %q", domain.ErrInvalidInput, format)
	}
	store, err := uc.stores.GetByIDWithPIN(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	customers, err := uc.customers.GetAll(ctx, storeID)
	if err != nil {
		return nil, err
	}
	checkups, err := uc.checkups.GetAll(ctx, storeID)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orders.GetAll(ctx, storeID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if format == FormatSQL {
		return &Export{
			Data:        []byte(BuildSQL(store, customers, checkups, orders, now)),
			Filename:    Filename(store.Name, "sql", now),
			ContentType: "application/sql",
		}, nil
	}
	data, err := BuildCSVArchive(store, customers, checkups, orders, now)
	if err != nil {
		return nil, err
	}
	return &Export{
		Data:        data,
		Filename:    Filename(store.Name, "zip", now),
		ContentType: "application/zip",
	}, nil
}

// ExportAll respaldo global, exclusivo del super admin.
func (uc *UseCase) ExportAll(ctx context.Context, p authz.Principal, format string) (*Export, error) {
	d := authz.Authorize(p, authz.OpRead, "")
	if !d.Allowed || !d.Scope.All {
		return nil, domain.ErrAccessDenied
	}
	format = strings.ToLower(format)
	if format != FormatSQL && format != FormatCSV {
		return nil, fmt.Errorf("%w: formato de export no soportado %q", domain.ErrInvalidInput, format)
	}
	ds, err := uc.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if format == FormatSQL {
		return &Export{
			Data:        []byte(BuildAllSQL(ds, now)),
			Filename:    AllStoresFilename("sql", now),
			ContentType: "application/sql",
		}, nil
	}
	data, err := BuildAllCSVArchive(ds, now)
	if err != nil {
		return nil, err
	}
	return &Export{
		Data:        data,
		Filename:    AllStoresFilename("zip", now),
		ContentType: "application/zip",
	}, nil
}

func (uc *UseCase) loadAll(ctx context.Context) (Dataset, error) {
	var ds Dataset
	stores, err := uc.stores.GetAll(ctx)
	if err != nil {
		return ds, err
	}
	// El respaldo debe poder restaurarse: se incluye el hash del PIN.
	for _, s := range stores {
		full, err := uc.stores.GetByIDWithPIN(ctx, s.ID)
		if err != nil {
			return ds, err
		}
		if full != nil {
			ds.Stores = append(ds.Stores, full)
		}
	}
	customerRows, err := uc.admin.AllCustomers(ctx)
	if err != nil {
		return ds, err
	}
	for i := range customerRows {
		c := customerRows[i].Customer
		ds.Customers = append(ds.Customers, &c)
	}
	checkupRows, err := uc.admin.AllCheckups(ctx)
	if err != nil {
		return ds, err
	}
	for i := range checkupRows {
		ch := checkupRows[i].Checkup
		ds.Checkups = append(ds.Checkups, &ch)
	}
	orderRows, err := uc.admin.AllOrders(ctx)
	if err != nil {
		return ds, err
	}
	for i := range orderRows {
		o := orderRows[i].Order
		ds.Orders = append(ds.Orders, &o)
	}
	return ds, nil
}
