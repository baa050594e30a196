package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/optica-pro/internal/domain"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
// Toda consulta filtra por store_id; ese filtro es la frontera entre tiendas.
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, store_id, name, phone, email, address, date_of_birth, remarks, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.StoreID, customer.Name, customer.Phone, customer.Email,
		customer.Address, customer.DateOfBirth, customer.Remarks,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetAll lista los clientes de la tienda.
func (r *CustomerRepo) GetAll(ctx context.Context, storeID string) ([]*entity.Customer, error) {
	query := `
		SELECT id, store_id, name, phone, email, address, date_of_birth, remarks, created_at, updated_at
		FROM customers WHERE store_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// GetByID obtiene un cliente por ID dentro de la tienda.
func (r *CustomerRepo) GetByID(ctx context.Context, id, storeID string) (*entity.Customer, error) {
	query := `
		SELECT id, store_id, name, phone, email, address, date_of_birth, remarks, created_at, updated_at
		FROM customers WHERE id = $1 AND store_id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id, storeID).Scan(
		&c.ID, &c.StoreID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.DateOfBirth, &c.Remarks,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// FindByPhone busca por teléfono exacto dentro de la tienda.
func (r *CustomerRepo) FindByPhone(ctx context.Context, phone, storeID string) (*entity.Customer, error) {
	query := `
		SELECT id, store_id, name, phone, email, address, date_of_birth, remarks, created_at, updated_at
		FROM customers WHERE phone = $1 AND store_id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, phone, storeID).Scan(
		&c.ID, &c.StoreID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.DateOfBirth, &c.Remarks,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find customer by phone: %w", err)
	}
	return &c, nil
}

// FindByName busca por nombre (subcadena, sin distinguir mayúsculas) dentro de la tienda.
func (r *CustomerRepo) FindByName(ctx context.Context, name, storeID string) ([]*entity.Customer, error) {
	query := `
		SELECT id, store_id, name, phone, email, address, date_of_birth, remarks, created_at, updated_at
		FROM customers WHERE store_id = $1 AND name ILIKE '%' || $2 || '%' ORDER BY name`
	rows, err := r.q.Query(ctx, query, storeID, name)
	if err != nil {
		return nil, fmt.Errorf("find customers by name: %w", err)
	}
	defer rows.Close()
	return scanCustomers(rows)
}

// Update actualiza un cliente, acotado a su tienda.
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, phone = $4, email = $5, address = $6, date_of_birth = $7, remarks = $8, updated_at = $9
		WHERE id = $1 AND store_id = $2`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.StoreID, customer.Name, customer.Phone, customer.Email,
		customer.Address, customer.DateOfBirth, customer.Remarks, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func scanCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.Phone, &c.Email, &c.Address,
			&c.DateOfBirth, &c.Remarks, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
