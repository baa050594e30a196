package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/optica-pro/internal/domain/entity"
	"github.com/tu-usuario/optica-pro/internal/domain/repository"
)

var _ repository.CheckupRepository = (*CheckupRepo)(nil)

const checkupColumns = `id, store_id, customer_id, date,
		right_eye_spherical_dv, right_eye_cylindrical_dv, right_eye_axis_dv,
		right_eye_spherical_nv, right_eye_cylindrical_nv, right_eye_axis_nv,
		left_eye_spherical_dv, left_eye_cylindrical_dv, left_eye_axis_dv,
		left_eye_spherical_nv, left_eye_cylindrical_nv, left_eye_axis_nv,
		bifocal_details, ipd_bridge, tested_by, created_at`

// CheckupRepo implementación de CheckupRepository (usable con pool o tx).
type CheckupRepo struct {
	q Querier
}

// NewCheckupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCheckupRepository(q Querier) *CheckupRepo {
	return &CheckupRepo{q: q}
}

// Create persiste un nuevo examen.
func (r *CheckupRepo) Create(ctx context.Context, checkup *entity.Checkup) error {
	query := `
		INSERT INTO checkups (` + checkupColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err := r.q.Exec(ctx, query, checkupArgs(checkup)...)
	if err != nil {
		return fmt.Errorf("insert checkup: %w", err)
	}
	return nil
}

// GetAll lista los exámenes de la tienda, más reciente primero.
func (r *CheckupRepo) GetAll(ctx context.Context, storeID string) ([]*entity.Checkup, error) {
	query := `SELECT ` + checkupColumns + ` FROM checkups WHERE store_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list checkups: %w", err)
	}
	defer rows.Close()
	return scanCheckups(rows)
}

// GetByID obtiene un examen por ID dentro de la tienda.
func (r *CheckupRepo) GetByID(ctx context.Context, id, storeID string) (*entity.Checkup, error) {
	query := `SELECT ` + checkupColumns + ` FROM checkups WHERE id = $1 AND store_id = $2`
	var ch entity.Checkup
	err := r.q.QueryRow(ctx, query, id, storeID).Scan(checkupDests(&ch)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get checkup: %w", err)
	}
	return &ch, nil
}

// GetByCustomerID lista los exámenes de un cliente, más reciente primero.
func (r *CheckupRepo) GetByCustomerID(ctx context.Context, customerID, storeID string) ([]*entity.Checkup, error) {
	query := `SELECT ` + checkupColumns + ` FROM checkups WHERE customer_id = $1 AND store_id = $2 ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query, customerID, storeID)
	if err != nil {
		return nil, fmt.Errorf("list checkups by customer: %w", err)
	}
	defer rows.Close()
	return scanCheckups(rows)
}

// Update actualiza las medidas de un examen, acotado a su tienda. customer_id
// no se toca: es inmutable tras la creación.
func (r *CheckupRepo) Update(ctx context.Context, checkup *entity.Checkup) error {
	query := `
		UPDATE checkups SET date = $3,
			right_eye_spherical_dv = $4, right_eye_cylindrical_dv = $5, right_eye_axis_dv = $6,
			right_eye_spherical_nv = $7, right_eye_cylindrical_nv = $8, right_eye_axis_nv = $9,
			left_eye_spherical_dv = $10, left_eye_cylindrical_dv = $11, left_eye_axis_dv = $12,
			left_eye_spherical_nv = $13, left_eye_cylindrical_nv = $14, left_eye_axis_nv = $15,
			bifocal_details = $16, ipd_bridge = $17, tested_by = $18
		WHERE id = $1 AND store_id = $2`
	_, err := r.q.Exec(ctx, query,
		checkup.ID, checkup.StoreID, checkup.Date,
		checkup.RightEyeSphericalDV, checkup.RightEyeCylindricalDV, checkup.RightEyeAxisDV,
		checkup.RightEyeSphericalNV, checkup.RightEyeCylindricalNV, checkup.RightEyeAxisNV,
		checkup.LeftEyeSphericalDV, checkup.LeftEyeCylindricalDV, checkup.LeftEyeAxisDV,
		checkup.LeftEyeSphericalNV, checkup.LeftEyeCylindricalNV, checkup.LeftEyeAxisNV,
		checkup.BifocalDetails, checkup.IPDBridge, checkup.TestedBy,
	)
	if err != nil {
		return fmt.Errorf("update checkup: %w", err)
	}
	return nil
}

// Delete elimina un examen dentro de la tienda.
func (r *CheckupRepo) Delete(ctx context.Context, id, storeID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM checkups WHERE id = $1 AND store_id = $2`, id, storeID)
	if err != nil {
		return fmt.Errorf("delete checkup: %w", err)
	}
	return nil
}

func checkupArgs(ch *entity.Checkup) []any {
	return []any{
		ch.ID, ch.StoreID, ch.CustomerID, ch.Date,
		ch.RightEyeSphericalDV, ch.RightEyeCylindricalDV, ch.RightEyeAxisDV,
		ch.RightEyeSphericalNV, ch.RightEyeCylindricalNV, ch.RightEyeAxisNV,
		ch.LeftEyeSphericalDV, ch.LeftEyeCylindricalDV, ch.LeftEyeAxisDV,
		ch.LeftEyeSphericalNV, ch.LeftEyeCylindricalNV, ch.LeftEyeAxisNV,
		ch.BifocalDetails, ch.IPDBridge, ch.TestedBy, ch.CreatedAt,
	}
}

func checkupDests(ch *entity.Checkup) []any {
	return []any{
		&ch.ID, &ch.StoreID, &ch.CustomerID, &ch.Date,
		&ch.RightEyeSphericalDV, &ch.RightEyeCylindricalDV, &ch.RightEyeAxisDV,
		&ch.RightEyeSphericalNV, &ch.RightEyeCylindricalNV, &ch.RightEyeAxisNV,
		&ch.LeftEyeSphericalDV, &ch.LeftEyeCylindricalDV, &ch.LeftEyeAxisDV,
		&ch.LeftEyeSphericalNV, &ch.LeftEyeCylindricalNV, &ch.LeftEyeAxisNV,
		&ch.BifocalDetails, &ch.IPDBridge, &ch.TestedBy, &ch.CreatedAt,
	}
}

func scanCheckups(rows pgx.Rows) ([]*entity.Checkup, error) {
	var list []*entity.Checkup
	for rows.Next() {
		var ch entity.Checkup
		if err := rows.Scan(checkupDests(&ch)...); err != nil {
			return nil, fmt.Errorf("scan checkup: %w", err)
		}
		list = append(list, &ch)
	}
	return list, rows.Err()
}
