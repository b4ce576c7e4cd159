package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/models"
)

type OwnerRepository interface {
	Create(ctx context.Context, o *models.Owner) error
	GetByID(ctx context.Context, id int64) (*models.Owner, error)
	List(ctx context.Context) ([]*models.Owner, error)
	Update(ctx context.Context, o *models.Owner) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type ownerRepo struct {
	db DB
}

func NewOwnerRepository(db DB) OwnerRepository {
	return &ownerRepo{db: db}
}

func baseSelectOwner() string {
	return `SELECT id, unit, name, email, phone, entitlement FROM owners`
}

func (r *ownerRepo) scanOwner(row pgx.Row) (*models.Owner, error) {
	var o models.Owner
	if err := row.Scan(&o.ID, &o.Unit, &o.Name, &o.Email, &o.Phone, &o.Entitlement); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ownerRepo) Create(ctx context.Context, o *models.Owner) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO owners (unit, name, email, phone, entitlement)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, o.Unit, o.Name, o.Email, o.Phone, o.Entitlement).Scan(&o.ID)
}

func (r *ownerRepo) GetByID(ctx context.Context, id int64) (*models.Owner, error) {
	row := r.db.QueryRow(ctx, baseSelectOwner()+` WHERE id=$1`, id)
	return r.scanOwner(row)
}

// List returns the strata roll in unit order.
func (r *ownerRepo) List(ctx context.Context) ([]*models.Owner, error) {
	rows, err := r.db.Query(ctx, baseSelectOwner()+` ORDER BY unit ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Owner
	for rows.Next() {
		o, err := r.scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *ownerRepo) Update(ctx context.Context, o *models.Owner) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE owners
		SET unit=$1, name=$2, email=$3, phone=$4, entitlement=$5
		WHERE id=$6
	`, o.Unit, o.Name, o.Email, o.Phone, o.Entitlement, o.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ownerRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM owners WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
