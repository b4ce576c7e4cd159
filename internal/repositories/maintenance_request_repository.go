package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/models"
)

type MaintenanceRequestRepository interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error
	GetByID(ctx context.Context, id int64) (*models.MaintenanceRequest, error)
	List(ctx context.Context) ([]*models.MaintenanceRequest, error)
	Update(ctx context.Context, m *models.MaintenanceRequest) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type maintenanceRepo struct {
	db DB
}

func NewMaintenanceRequestRepository(db DB) MaintenanceRequestRepository {
	return &maintenanceRepo{db: db}
}

func baseSelectMaintenance() string {
	return `SELECT id, title, description, submitted_by, unit, date, status, priority
	        FROM maintenance_requests`
}

func (r *maintenanceRepo) scanRequest(row pgx.Row) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	err := row.Scan(&m.ID, &m.Title, &m.Description, &m.SubmittedBy, &m.Unit, &m.Date, &m.Status, &m.Priority)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *maintenanceRepo) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO maintenance_requests (title, description, submitted_by, unit, date, status, priority)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, m.Title, m.Description, m.SubmittedBy, m.Unit, m.Date, m.Status, m.Priority).Scan(&m.ID)
}

func (r *maintenanceRepo) GetByID(ctx context.Context, id int64) (*models.MaintenanceRequest, error) {
	row := r.db.QueryRow(ctx, baseSelectMaintenance()+` WHERE id=$1`, id)
	return r.scanRequest(row)
}

// List returns newest requests first.
func (r *maintenanceRepo) List(ctx context.Context) ([]*models.MaintenanceRequest, error) {
	rows, err := r.db.Query(ctx, baseSelectMaintenance()+` ORDER BY date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.MaintenanceRequest
	for rows.Next() {
		m, err := r.scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *maintenanceRepo) Update(ctx context.Context, m *models.MaintenanceRequest) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE maintenance_requests
		SET title=$1, description=$2, submitted_by=$3, unit=$4, date=$5, status=$6, priority=$7
		WHERE id=$8
	`, m.Title, m.Description, m.SubmittedBy, m.Unit, m.Date, m.Status, m.Priority, m.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *maintenanceRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM maintenance_requests WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
