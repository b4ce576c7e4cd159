package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/models"
)

type LevyRepository interface {
	Create(ctx context.Context, l *models.Levy) error
	GetByID(ctx context.Context, id int64) (*models.Levy, error)
	List(ctx context.Context) ([]*models.Levy, error)
	ListPastDueWithStatus(ctx context.Context, status string, asOf time.Time) ([]*models.Levy, error)
	Update(ctx context.Context, l *models.Levy) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type levyRepo struct {
	db DB
}

func NewLevyRepository(db DB) LevyRepository {
	return &levyRepo{db: db}
}

func baseSelectLevy() string {
	return `SELECT id, unit, amount, due_date, status, period FROM levies`
}

func (r *levyRepo) scanLevy(row pgx.Row) (*models.Levy, error) {
	var l models.Levy
	if err := row.Scan(&l.ID, &l.Unit, &l.Amount, &l.DueDate, &l.Status, &l.Period); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *levyRepo) Create(ctx context.Context, l *models.Levy) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO levies (unit, amount, due_date, status, period)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, l.Unit, l.Amount, l.DueDate, l.Status, l.Period).Scan(&l.ID)
}

func (r *levyRepo) GetByID(ctx context.Context, id int64) (*models.Levy, error) {
	row := r.db.QueryRow(ctx, baseSelectLevy()+` WHERE id=$1`, id)
	return r.scanLevy(row)
}

// List returns levies by ascending due date.
func (r *levyRepo) List(ctx context.Context) ([]*models.Levy, error) {
	return r.list(ctx, baseSelectLevy()+` ORDER BY due_date ASC, id ASC`)
}

// ListPastDueWithStatus feeds the overdue reporter: levies whose due date
// has passed but whose status still reads `status`.
func (r *levyRepo) ListPastDueWithStatus(ctx context.Context, status string, asOf time.Time) ([]*models.Levy, error) {
	return r.list(ctx,
		baseSelectLevy()+` WHERE status=$1 AND due_date < $2 ORDER BY due_date ASC, id ASC`,
		status, asOf)
}

func (r *levyRepo) list(ctx context.Context, sql string, args ...interface{}) ([]*models.Levy, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.Levy
	for rows.Next() {
		l, err := r.scanLevy(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *levyRepo) Update(ctx context.Context, l *models.Levy) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE levies
		SET unit=$1, amount=$2, due_date=$3, status=$4, period=$5
		WHERE id=$6
	`, l.Unit, l.Amount, l.DueDate, l.Status, l.Period, l.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *levyRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM levies WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
