package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/models"
)

type BudgetItemRepository interface {
	Create(ctx context.Context, b *models.BudgetItem) error
	GetByID(ctx context.Context, id int64) (*models.BudgetItem, error)
	List(ctx context.Context) ([]*models.BudgetItem, error)
	ListByFiscalYear(ctx context.Context, fiscalYear int) ([]*models.BudgetItem, error)
	Update(ctx context.Context, b *models.BudgetItem) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type budgetItemRepo struct {
	db DB
}

func NewBudgetItemRepository(db DB) BudgetItemRepository {
	return &budgetItemRepo{db: db}
}

func baseSelectBudgetItem() string {
	return `SELECT id, category, amount, type, fiscal_year FROM budget_items`
}

func (r *budgetItemRepo) scanItem(row pgx.Row) (*models.BudgetItem, error) {
	var b models.BudgetItem
	if err := row.Scan(&b.ID, &b.Category, &b.Amount, &b.Type, &b.FiscalYear); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *budgetItemRepo) Create(ctx context.Context, b *models.BudgetItem) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO budget_items (category, amount, type, fiscal_year)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, b.Category, b.Amount, b.Type, b.FiscalYear).Scan(&b.ID)
}

func (r *budgetItemRepo) GetByID(ctx context.Context, id int64) (*models.BudgetItem, error) {
	row := r.db.QueryRow(ctx, baseSelectBudgetItem()+` WHERE id=$1`, id)
	return r.scanItem(row)
}

func (r *budgetItemRepo) List(ctx context.Context) ([]*models.BudgetItem, error) {
	return r.list(ctx, baseSelectBudgetItem()+` ORDER BY fiscal_year DESC, category ASC`)
}

func (r *budgetItemRepo) ListByFiscalYear(ctx context.Context, fiscalYear int) ([]*models.BudgetItem, error) {
	return r.list(ctx, baseSelectBudgetItem()+` WHERE fiscal_year=$1 ORDER BY category ASC`, fiscalYear)
}

func (r *budgetItemRepo) list(ctx context.Context, sql string, args ...interface{}) ([]*models.BudgetItem, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*models.BudgetItem
	for rows.Next() {
		b, err := r.scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *budgetItemRepo) Update(ctx context.Context, b *models.BudgetItem) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE budget_items
		SET category=$1, amount=$2, type=$3, fiscal_year=$4
		WHERE id=$5
	`, b.Category, b.Amount, b.Type, b.FiscalYear, b.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *budgetItemRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM budget_items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
