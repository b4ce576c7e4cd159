package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/models"
	"github.com/legend1349/USYDSTRATA2025/internal/repositories"
)

// FinanceService covers levies and the scheme budget.
type FinanceService interface {
	ListLevies(ctx context.Context, search string) ([]*models.Levy, error)
	GetLevy(ctx context.Context, id int64) (*models.Levy, error)
	CreateLevy(ctx context.Context, req dtos.CreateLevyRequest) (*models.Levy, error)
	UpdateLevy(ctx context.Context, id int64, req dtos.UpdateLevyRequest) (*models.Levy, error)
	DeleteLevy(ctx context.Context, id int64) error

	ListBudgetItems(ctx context.Context, fiscalYear int) ([]*models.BudgetItem, error)
	GetBudgetItem(ctx context.Context, id int64) (*models.BudgetItem, error)
	CreateBudgetItem(ctx context.Context, req dtos.CreateBudgetItemRequest) (*models.BudgetItem, error)
	UpdateBudgetItem(ctx context.Context, id int64, req dtos.UpdateBudgetItemRequest) (*models.BudgetItem, error)
	DeleteBudgetItem(ctx context.Context, id int64) error

	Summary(ctx context.Context, fiscalYear int) (dtos.FinanceSummaryResponse, error)
}

type financeService struct {
	levies repositories.LevyRepository
	budget repositories.BudgetItemRepository
}

func NewFinanceService(levies repositories.LevyRepository, budget repositories.BudgetItemRepository) FinanceService {
	return &financeService{levies: levies, budget: budget}
}

// ---------------------------------------------------------------------------
// Levies
// ---------------------------------------------------------------------------

func (s *financeService) ListLevies(ctx context.Context, search string) ([]*models.Levy, error) {
	all, err := s.levies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list levies: %w", err)
	}
	if search == "" {
		return all, nil
	}
	filtered := make([]*models.Levy, 0, len(all))
	for _, l := range all {
		if matchesAny(search, l.Unit, l.Period) {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

func (s *financeService) GetLevy(ctx context.Context, id int64) (*models.Levy, error) {
	l, err := s.levies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get levy %d: %w", id, err)
	}
	return l, nil
}

func (s *financeService) CreateLevy(ctx context.Context, req dtos.CreateLevyRequest) (*models.Levy, error) {
	l := req.ToModel()
	if err := s.levies.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("create levy: %w", err)
	}
	return l, nil
}

func (s *financeService) UpdateLevy(ctx context.Context, id int64, req dtos.UpdateLevyRequest) (*models.Levy, error) {
	l, err := s.GetLevy(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(l)
	if err := s.levies.Update(ctx, l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update levy %d: %w", id, err)
	}
	return l, nil
}

func (s *financeService) DeleteLevy(ctx context.Context, id int64) error {
	ok, err := s.levies.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete levy %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Budget
// ---------------------------------------------------------------------------

func (s *financeService) ListBudgetItems(ctx context.Context, fiscalYear int) ([]*models.BudgetItem, error) {
	var (
		items []*models.BudgetItem
		err   error
	)
	if fiscalYear > 0 {
		items, err = s.budget.ListByFiscalYear(ctx, fiscalYear)
	} else {
		items, err = s.budget.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	return items, nil
}

func (s *financeService) GetBudgetItem(ctx context.Context, id int64) (*models.BudgetItem, error) {
	b, err := s.budget.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get budget item %d: %w", id, err)
	}
	return b, nil
}

func (s *financeService) CreateBudgetItem(ctx context.Context, req dtos.CreateBudgetItemRequest) (*models.BudgetItem, error) {
	b := req.ToModel()
	if err := s.budget.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create budget item: %w", err)
	}
	return b, nil
}

func (s *financeService) UpdateBudgetItem(ctx context.Context, id int64, req dtos.UpdateBudgetItemRequest) (*models.BudgetItem, error) {
	b, err := s.GetBudgetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(b)
	if err := s.budget.Update(ctx, b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update budget item %d: %w", id, err)
	}
	return b, nil
}

func (s *financeService) DeleteBudgetItem(ctx context.Context, id int64) error {
	ok, err := s.budget.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete budget item %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// Summary totals the fiscal year's income and expense lines.
func (s *financeService) Summary(ctx context.Context, fiscalYear int) (dtos.FinanceSummaryResponse, error) {
	items, err := s.ListBudgetItems(ctx, fiscalYear)
	if err != nil {
		return dtos.FinanceSummaryResponse{}, err
	}
	out := dtos.FinanceSummaryResponse{FiscalYear: fiscalYear}
	for _, b := range items {
		switch b.Type {
		case models.BudgetTypeIncome:
			out.TotalIncome += b.Amount
		case models.BudgetTypeExpense:
			out.TotalExpenses += b.Amount
		}
	}
	out.Balance = out.TotalIncome - out.TotalExpenses
	return out, nil
}
