package dtos

import "github.com/legend1349/USYDSTRATA2025/internal/models"

// ---------------------------------------------------------------------------
// Levies
// ---------------------------------------------------------------------------

type LevyResponse struct {
	ID      int64   `json:"id"`
	Unit    string  `json:"unit"`
	Amount  float64 `json:"amount"`
	DueDate string  `json:"dueDate"`
	Status  string  `json:"status"`
	Period  string  `json:"period"`
}

type CreateLevyRequest struct {
	Unit    string  `json:"unit" validate:"required"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	DueDate string  `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Period  string  `json:"period" validate:"required"`
	Status  string  `json:"status" validate:"omitempty,oneof=pending paid overdue"`
}

type UpdateLevyRequest struct {
	Unit    *string  `json:"unit"`
	Amount  *float64 `json:"amount" validate:"omitempty,gt=0"`
	DueDate *string  `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	Period  *string  `json:"period"`
	Status  *string  `json:"status" validate:"omitempty,oneof=pending paid overdue"`
}

func LevyFromModel(l *models.Levy) LevyResponse {
	return LevyResponse{
		ID:      l.ID,
		Unit:    l.Unit,
		Amount:  l.Amount,
		DueDate: l.DueDate.Format(DateLayout),
		Status:  l.Status,
		Period:  l.Period,
	}
}

func LeviesFromModels(list []*models.Levy) []LevyResponse {
	out := make([]LevyResponse, 0, len(list))
	for _, l := range list {
		out = append(out, LevyFromModel(l))
	}
	return out
}

func (r CreateLevyRequest) ToModel() *models.Levy {
	status := r.Status
	if status == "" {
		status = models.LevyStatusPending
	}
	return &models.Levy{
		Unit:    r.Unit,
		Amount:  r.Amount,
		DueDate: parseDateOrNow(r.DueDate),
		Status:  status,
		Period:  r.Period,
	}
}

func (r UpdateLevyRequest) Apply(l *models.Levy) {
	if r.Unit != nil {
		l.Unit = *r.Unit
	}
	if r.Amount != nil {
		l.Amount = *r.Amount
	}
	if r.DueDate != nil {
		l.DueDate = parseDateOrNow(*r.DueDate)
	}
	if r.Period != nil {
		l.Period = *r.Period
	}
	if r.Status != nil {
		l.Status = *r.Status
	}
}

// ---------------------------------------------------------------------------
// Budget
// ---------------------------------------------------------------------------

type BudgetItemResponse struct {
	ID         int64   `json:"id"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	FiscalYear int     `json:"fiscalYear"`
}

type CreateBudgetItemRequest struct {
	Category   string  `json:"category" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Type       string  `json:"type" validate:"required,oneof=income expense"`
	FiscalYear int     `json:"fiscalYear" validate:"required"`
}

type UpdateBudgetItemRequest struct {
	Category   *string  `json:"category"`
	Amount     *float64 `json:"amount" validate:"omitempty,gt=0"`
	Type       *string  `json:"type" validate:"omitempty,oneof=income expense"`
	FiscalYear *int     `json:"fiscalYear"`
}

type FinanceSummaryResponse struct {
	FiscalYear    int     `json:"fiscalYear"`
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	Balance       float64 `json:"balance"`
}

func BudgetItemFromModel(b *models.BudgetItem) BudgetItemResponse {
	return BudgetItemResponse{
		ID:         b.ID,
		Category:   b.Category,
		Amount:     b.Amount,
		Type:       b.Type,
		FiscalYear: b.FiscalYear,
	}
}

func BudgetItemsFromModels(list []*models.BudgetItem) []BudgetItemResponse {
	out := make([]BudgetItemResponse, 0, len(list))
	for _, b := range list {
		out = append(out, BudgetItemFromModel(b))
	}
	return out
}

func (r CreateBudgetItemRequest) ToModel() *models.BudgetItem {
	return &models.BudgetItem{
		Category:   r.Category,
		Amount:     r.Amount,
		Type:       r.Type,
		FiscalYear: r.FiscalYear,
	}
}

func (r UpdateBudgetItemRequest) Apply(b *models.BudgetItem) {
	if r.Category != nil {
		b.Category = *r.Category
	}
	if r.Amount != nil {
		b.Amount = *r.Amount
	}
	if r.Type != nil {
		b.Type = *r.Type
	}
	if r.FiscalYear != nil {
		b.FiscalYear = *r.FiscalYear
	}
}
