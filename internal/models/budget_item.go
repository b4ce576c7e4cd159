package models

const (
	BudgetTypeIncome  = "income"
	BudgetTypeExpense = "expense"
)

type BudgetItem struct {
	ID         int64   `json:"id"`
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	FiscalYear int     `json:"fiscal_year"`
}
