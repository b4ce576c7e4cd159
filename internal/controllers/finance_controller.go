package controllers

import (
	"net/http"
	"strconv"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/services"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

type FinanceController struct {
	svc services.FinanceService
}

func NewFinanceController(svc services.FinanceService) *FinanceController {
	return &FinanceController{svc: svc}
}

// ----------------------------------------------------------------
// GET /api/v1/levies?search=
// ----------------------------------------------------------------
func (c *FinanceController) ListLeviesHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.svc.ListLevies(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondServiceError(w, err, "Failed to list levies")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.LeviesFromModels(list))
}

// ----------------------------------------------------------------
// POST /api/v1/levies
// ----------------------------------------------------------------
func (c *FinanceController) CreateLevyHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateLevyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	l, err := c.svc.CreateLevy(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, "Failed to create levy")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.LevyFromModel(l))
}

// ----------------------------------------------------------------
// GET /api/v1/levies/{id}
// ----------------------------------------------------------------
func (c *FinanceController) GetLevyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	l, err := c.svc.GetLevy(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to fetch levy")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.LevyFromModel(l))
}

// ----------------------------------------------------------------
// PATCH /api/v1/levies/{id}
// ----------------------------------------------------------------
func (c *FinanceController) UpdateLevyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateLevyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	l, err := c.svc.UpdateLevy(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update levy")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.LevyFromModel(l))
}

// ----------------------------------------------------------------
// DELETE /api/v1/levies/{id}
// ----------------------------------------------------------------
func (c *FinanceController) DeleteLevyHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteLevy(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete levy")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Levy deleted"})
}

// ----------------------------------------------------------------
// GET /api/v1/budget-items?fiscalYear=
// ----------------------------------------------------------------
func (c *FinanceController) ListBudgetItemsHandler(w http.ResponseWriter, r *http.Request) {
	fy, ok := fiscalYearQuery(w, r)
	if !ok {
		return
	}
	list, err := c.svc.ListBudgetItems(r.Context(), fy)
	if err != nil {
		respondServiceError(w, err, "Failed to list budget items")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.BudgetItemsFromModels(list))
}

// ----------------------------------------------------------------
// GET /api/v1/budget-items/{id}
// ----------------------------------------------------------------
func (c *FinanceController) GetBudgetItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	b, err := c.svc.GetBudgetItem(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to fetch budget item")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.BudgetItemFromModel(b))
}

// ----------------------------------------------------------------
// POST /api/v1/budget-items
// ----------------------------------------------------------------
func (c *FinanceController) CreateBudgetItemHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateBudgetItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	b, err := c.svc.CreateBudgetItem(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, "Failed to create budget item")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.BudgetItemFromModel(b))
}

// ----------------------------------------------------------------
// PATCH /api/v1/budget-items/{id}
// ----------------------------------------------------------------
func (c *FinanceController) UpdateBudgetItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateBudgetItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	b, err := c.svc.UpdateBudgetItem(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update budget item")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.BudgetItemFromModel(b))
}

// ----------------------------------------------------------------
// DELETE /api/v1/budget-items/{id}
// ----------------------------------------------------------------
func (c *FinanceController) DeleteBudgetItemHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteBudgetItem(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete budget item")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Budget item deleted"})
}

// ----------------------------------------------------------------
// GET /api/v1/finances/summary?fiscalYear=
// ----------------------------------------------------------------
func (c *FinanceController) FinanceSummaryHandler(w http.ResponseWriter, r *http.Request) {
	fy, ok := fiscalYearQuery(w, r)
	if !ok {
		return
	}
	summary, err := c.svc.Summary(r.Context(), fy)
	if err != nil {
		respondServiceError(w, err, "Failed to build finance summary")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, summary)
}

// fiscalYearQuery parses the optional fiscalYear query param; 0 means all
// years.
func fiscalYearQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("fiscalYear")
	if raw == "" {
		return 0, true
	}
	fy, err := strconv.Atoi(raw)
	if err != nil || fy < 0 {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid fiscalYear", nil, err,
		)
		return 0, false
	}
	return fy, true
}
