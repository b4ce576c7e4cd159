package controllers

import (
	"net/http"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/services"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

type StrataRollController struct {
	svc services.StrataRollService
}

func NewStrataRollController(svc services.StrataRollService) *StrataRollController {
	return &StrataRollController{svc: svc}
}

// ----------------------------------------------------------------
// GET /api/v1/owners?search=
// ----------------------------------------------------------------
func (c *StrataRollController) ListOwnersHandler(w http.ResponseWriter, r *http.Request) {
	owners, err := c.svc.ListOwners(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondServiceError(w, err, "Failed to list owners")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.OwnersFromModels(owners))
}

// ----------------------------------------------------------------
// GET /api/v1/owners/{id}
// ----------------------------------------------------------------
func (c *StrataRollController) GetOwnerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	o, err := c.svc.GetOwner(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to fetch owner")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.OwnerFromModel(o))
}

// ----------------------------------------------------------------
// POST /api/v1/owners
// ----------------------------------------------------------------
func (c *StrataRollController) CreateOwnerHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateOwnerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	o, err := c.svc.CreateOwner(r.Context(), req)
	if err != nil {
		respondServiceError(w, err, "Failed to add owner")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.OwnerFromModel(o))
}

// ----------------------------------------------------------------
// PATCH /api/v1/owners/{id}
// ----------------------------------------------------------------
func (c *StrataRollController) UpdateOwnerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateOwnerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	o, err := c.svc.UpdateOwner(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update owner")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.OwnerFromModel(o))
}

// ----------------------------------------------------------------
// DELETE /api/v1/owners/{id}
// ----------------------------------------------------------------
func (c *StrataRollController) DeleteOwnerHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteOwner(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to remove owner")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Owner removed"})
}
