package controllers

import (
	"net/http"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/services"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

type MaintenanceController struct {
	svc services.MaintenanceService
}

func NewMaintenanceController(svc services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{svc: svc}
}

// ----------------------------------------------------------------
// GET /api/v1/maintenance-requests?search=
// ----------------------------------------------------------------
func (c *MaintenanceController) ListRequestsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := c.svc.ListRequests(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		respondServiceError(w, err, "Failed to list maintenance requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MaintenanceRequestsFromModels(list))
}

// ----------------------------------------------------------------
// GET /api/v1/maintenance-requests/{id}
// ----------------------------------------------------------------
func (c *MaintenanceController) GetRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m, err := c.svc.GetRequest(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "Failed to fetch maintenance request")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MaintenanceRequestFromModel(m))
}

// ----------------------------------------------------------------
// POST /api/v1/maintenance-requests
// ----------------------------------------------------------------
func (c *MaintenanceController) CreateRequestHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := requireSession(w, r)
	if !ok {
		return
	}
	var req dtos.CreateMaintenanceRequestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	m, err := c.svc.CreateRequest(r.Context(), sess.DisplayName, req)
	if err != nil {
		respondServiceError(w, err, "Failed to submit maintenance request")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.MaintenanceRequestFromModel(m))
}

// ----------------------------------------------------------------
// PATCH /api/v1/maintenance-requests/{id}
// ----------------------------------------------------------------
func (c *MaintenanceController) UpdateRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateMaintenanceRequestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	m, err := c.svc.UpdateRequest(r.Context(), id, req)
	if err != nil {
		respondServiceError(w, err, "Failed to update maintenance request")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MaintenanceRequestFromModel(m))
}

// ----------------------------------------------------------------
// PATCH /api/v1/maintenance-requests/{id}/status
// ----------------------------------------------------------------
func (c *MaintenanceController) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateMaintenanceStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	m, err := c.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondServiceError(w, err, "Failed to update request status")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MaintenanceRequestFromModel(m))
}

// ----------------------------------------------------------------
// DELETE /api/v1/maintenance-requests/{id}
// ----------------------------------------------------------------
func (c *MaintenanceController) DeleteRequestHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.svc.DeleteRequest(r.Context(), id); err != nil {
		respondServiceError(w, err, "Failed to delete maintenance request")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Maintenance request deleted"})
}
