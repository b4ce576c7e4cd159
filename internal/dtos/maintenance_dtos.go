package dtos

import (
	"time"

	"github.com/legend1349/USYDSTRATA2025/internal/models"
)

type MaintenanceRequestResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SubmittedBy string `json:"submittedBy"`
	Unit        string `json:"unit"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

type CreateMaintenanceRequestRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Unit        string `json:"unit" validate:"required"`
	Priority    string `json:"priority" validate:"required,oneof=low medium high"`
}

type UpdateMaintenanceRequestRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Unit        *string `json:"unit"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending in-progress scheduled completed"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in-progress scheduled completed"`
}

func MaintenanceRequestFromModel(m *models.MaintenanceRequest) MaintenanceRequestResponse {
	return MaintenanceRequestResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		SubmittedBy: m.SubmittedBy,
		Unit:        m.Unit,
		Date:        m.Date.Format(DateLayout),
		Status:      m.Status,
		Priority:    m.Priority,
	}
}

func MaintenanceRequestsFromModels(list []*models.MaintenanceRequest) []MaintenanceRequestResponse {
	out := make([]MaintenanceRequestResponse, 0, len(list))
	for _, m := range list {
		out = append(out, MaintenanceRequestFromModel(m))
	}
	return out
}

// ToModel builds a new request: submitted now, by submittedBy, in status
// "pending".
func (r CreateMaintenanceRequestRequest) ToModel(submittedBy string, now time.Time) *models.MaintenanceRequest {
	return &models.MaintenanceRequest{
		Title:       r.Title,
		Description: r.Description,
		SubmittedBy: submittedBy,
		Unit:        r.Unit,
		Date:        now,
		Status:      models.MaintenanceStatusPending,
		Priority:    r.Priority,
	}
}

func (r UpdateMaintenanceRequestRequest) Apply(m *models.MaintenanceRequest) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = *r.Description
	}
	if r.Unit != nil {
		m.Unit = *r.Unit
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.Priority != nil {
		m.Priority = *r.Priority
	}
}
