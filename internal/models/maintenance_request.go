package models

import "time"

const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusInProgress = "in-progress"
	MaintenanceStatusScheduled  = "scheduled"
	MaintenanceStatusCompleted  = "completed"

	MaintenancePriorityLow    = "low"
	MaintenancePriorityMedium = "medium"
	MaintenancePriorityHigh   = "high"
)

// MaintenanceRequest lifecycle: created as "pending"; any status is
// reachable from any other via update, there is no transition table.
type MaintenanceRequest struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SubmittedBy string    `json:"submitted_by"`
	Unit        string    `json:"unit"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
}
