package models

import "time"

const (
	LevyStatusPending = "pending"
	LevyStatusPaid    = "paid"
	LevyStatusOverdue = "overdue"
)

// Levy is a periodic charge billed to a unit. Status does not transition
// automatically when the due date passes; the overdue reporter only logs
// the discrepancy.
type Levy struct {
	ID      int64     `json:"id"`
	Unit    string    `json:"unit"`
	Amount  float64   `json:"amount"`
	DueDate time.Time `json:"due_date"`
	Status  string    `json:"status"`
	Period  string    `json:"period"`
}
