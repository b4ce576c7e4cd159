// Package jobs holds background schedules that run alongside the HTTP
// server.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/legend1349/USYDSTRATA2025/internal/dtos"
	"github.com/legend1349/USYDSTRATA2025/internal/models"
	"github.com/legend1349/USYDSTRATA2025/internal/repositories"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

// OverdueLevyReporter periodically logs levies whose due date has passed
// but that are still marked pending. It deliberately does NOT flip them to
// overdue: that transition stays a manual decision, matching how the
// portal has always worked.
type OverdueLevyReporter struct {
	levies repositories.LevyRepository
	cron   *cron.Cron
	now    func() time.Time
}

func NewOverdueLevyReporter(levies repositories.LevyRepository) *OverdueLevyReporter {
	return &OverdueLevyReporter{
		levies: levies,
		cron:   cron.New(),
		now:    time.Now,
	}
}

// Start schedules the hourly report and runs one pass immediately.
func (r *OverdueLevyReporter) Start() error {
	if _, err := r.cron.AddFunc("@hourly", r.Run); err != nil {
		return err
	}
	r.cron.Start()
	go r.Run()
	return nil
}

func (r *OverdueLevyReporter) Stop() {
	r.cron.Stop()
}

// Run logs one line per pending levy that is past due.
func (r *OverdueLevyReporter) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	overdue, err := r.levies.ListPastDueWithStatus(ctx, models.LevyStatusPending, r.now())
	if err != nil {
		utils.Logger.WithError(err).Warn("Overdue levy report failed")
		return
	}
	for _, l := range overdue {
		utils.Logger.Warnf(
			"Levy %d for unit %s (%s, $%.2f) was due %s and is still pending",
			l.ID, l.Unit, l.Period, l.Amount, l.DueDate.Format(dtos.DateLayout),
		)
	}
	if len(overdue) > 0 {
		utils.Logger.Infof("Overdue levy report: %d levies past due", len(overdue))
	}
}
