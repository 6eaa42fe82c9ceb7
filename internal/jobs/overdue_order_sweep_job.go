package jobs

import (
	"context"
	"log/slog"

	"tawsil/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueOrderSweepJob periodically counts NEW orders whose delivery time
// has passed without a courier taking them. The count feeds operational
// logs; the orders themselves stay NEW and surface as late in the listings.
type OverdueOrderSweepJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOverdueOrderSweepJob creates the sweep job. It runs once a minute.
func NewOverdueOrderSweepJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *OverdueOrderSweepJob {
	return &OverdueOrderSweepJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "overdue_order_sweep_job"),
	}
}

// Start begins the sweep job on a one-minute schedule.
func (j *OverdueOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		count, err := j.uowFactory.Create().OrderRepository().CountOverdue(ctx)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue order sweep failed", "error", err)
			return
		}

		if count > 0 {
			j.logger.WarnContext(ctx, "Unclaimed orders past their delivery time", "count", count)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue order sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *OverdueOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue order sweep job stopped")
}
