// Package jobs provides scheduled background tasks, built on
// github.com/robfig/cron/v3.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(uowFactory, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs

import (
	"fmt"
	"log/slog"

	"tawsil/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueOrderSweepJob *OverdueOrderSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *JobManager {
	return &JobManager{
		overdueOrderSweepJob: NewOverdueOrderSweepJob(uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueOrderSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue order sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueOrderSweepJob.Stop()
}
