package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wealthzoneai/hrm-core-go/internal/domain/leave"
)

type LeaveJobs struct {
	leaveSvc      leave.LeaveService
	sweepInterval time.Duration
}

func NewLeaveJobs(leaveSvc leave.LeaveService, sweepInterval time.Duration) *LeaveJobs {
	return &LeaveJobs{
		leaveSvc:      leaveSvc,
		sweepInterval: sweepInterval,
	}
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("complete_elapsed_leaves", j.sweepInterval, j.CompleteElapsedLeaves)
}

// CompleteElapsedLeaves promotes hr_approved requests whose leave period has
// fully passed to completed.
func (j *LeaveJobs) CompleteElapsedLeaves(ctx context.Context) error {
	slog.Info("Cron: Starting complete elapsed leaves job")

	count, err := j.leaveSvc.CompleteElapsed(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to complete elapsed leaves: %w", err)
	}

	slog.Info("Cron: Completed elapsed leaves", "count", count)
	return nil
}
