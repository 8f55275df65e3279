package job

import (
	"context"

	"github.com/gaborage/go-bricks/scheduler"
)

// Dispatcher is the slice of the email service the job needs.
type Dispatcher interface {
	DispatchDue(ctx context.Context) int
}

// DispatchJob promotes due scheduled notifications through the delivery
// simulation.
type DispatchJob struct {
	Service Dispatcher
}

// Execute implements scheduler.Job
func (j *DispatchJob) Execute(ctx scheduler.JobContext) error {
	logger := ctx.Logger()

	dispatched := j.Service.DispatchDue(context.Background())
	if dispatched > 0 {
		logger.Info().
			Str("jobID", ctx.JobID()).
			Int("dispatched", dispatched).
			Msg("Dispatched scheduled emails")
	}

	return nil
}
