package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// AssignmentJob periodically packs waiting orders into shipments. Each sweep
// walks all registered couriers; a courier with an active shipment gets its
// current snapshot back, so repeated sweeps are safe.
type AssignmentJob struct {
	assignHandler   commands.AssignOrdersCommandHandler
	couriersHandler queries.GetAllCouriersQueryHandler
	cron            *cron.Cron
	logger          *slog.Logger
}

// NewAssignmentJob creates a job that assigns waiting orders to couriers.
func NewAssignmentJob(
	assignHandler commands.AssignOrdersCommandHandler,
	couriersHandler queries.GetAllCouriersQueryHandler,
	logger *slog.Logger,
) *AssignmentJob {
	return &AssignmentJob{
		assignHandler:   assignHandler,
		couriersHandler: couriersHandler,
		cron:            cron.New(cron.WithSeconds()),
		logger:          logger.With("component", "assignment_job"),
	}
}

// Start begins the assignment sweep, running every five seconds.
func (j *AssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Assignment job started (running every five seconds)")
	return nil
}

// Stop stops the assignment job.
func (j *AssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Assignment job stopped")
}

func (j *AssignmentJob) sweep() {
	ctx := context.Background()

	couriers, err := j.couriersHandler.Handle(ctx, queries.NewGetAllCouriersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Assignment sweep failed to list couriers", "error", err)
		return
	}

	for _, courier := range couriers {
		cmd, err := commands.NewAssignOrdersCommand(courier.ID, time.Now().UTC())
		if err != nil {
			j.logger.ErrorContext(ctx, "Assignment sweep built an invalid command",
				"courierID", courier.ID, "error", err)
			continue
		}

		if _, err = j.assignHandler.Handle(ctx, cmd); err != nil {
			// a courier deleted mid-sweep is not a system failure
			if !errors.Is(err, errs.ErrObjectNotFound) {
				j.logger.ErrorContext(ctx, "Assignment sweep failed for courier",
					"courierID", courier.ID, "error", err)
			}
		}
	}
}
