package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fieldservice/internal/core/application/usecases/commands"
	"fieldservice/internal/core/application/usecases/queries"
	"fieldservice/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// OrderAssignmentJob periodically dispatches pending orders to masters.
// Every five seconds it picks the oldest order in the "new" status and runs
// the assignment workflow for it.
type OrderAssignmentJob struct {
	pendingHandler queries.GetNextPendingOrderQueryHandler
	assignHandler  commands.AssignMasterCommandHandler
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewOrderAssignmentJob creates a new job for automatic order assignment.
func NewOrderAssignmentJob(
	pendingHandler queries.GetNextPendingOrderQueryHandler,
	assignHandler commands.AssignMasterCommandHandler,
	logger *slog.Logger,
) *OrderAssignmentJob {
	return &OrderAssignmentJob{
		pendingHandler: pendingHandler,
		assignHandler:  assignHandler,
		cron:           cron.New(cron.WithSeconds()),
		logger:         logger.With("component", "order_assignment_job"),
	}
}

// Start begins the assignment job, running every five seconds.
func (j *OrderAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order assignment job started (running every 5 seconds)")
	return nil
}

// Stop stops the assignment job.
func (j *OrderAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order assignment job stopped")
}

func (j *OrderAssignmentJob) run() {
	ctx := context.Background()

	pending, err := j.pendingHandler.Handle(ctx, queries.NewGetNextPendingOrderQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Pending order lookup failed", "error", err)
		return
	}
	if pending == nil {
		return
	}

	cmd, err := commands.NewAssignMasterCommand(pending.OrderID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Assignment command construction failed", "error", err)
		return
	}

	if err = j.assignHandler.Handle(ctx, cmd); err != nil {
		// No free masters or a concurrent manual assignment are normal
		// outcomes, not system failures.
		if errors.Is(err, commands.ErrNoAvailableMasters) ||
			errors.Is(err, order.ErrMasterAlreadyAssigned) {
			j.logger.DebugContext(ctx, "Order not assigned",
				"orderId", pending.OrderID.String(), "reason", err)
			return
		}

		j.logger.ErrorContext(ctx, "Order assignment job failed",
			"orderId", pending.OrderID.String(), "error", err)
	}
}
