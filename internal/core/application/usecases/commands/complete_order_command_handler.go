package commands

import (
	"context"
	"errors"

	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/core/domain/services"
)

// ErrValidEvidenceRequired is returned when completing an order whose attached
// evidence does not satisfy the proof-of-completion requirement.
var ErrValidEvidenceRequired = errors.New(
	"valid ADL media with GPS coordinates and timestamp is required",
)

// CompleteOrderCommandHandler handles order completion. Completion is gated
// on the completion policy: at least one attached evidence record must carry
// both GPS coordinates and a capture timestamp.
type CompleteOrderCommandHandler struct {
	uowFactory EvidenceUoWFactory
	policy     services.CompletionPolicy
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	uowFactory EvidenceUoWFactory,
	policy services.CompletionPolicy,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the completion command.
//
// Workflow:
//  1. Load the order; a missing order surfaces as an object-not-found error
//  2. Fail with order.ErrOrderAlreadyCompleted if the order is already completed
//  3. Fetch the order's evidence and run the completion policy; an unmet
//     requirement fails with ErrValidEvidenceRequired
//  4. Transition the order to completed and commit
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.Status() == order.Completed {
		return order.ErrOrderAlreadyCompleted
	}

	evidence, err := uow.EvidenceRepository().GetAllForOrder(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if !h.policy.HasValidEvidence(evidence) {
		return ErrValidEvidenceRequired
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
