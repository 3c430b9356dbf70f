package commands

import (
	"context"
	"errors"

	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/core/domain/services"
)

// ErrNoAvailableMasters is returned when no master can be assigned to the
// order because every master is unavailable or none exist.
var ErrNoAvailableMasters = errors.New("no available masters found for assignment")

// AssignMasterCommandHandler handles the assignment workflow: it picks the
// best available master for an order and records the assignment.
//
// The check that the order has no master yet and the write of the new
// assignment run inside a single unit of work, so two concurrent assignment
// attempts for the same order cannot both succeed.
type AssignMasterCommandHandler struct {
	uowFactory AssignmentUoWFactory
	selector   services.MasterSelector
}

// NewAssignMasterCommandHandler creates a handler for master assignment.
// Requires an AssignmentUoWFactory for transactional access to orders and
// masters, and a MasterSelector implementing the ranking policy.
func NewAssignMasterCommandHandler(
	uowFactory AssignmentUoWFactory,
	selector services.MasterSelector,
) AssignMasterCommandHandler {
	return AssignMasterCommandHandler{
		uowFactory: uowFactory,
		selector:   selector,
	}
}

// Handle processes the assignment command.
//
// Workflow:
//  1. Load the order; a missing order surfaces as an object-not-found error
//  2. Fail with order.ErrMasterAlreadyAssigned if a master is already set,
//     leaving the existing assignment unchanged
//  3. Build the candidate list from available masters and their workloads
//  4. Run the selector; no candidate surfaces as ErrNoAvailableMasters
//  5. Record the assignment and commit
func (h *AssignMasterCommandHandler) Handle(ctx context.Context, cmd AssignMasterCommand) error {
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

	if aggregate.Master() != nil {
		return order.ErrMasterAlreadyAssigned
	}

	candidates, err := h.collectCandidates(ctx, uow)
	if err != nil {
		return err
	}

	best, err := h.selector.SelectBest(aggregate.Location(), candidates)
	if err != nil {
		if errors.Is(err, services.ErrMasterNotFound) {
			return ErrNoAvailableMasters
		}
		return err
	}

	if err = aggregate.Assign(best.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// collectCandidates loads the available masters and derives each one's
// workload. Loads are read fresh on every call so the ranking always sees
// current state.
func (h *AssignMasterCommandHandler) collectCandidates(
	ctx context.Context,
	uow AssignmentUoW,
) ([]services.Candidate, error) {
	masterRepo := uow.MasterRepository()

	masters, err := masterRepo.GetAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]services.Candidate, 0, len(masters))
	for _, m := range masters {
		load, err := masterRepo.CountActiveOrders(ctx, m.ID())
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, services.Candidate{
			Master:       m,
			ActiveOrders: load,
		})
	}

	return candidates, nil
}
