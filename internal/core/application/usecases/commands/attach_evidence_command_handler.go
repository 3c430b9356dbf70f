package commands

import (
	"context"

	"fieldservice/internal/core/domain/model/order"
)

// AttachEvidenceCommandHandler handles attaching completion proof records
// to orders. Attaching evidence never changes the order's status.
type AttachEvidenceCommandHandler struct {
	uowFactory EvidenceUoWFactory
}

// NewAttachEvidenceCommandHandler creates a handler for evidence attachment.
func NewAttachEvidenceCommandHandler(uowFactory EvidenceUoWFactory) AttachEvidenceCommandHandler {
	return AttachEvidenceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the evidence attachment command.
// Verifies the target order exists, then appends the evidence record.
// No record is created when any step fails.
func (h *AttachEvidenceCommandHandler) Handle(ctx context.Context, cmd AttachEvidenceCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	evidence, err := order.NewEvidence(
		cmd.EvidenceID(),
		cmd.OrderID(),
		cmd.MediaType(),
		cmd.URL(),
		cmd.Location(),
		cmd.CapturedAt(),
		cmd.Meta(),
	)
	if err != nil {
		return err
	}

	if err = uow.EvidenceRepository().Add(ctx, evidence); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
