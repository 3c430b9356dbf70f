package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/guard"
)

var ErrAssignMasterCommandIsNotConstructed = errors.New(
	"AssignMasterCommand must be created via NewAssignMasterCommand constructor",
)

// AssignMasterCommand represents a request to assign the best available
// master to a pending service order.
type AssignMasterCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignMasterCommand creates a command to assign a master to the given order.
func NewAssignMasterCommand(orderID kernel.UUID) (AssignMasterCommand, error) {
	cmd := AssignMasterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AssignMasterCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignMasterCommand) Validate() error {
	return c.guard.Validate(ErrAssignMasterCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignMasterCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AssignMasterCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
