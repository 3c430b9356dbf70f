package commands

import (
	"errors"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/pkg/errs"
	"fieldservice/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// CreateOrderCommand represents a request to register a new service order.
// Encapsulates the order details including the service location and optional
// customer contact information.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	location := kernel.NewGeoPoint(55.7558, 37.6173)
//	cmd, err := NewCreateOrderCommand(orderID, "Faucet repair", nil, nil, location)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	title       string
	description *string
	customer    *order.Customer
	location    kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new service order.
// Validates that the order ID is valid, the title is non-empty, and the
// location is properly constructed. Description and customer are optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	title string,
	description *string,
	customer *order.Customer,
	location kernel.GeoPoint,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		description: description,
		customer:    customer,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTitle(title),
		orderCommand.setLocation(location),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Title returns the short summary of the requested work.
func (c CreateOrderCommand) Title() string {
	return c.title
}

// Description returns the optional longer description.
func (c CreateOrderCommand) Description() *string {
	return c.description
}

// Customer returns the optional customer contact details.
func (c CreateOrderCommand) Customer() *order.Customer {
	return c.customer
}

// Location returns the service location.
func (c CreateOrderCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *CreateOrderCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
