package commands

import (
	"errors"
	"fmt"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/order"
	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is the plain shape of one requested order line.
type ItemInput struct {
	ProductID    string
	Name         string
	Manufacturer string
	UnitPrice    float64
	Quantity     int
}

// CreateOrderCommand represents a buyer's request to place a new order.
// The seller is not part of the request: it is chosen by the assignment
// flow from the order's origin point.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(buyerActor, items, 33.0,
//	    origin, "12 MG Road, Delhi", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoSellerAvailable) {
//	    // no store near the buyer; nothing was persisted
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor             auth.Actor
	items             []order.Item
	totalAmount       float64
	origin            kernel.GeoPoint
	address           string
	prescriptionImage string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// The actor must be a buyer; line items are validated individually and the
// declared total is checked against them by the order aggregate.
func NewCreateOrderCommand(
	actor auth.Actor,
	items []ItemInput,
	totalAmount float64,
	origin kernel.GeoPoint,
	address string,
	prescriptionImage string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		totalAmount:       totalAmount,
		prescriptionImage: prescriptionImage,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setItems(items),
		cmd.setOrigin(origin),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the buyer placing the order.
func (c CreateOrderCommand) Actor() auth.Actor {
	return c.actor
}

// Items returns the validated order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// TotalAmount returns the declared order total.
func (c CreateOrderCommand) TotalAmount() float64 {
	return c.totalAmount
}

// Origin returns the point the order is placed from.
func (c CreateOrderCommand) Origin() kernel.GeoPoint {
	return c.origin
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// PrescriptionImage returns the optional prescription reference, or "".
func (c CreateOrderCommand) PrescriptionImage() string {
	return c.prescriptionImage
}

func (c *CreateOrderCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsBuyer() {
		return errs.NewForbiddenErrorWithCause(
			fmt.Errorf("only buyers can place orders, got role %s", actor.Role()))
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []ItemInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := order.NewItem(
			input.ProductID, input.Name, input.Manufacturer,
			input.UnitPrice, input.Quantity)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setOrigin(origin kernel.GeoPoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	c.origin = origin
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
