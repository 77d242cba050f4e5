package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAmountIsInvalid = errors.New("amount must be greater than 0")
	ErrVolumeIsInvalid = errors.New("pages and slides must be non-negative and not both zero")
)

// CreateOrderCommand represents a client's request to post a new work order.
// Encapsulates the price, the volume in pages and slides, and the work type
// that selects the piece rate at settlement.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, amount, 10, 0, order.Essay)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s posted and open for bids", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientID kernel.UUID
	amount   kernel.Money
	pages    int
	slides   int
	workType order.WorkType

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to post a new work order.
// Validates identifiers, a positive amount, non-negative volume with at
// least one page or slide, and a known work type.
func NewCreateOrderCommand(
	orderID, clientID kernel.UUID,
	amount kernel.Money,
	pages, slides int,
	workType order.WorkType,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setClientID(clientID),
		orderCommand.setAmount(amount),
		orderCommand.setVolume(pages, slides),
		orderCommand.setWorkType(workType),
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

// ClientID returns the posting client's identifier.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Amount returns the price charged to the client.
func (c CreateOrderCommand) Amount() kernel.Money {
	return c.amount
}

// Pages returns the order's page count.
func (c CreateOrderCommand) Pages() int {
	return c.pages
}

// Slides returns the order's slide count.
func (c CreateOrderCommand) Slides() int {
	return c.slides
}

// WorkType returns the order's work classification.
func (c CreateOrderCommand) WorkType() order.WorkType {
	return c.workType
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *CreateOrderCommand) setVolume(pages, slides int) error {
	if pages < 0 || slides < 0 || pages+slides == 0 {
		return ErrVolumeIsInvalid
	}

	c.pages = pages
	c.slides = slides
	return nil
}

func (c *CreateOrderCommand) setWorkType(workType order.WorkType) error {
	if err := workType.Validate(); err != nil {
		return err
	}

	c.workType = workType
	return nil
}
