package commands

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a new
// lifecycle status. An optional deliverable reference can be attached in the
// same step, which is how workers deliver: attach the artifact and move to
// delivered together.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	target         order.Status
	actor          kernel.UUID
	deliverableRef string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// The actor is whoever requested the move (client, worker or manager) and is
// carried into the status-change notification. The deliverable reference may
// be empty.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor kernel.UUID,
	deliverableRef string,
) (TransitionOrderCommand, error) {
	transitionCommand := TransitionOrderCommand{
		deliverableRef: deliverableRef,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setTarget(target),
		transitionCommand.setActor(actor),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested lifecycle status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// Actor returns who requested the transition.
func (c TransitionOrderCommand) Actor() kernel.UUID {
	return c.actor
}

// DeliverableRef returns the deliverable artifact reference, if provided.
func (c TransitionOrderCommand) DeliverableRef() string {
	return c.deliverableRef
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
