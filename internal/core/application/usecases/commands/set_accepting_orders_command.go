package commands

import (
	"errors"
	"fmt"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

var ErrSetAcceptingOrdersCommandIsNotConstructed = errors.New(
	"SetAcceptingOrdersCommand must be created via NewSetAcceptingOrdersCommand constructor",
)

// SetAcceptingOrdersCommand represents a seller's request to open or close
// their store for new order assignment.
type SetAcceptingOrdersCommand struct { //nolint:recvcheck //using for validation
	actor     auth.Actor
	accepting bool

	guard guard.ConstructorGuard
}

// NewSetAcceptingOrdersCommand creates a command to flip the accepting flag.
// The actor must be a seller; the flag applies to the actor's own store.
func NewSetAcceptingOrdersCommand(actor auth.Actor, accepting bool) (SetAcceptingOrdersCommand, error) {
	cmd := SetAcceptingOrdersCommand{
		accepting: accepting,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setActor(actor); err != nil {
		return SetAcceptingOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAcceptingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrSetAcceptingOrdersCommandIsNotConstructed)
}

// Actor returns the seller performing the change.
func (c SetAcceptingOrdersCommand) Actor() auth.Actor {
	return c.actor
}

// Accepting returns the desired state of the accepting flag.
func (c SetAcceptingOrdersCommand) Accepting() bool {
	return c.accepting
}

func (c *SetAcceptingOrdersCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsSeller() {
		return errs.NewForbiddenErrorWithCause(
			fmt.Errorf("only sellers can change the accepting flag, got role %s", actor.Role()))
	}

	c.actor = actor
	return nil
}
