package commands

import (
	"errors"
	"fmt"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/seller"
	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

var ErrReviewSellerDocumentsCommandIsNotConstructed = errors.New(
	"ReviewSellerDocumentsCommand must be created via NewReviewSellerDocumentsCommand constructor",
)

// ReviewSellerDocumentsCommand represents a document review outcome for a
// seller: the full set of per-document statuses after the review.
type ReviewSellerDocumentsCommand struct { //nolint:recvcheck //using for validation
	actor    auth.Actor
	sellerID kernel.UUID
	flags    seller.DocumentFlags

	guard guard.ConstructorGuard
}

// NewReviewSellerDocumentsCommand creates a command to record a document
// review. Buyers cannot review documents; every per-document status must be
// a defined value.
func NewReviewSellerDocumentsCommand(
	actor auth.Actor,
	sellerID kernel.UUID,
	flags seller.DocumentFlags,
) (ReviewSellerDocumentsCommand, error) {
	cmd := ReviewSellerDocumentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setActor(actor), cmd.setSellerID(sellerID), cmd.setFlags(flags)); err != nil {
		return ReviewSellerDocumentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewSellerDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrReviewSellerDocumentsCommandIsNotConstructed)
}

// Actor returns the identity performing the review.
func (c ReviewSellerDocumentsCommand) Actor() auth.Actor {
	return c.actor
}

// SellerID returns the reviewed seller's identifier.
func (c ReviewSellerDocumentsCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Flags returns the per-document review outcomes.
func (c ReviewSellerDocumentsCommand) Flags() seller.DocumentFlags {
	return c.flags
}

func (c *ReviewSellerDocumentsCommand) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsBuyer() {
		return errs.NewForbiddenErrorWithCause(
			fmt.Errorf("buyers cannot review seller documents, got actor %s", actor.ID()))
	}

	c.actor = actor
	return nil
}

func (c *ReviewSellerDocumentsCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	c.sellerID = sellerID
	return nil
}

func (c *ReviewSellerDocumentsCommand) setFlags(flags seller.DocumentFlags) error {
	if err := flags.Validate(); err != nil {
		return err
	}
	c.flags = flags
	return nil
}
