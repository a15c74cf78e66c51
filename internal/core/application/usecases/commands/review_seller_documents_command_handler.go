package commands

import (
	"context"
)

// ReviewSellerDocumentsCommandHandler records a document review outcome and
// persists the recomputed verification status.
type ReviewSellerDocumentsCommandHandler struct {
	uowFactory SellerUoWFactory
}

// NewReviewSellerDocumentsCommandHandler creates a handler for document reviews.
func NewReviewSellerDocumentsCommandHandler(uowFactory SellerUoWFactory) ReviewSellerDocumentsCommandHandler {
	return ReviewSellerDocumentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command. The seller's overall verification
// status is derived from the flags inside the aggregate; nothing recomputes
// it on save.
func (h *ReviewSellerDocumentsCommandHandler) Handle(ctx context.Context, cmd ReviewSellerDocumentsCommand) error {
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

	sellerRepo := uow.SellerRepository()
	aggregate, err := sellerRepo.Get(ctx, cmd.SellerID())
	if err != nil {
		return err
	}

	if err = aggregate.ReviewDocuments(cmd.Flags()); err != nil {
		return err
	}

	if err = sellerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
