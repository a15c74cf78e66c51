package queries

import (
	"errors"
	"fmt"
	"time"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

var ErrGetSellerProfileQueryIsNotConstructed = errors.New(
	"GetSellerProfileQuery must be created via NewGetSellerProfileQuery constructor",
)

// GetSellerProfileQuery retrieves the acting seller's own profile.
type GetSellerProfileQuery struct { //nolint:recvcheck //using for validation
	actor auth.Actor

	guard guard.ConstructorGuard
}

// NewGetSellerProfileQuery creates a query for the seller's profile.
// The actor must be a seller; the profile is always the actor's own.
func NewGetSellerProfileQuery(actor auth.Actor) (GetSellerProfileQuery, error) {
	query := GetSellerProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setActor(actor); err != nil {
		return GetSellerProfileQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSellerProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerProfileQueryIsNotConstructed)
}

// Actor returns the seller whose profile is requested.
func (q GetSellerProfileQuery) Actor() auth.Actor {
	return q.actor
}

func (q *GetSellerProfileQuery) setActor(actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsSeller() {
		return errs.NewForbiddenErrorWithCause(
			fmt.Errorf("only sellers can read the seller profile, got role %s", actor.Role()))
	}

	q.actor = actor
	return nil
}

// SellerMetricsResponse represents the order-history counters in the read model.
type SellerMetricsResponse struct {
	TotalOrders     int64
	CompletedOrders int64
	CancelledOrders int64
	LastActiveAt    *time.Time
}

// SellerProfileResponse represents a seller profile in the read model.
// The password hash is deliberately absent.
type SellerProfileResponse struct {
	ID                 kernel.UUID
	OwnerName          string
	StoreName          string
	Email              string
	Mobile             string
	TaxID              string
	DrugLicense1       string
	DrugLicense2       string
	Location           kernel.GeoPoint
	Address            string
	AcceptingOrders    bool
	DocumentTax        string
	DocumentLicense1   string
	DocumentLicense2   string
	DocumentPhotos     string
	VerificationStatus string
	VerifiedAt         *time.Time
	Metrics            SellerMetricsResponse
	Active             bool
	CreatedAt          time.Time
}
