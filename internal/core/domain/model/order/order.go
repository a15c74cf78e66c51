package order

import (
	"errors"
	"fmt"
	"math"
	"time"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// totalTolerance absorbs floating-point drift when comparing the declared
// total against the sum of line subtotals.
const totalTolerance = 0.01

// Order represents a buyer's order bound to exactly one seller. It is the
// aggregate root that manages the order lifecycle from creation through
// confirmation, shipping, and delivery or cancellation.
//
// Order follows these invariants:
//   - Must have valid unique identifiers for itself, its buyer, and its seller
//   - The seller binding is set once, at construction, and never changes;
//     there is no setter for it, making reassignment structurally impossible
//   - Must carry at least one validated line item
//   - The declared total must equal the sum of line subtotals at creation
//   - Status transitions follow the lifecycle table and are role-gated
//   - Can only be created through NewOrder or RestoreOrder
//
// The version field supports optimistic concurrency on status transitions:
// the repository's status update compares-and-swaps on it so that of two
// racing transitions exactly one wins and the loser observes a conflict.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID is the owning buyer; immutable after creation
	buyerID kernel.UUID

	// sellerID is the assigned seller; set exactly once at creation
	sellerID kernel.UUID

	// items are the order lines; non-empty, immutable after creation
	items []Item

	// totalAmount is the declared total, validated against the items at creation
	totalAmount float64

	// origin is the geographic point the proximity search ran from
	origin kernel.GeoPoint

	// address is the free-text delivery address accompanying the origin point
	address string

	// prescriptionImage is an optional reference to an uploaded prescription
	prescriptionImage string

	// status is the current state in the order lifecycle
	status Status

	// version is the optimistic concurrency token for status transitions
	version int64

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order bound to the given seller, in Pending status.
// This is the only way to create an order for a new purchase; the seller
// binding passed here is final.
//
// Parameters:
//   - id: unique identifier for the order
//   - buyerID: the buyer placing the order
//   - sellerID: the seller chosen by the assignment flow
//   - items: at least one validated line item
//   - totalAmount: declared total; must equal the sum of line subtotals
//   - origin: the coordinates the proximity search ran from
//   - address: free-text delivery address
//   - prescriptionImage: optional uploaded prescription reference ("" if none)
//
// Returns the created order with status Pending and version 1, or a
// validation error if any argument violates an invariant.
func NewOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	items []Item,
	totalAmount float64,
	origin kernel.GeoPoint,
	address string,
	prescriptionImage string,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:            Pending,
		version:           1,
		prescriptionImage: prescriptionImage,
		createdAt:         now,
		updatedAt:         now,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setItems(items),
		o.setOrigin(origin),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	if err := o.setTotalAmount(totalAmount); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence.
// Stored state is trusted for the total (it was validated at creation) but
// the identifiers, status, and version are still checked so that corrupted
// rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	items []Item,
	totalAmount float64,
	origin kernel.GeoPoint,
	address string,
	prescriptionImage string,
	status Status,
	version int64,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
		origin.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause(
			"version", fmt.Errorf("%d is not a valid order version", version))
	}

	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                id,
		buyerID:           buyerID,
		sellerID:          sellerID,
		items:             items,
		totalAmount:       totalAmount,
		origin:            origin,
		address:           address,
		prescriptionImage: prescriptionImage,
		status:            status,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the owning buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the assigned seller's identifier.
// The binding was made at creation and never changes.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the declared order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Origin returns the geographic point the order was placed from.
func (o *Order) Origin() kernel.GeoPoint {
	return o.origin
}

// Address returns the free-text delivery address.
func (o *Order) Address() string {
	return o.address
}

// PrescriptionImage returns the optional prescription reference, or "" if
// the order carries none.
func (o *Order) PrescriptionImage() string {
	return o.prescriptionImage
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic concurrency token as read from storage.
// The repository compares-and-swaps on this value when persisting a
// transition; the domain never increments it.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns the server-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the server-assigned last-modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsAccessibleBy reports whether the actor is the order's owning buyer or
// its assigned seller. All reads and transitions are restricted to these
// two identities.
func (o *Order) IsAccessibleBy(actor auth.Actor) bool {
	switch actor.Role() {
	case auth.RoleBuyer:
		return actor.ID().IsEqual(o.buyerID)
	case auth.RoleSeller:
		return actor.ID().IsEqual(o.sellerID)
	default:
		return false
	}
}

// TransitionTo moves the order to the target status on behalf of the actor.
//
// The ownership check runs first: an actor who is neither the owning buyer
// nor the assigned seller is rejected with a forbidden error before any
// state inspection. The status machine then validates the edge and the
// actor's role on it.
//
// Example:
//
//	err := ord.TransitionTo(order.Confirmed, sellerActor)
//	if err != nil {
//	    // forbidden, invalid transition, or invalid target status
//	}
func (o *Order) TransitionTo(target Status, actor auth.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if !o.IsAccessibleBy(actor) {
		return errs.NewForbiddenErrorWithCause(
			fmt.Errorf("actor %s is neither the buyer nor the assigned seller of order %s",
				actor.ID(), o.id))
	}

	newStatus, err := o.status.TransitionTo(target, actor.Role())
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

// setTotalAmount must run after setItems: it validates the declared total
// against the sum of line subtotals.
func (o *Order) setTotalAmount(totalAmount float64) error {
	var sum float64
	for _, item := range o.items {
		sum += item.Subtotal()
	}

	if math.Abs(totalAmount-sum) > totalTolerance {
		return errs.NewValueIsInvalidErrorWithCause(
			"totalAmount", fmt.Errorf("declared total %.2f does not match item sum %.2f", totalAmount, sum))
	}

	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setOrigin(origin kernel.GeoPoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	o.origin = origin
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}
