package order

import (
	"errors"

	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when attempting to use an improperly
// initialized Item. Items must be created via the NewItem constructor.
var ErrItemIsNotConstructed = errs.NewValueIsRequiredError(
	"item must be created via NewItem constructor")

// Item is a single order line: a product reference with its unit price and
// quantity. Item is an immutable value object; the order total is validated
// against the sum of item subtotals at creation time.
type Item struct { //nolint:recvcheck //using for validation
	productID    string
	name         string
	manufacturer string
	unitPrice    float64
	quantity     int

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
// Product ID, name, and manufacturer are required; unit price must be
// positive and quantity at least 1.
func NewItem(productID, name, manufacturer string, unitPrice float64, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setManufacturer(manufacturer),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate checks if the Item was properly constructed using the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the product's display name.
func (i Item) Name() string {
	return i.name
}

// Manufacturer returns the product's manufacturer name.
func (i Item) Manufacturer() string {
	return i.manufacturer
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Quantity returns the ordered unit count.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns the line total: unit price times quantity.
func (i Item) Subtotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}

	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	i.name = name
	return nil
}

func (i *Item) setManufacturer(manufacturer string) error {
	if manufacturer == "" {
		return errs.NewValueIsRequiredError("manufacturer")
	}

	i.manufacturer = manufacturer
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice <= 0 {
		return errs.NewValueIsInvalidError("unitPrice")
	}

	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}

	i.quantity = quantity
	return nil
}

// maxItemQuantity caps a single line's unit count.
const maxItemQuantity = 10000
