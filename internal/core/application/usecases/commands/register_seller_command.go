package commands

import (
	"errors"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

var ErrRegisterSellerCommandIsNotConstructed = errors.New(
	"RegisterSellerCommand must be created via NewRegisterSellerCommand constructor",
)

// RegisterSellerCommand represents a request to register a new seller store.
// Carries the store identity, paperwork references, and the geographic
// location used by order assignment.
type RegisterSellerCommand struct { //nolint:recvcheck //using for validation
	ownerName    string
	storeName    string
	email        string
	mobile       string
	taxID        string
	drugLicense1 string
	drugLicense2 string
	password     string
	location     kernel.GeoPoint
	address      string

	guard guard.ConstructorGuard
}

// NewRegisterSellerCommand creates a command to register a new seller.
// Requires every field to be present and the location to be a valid point;
// format rules (GST pattern, email, mobile) are enforced by the seller
// aggregate.
func NewRegisterSellerCommand(
	ownerName string,
	storeName string,
	email string,
	mobile string,
	taxID string,
	drugLicense1 string,
	drugLicense2 string,
	password string,
	location kernel.GeoPoint,
	address string,
) (RegisterSellerCommand, error) {
	cmd := RegisterSellerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequired("ownerName", ownerName, &cmd.ownerName),
		cmd.setRequired("storeName", storeName, &cmd.storeName),
		cmd.setRequired("email", email, &cmd.email),
		cmd.setRequired("mobile", mobile, &cmd.mobile),
		cmd.setRequired("taxId", taxID, &cmd.taxID),
		cmd.setRequired("drugLicense1", drugLicense1, &cmd.drugLicense1),
		cmd.setRequired("drugLicense2", drugLicense2, &cmd.drugLicense2),
		cmd.setRequired("password", password, &cmd.password),
		cmd.setRequired("address", address, &cmd.address),
		cmd.setLocation(location),
	); err != nil {
		return RegisterSellerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterSellerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSellerCommandIsNotConstructed)
}

// OwnerName returns the registered owner's name.
func (c RegisterSellerCommand) OwnerName() string {
	return c.ownerName
}

// StoreName returns the store display name.
func (c RegisterSellerCommand) StoreName() string {
	return c.storeName
}

// Email returns the login email.
func (c RegisterSellerCommand) Email() string {
	return c.email
}

// Mobile returns the contact number.
func (c RegisterSellerCommand) Mobile() string {
	return c.mobile
}

// TaxID returns the GST registration number.
func (c RegisterSellerCommand) TaxID() string {
	return c.taxID
}

// DrugLicense1 returns the first pharmacy license number.
func (c RegisterSellerCommand) DrugLicense1() string {
	return c.drugLicense1
}

// DrugLicense2 returns the second pharmacy license number.
func (c RegisterSellerCommand) DrugLicense2() string {
	return c.drugLicense2
}

// Password returns the plaintext password to be hashed.
func (c RegisterSellerCommand) Password() string {
	return c.password
}

// Location returns the store coordinates.
func (c RegisterSellerCommand) Location() kernel.GeoPoint {
	return c.location
}

// Address returns the free-text store address.
func (c RegisterSellerCommand) Address() string {
	return c.address
}

func (c *RegisterSellerCommand) setRequired(param, value string, target *string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	*target = value
	return nil
}

func (c *RegisterSellerCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
