package commands

import (
	"errors"

	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

var ErrRegisterBuyerCommandIsNotConstructed = errors.New(
	"RegisterBuyerCommand must be created via NewRegisterBuyerCommand constructor",
)

// RegisterBuyerCommand represents a request to register a new buyer account.
//
// Example:
//
//	cmd, err := NewRegisterBuyerCommand(
//	    "Asha Singh", "asha@example.in", "9123456780",
//	    "s3cret", "5 Park Street, Kolkata", "700016")
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	buyerID, err := handler.Handle(ctx, cmd)
type RegisterBuyerCommand struct { //nolint:recvcheck //using for validation
	name     string
	email    string
	mobile   string
	password string
	address  string
	pincode  string

	guard guard.ConstructorGuard
}

// NewRegisterBuyerCommand creates a command to register a new buyer.
// Requires every field to be present; format rules are enforced by the
// buyer aggregate.
func NewRegisterBuyerCommand(name, email, mobile, password, address, pincode string) (RegisterBuyerCommand, error) {
	cmd := RegisterBuyerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setMobile(mobile),
		cmd.setPassword(password),
		cmd.setAddress(address),
		cmd.setPincode(pincode),
	); err != nil {
		return RegisterBuyerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterBuyerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterBuyerCommandIsNotConstructed)
}

// Name returns the buyer's display name.
func (c RegisterBuyerCommand) Name() string {
	return c.name
}

// Email returns the login email.
func (c RegisterBuyerCommand) Email() string {
	return c.email
}

// Mobile returns the contact number.
func (c RegisterBuyerCommand) Mobile() string {
	return c.mobile
}

// Password returns the plaintext password to be hashed.
func (c RegisterBuyerCommand) Password() string {
	return c.password
}

// Address returns the default delivery address.
func (c RegisterBuyerCommand) Address() string {
	return c.address
}

// Pincode returns the postal code.
func (c RegisterBuyerCommand) Pincode() string {
	return c.pincode
}

func (c *RegisterBuyerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterBuyerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterBuyerCommand) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValueIsRequiredError("mobile")
	}
	c.mobile = mobile
	return nil
}

func (c *RegisterBuyerCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *RegisterBuyerCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *RegisterBuyerCommand) setPincode(pincode string) error {
	if pincode == "" {
		return errs.NewValueIsRequiredError("pincode")
	}
	c.pincode = pincode
	return nil
}
