// Package buyer contains the Buyer aggregate: a registered customer account
// identified by a unique email.
package buyer

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/errs"
)

// ErrBuyerIsNotConstructed is returned when a Buyer instance was not created
// through the NewBuyer or RestoreBuyer factory methods.
var ErrBuyerIsNotConstructed = errors.New("Buyer must be created via NewBuyer or RestoreBuyer constructor")

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// Buyer represents a registered customer account. Email uniqueness is
// enforced by the repository; everything else is validated here.
type Buyer struct {
	id           kernel.UUID
	name         string
	email        string
	mobile       string
	passwordHash string
	address      string
	pincode      string

	createdAt time.Time

	isConstructed bool
}

// NewBuyer creates a new Buyer account.
func NewBuyer(
	id kernel.UUID,
	name string,
	email string,
	mobile string,
	passwordHash string,
	address string,
	pincode string,
) (*Buyer, error) {
	b := &Buyer{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		b.setID(id),
		b.setName(name),
		b.setEmail(email),
		b.setMobile(mobile),
		b.setPasswordHash(passwordHash),
		b.setAddress(address),
		b.setPincode(pincode),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBuyer rehydrates a Buyer from persistence.
func RestoreBuyer(
	id kernel.UUID,
	name string,
	email string,
	mobile string,
	passwordHash string,
	address string,
	pincode string,
	createdAt time.Time,
) (*Buyer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Buyer{
		id:            id,
		name:          name,
		email:         email,
		mobile:        mobile,
		passwordHash:  passwordHash,
		address:       address,
		pincode:       pincode,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Buyer instance was properly constructed through a
// factory method.
func (b *Buyer) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBuyerIsNotConstructed
	}

	return nil
}

// IsEqual compares two buyers by their unique identifiers.
func (b *Buyer) IsEqual(other *Buyer) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the buyer's unique identifier.
func (b *Buyer) ID() kernel.UUID {
	return b.id
}

// Name returns the buyer's display name.
func (b *Buyer) Name() string {
	return b.name
}

// Email returns the buyer's unique login identity.
func (b *Buyer) Email() string {
	return b.email
}

// Mobile returns the buyer's contact number.
func (b *Buyer) Mobile() string {
	return b.mobile
}

// PasswordHash returns the stored bcrypt hash.
func (b *Buyer) PasswordHash() string {
	return b.passwordHash
}

// Address returns the buyer's default delivery address.
func (b *Buyer) Address() string {
	return b.address
}

// Pincode returns the buyer's postal code.
func (b *Buyer) Pincode() string {
	return b.pincode
}

// CreatedAt returns the server-assigned creation timestamp.
func (b *Buyer) CreatedAt() time.Time {
	return b.createdAt
}

func (b *Buyer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Buyer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}

func (b *Buyer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not a valid email address", email))
	}
	b.email = email
	return nil
}

func (b *Buyer) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValueIsRequiredError("mobile")
	}
	if !mobilePattern.MatchString(mobile) {
		return errs.NewValueIsInvalidErrorWithCause(
			"mobile", fmt.Errorf("%q is not a valid 10-digit mobile number", mobile))
	}
	b.mobile = mobile
	return nil
}

func (b *Buyer) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	b.passwordHash = passwordHash
	return nil
}

func (b *Buyer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	b.address = address
	return nil
}

func (b *Buyer) setPincode(pincode string) error {
	if pincode == "" {
		return errs.NewValueIsRequiredError("pincode")
	}
	if !pincodePattern.MatchString(pincode) {
		return errs.NewValueIsInvalidErrorWithCause(
			"pincode", fmt.Errorf("%q is not a valid 6-digit pincode", pincode))
	}
	b.pincode = pincode
	return nil
}
