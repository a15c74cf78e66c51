package seller

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/errs"
)

// ErrSellerIsNotConstructed is returned when a Seller instance was not created
// through the NewSeller or RestoreSeller factory methods.
var ErrSellerIsNotConstructed = errors.New("Seller must be created via NewSeller or RestoreSeller constructor")

var (
	// taxIDPattern is the Indian GST registration number format.
	taxIDPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)

	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Metrics aggregates a seller's order history counters. The values are
// recomputed from the order store by a background job; the aggregate only
// carries the last computed snapshot.
type Metrics struct {
	TotalOrders     int64
	CompletedOrders int64
	CancelledOrders int64
	LastActiveAt    *time.Time
}

// Seller represents a registered store in the marketplace. It is an
// aggregate root that manages the store identity, its geographic location,
// document verification, and the accepting flag that gates whether the
// store participates in order assignment.
//
// Seller follows these invariants:
//   - Identity fields (email, mobile, tax ID) are validated at construction
//     and unique across the store; uniqueness is enforced by the repository
//   - The overall verification status is derived only from the document
//     flags via ComputeVerificationStatus
//   - An inactive or non-accepting seller never matches order assignment
//   - Deactivation is soft: the record is never physically deleted
//   - Can only be created through NewSeller or RestoreSeller
//
// The accepting flag carries its own optimistic token (acceptingVersion) so
// the repository can compare-and-swap it independently of profile writes.
type Seller struct {
	// id is the unique identifier for the seller
	id kernel.UUID

	// ownerName is the registered owner's name
	ownerName string

	// storeName is the store's display name
	storeName string

	// email is the unique login identity
	email string

	// mobile is the unique contact number
	mobile string

	// taxID is the unique GST registration number
	taxID string

	// drugLicense1 and drugLicense2 are the submitted pharmacy license numbers
	drugLicense1 string
	drugLicense2 string

	// passwordHash is the bcrypt hash of the seller's password
	passwordHash string

	// location is the store's geographic position used by assignment
	location kernel.GeoPoint

	// address is the free-text store address accompanying the location
	address string

	// acceptingOrders gates participation in order assignment
	acceptingOrders bool

	// acceptingVersion is the optimistic token for the accepting flag
	acceptingVersion int64

	// documents holds the per-document review outcomes
	documents DocumentFlags

	// verificationStatus is derived from documents via ComputeVerificationStatus
	verificationStatus VerificationStatus

	// verifiedAt is set when the seller first becomes verified
	verifiedAt *time.Time

	// metrics is the last computed order-history snapshot
	metrics Metrics

	// active is the soft-deactivation flag
	active bool

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the seller was created via a factory method
	isConstructed bool
}

// NewSeller creates a new Seller in the initial registration state: every
// document pending review, accepting orders, active.
//
// Parameters:
//   - id: unique identifier for the seller
//   - ownerName: registered owner's name
//   - storeName: store display name
//   - email: unique login identity
//   - mobile: unique 10-digit contact number
//   - taxID: unique GST registration number, validated against the GST format
//   - drugLicense1, drugLicense2: submitted pharmacy license numbers
//   - passwordHash: bcrypt hash of the chosen password
//   - location: store coordinates used by assignment
//   - address: free-text store address
//
// Returns the created seller, or a validation error if any argument
// violates an invariant.
func NewSeller(
	id kernel.UUID,
	ownerName string,
	storeName string,
	email string,
	mobile string,
	taxID string,
	drugLicense1 string,
	drugLicense2 string,
	passwordHash string,
	location kernel.GeoPoint,
	address string,
) (*Seller, error) {
	now := time.Now().UTC()
	s := &Seller{
		acceptingOrders:    true,
		acceptingVersion:   1,
		documents:          NewDocumentFlags(),
		verificationStatus: VerificationPending,
		active:             true,
		createdAt:          now,
		updatedAt:          now,
		isConstructed:      true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerName(ownerName),
		s.setStoreName(storeName),
		s.setEmail(email),
		s.setMobile(mobile),
		s.setTaxID(taxID),
		s.setDrugLicenses(drugLicense1, drugLicense2),
		s.setPasswordHash(passwordHash),
		s.setLocation(location),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSeller rehydrates a Seller from persistence. Stored free-text
// fields are trusted (they were validated at creation) but identifiers,
// the location, statuses, and the accepting version are still checked so
// corrupted rows surface as errors instead of invalid aggregates.
func RestoreSeller(
	id kernel.UUID,
	ownerName string,
	storeName string,
	email string,
	mobile string,
	taxID string,
	drugLicense1 string,
	drugLicense2 string,
	passwordHash string,
	location kernel.GeoPoint,
	address string,
	acceptingOrders bool,
	acceptingVersion int64,
	documents DocumentFlags,
	verificationStatus VerificationStatus,
	verifiedAt *time.Time,
	metrics Metrics,
	active bool,
	createdAt time.Time,
	updatedAt time.Time,
) (*Seller, error) {
	if err := errors.Join(
		id.Validate(),
		location.Validate(),
		documents.Validate(),
		verificationStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if acceptingVersion < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause(
			"acceptingVersion", fmt.Errorf("%d is not a valid accepting version", acceptingVersion))
	}

	return &Seller{
		id:                 id,
		ownerName:          ownerName,
		storeName:          storeName,
		email:              email,
		mobile:             mobile,
		taxID:              taxID,
		drugLicense1:       drugLicense1,
		drugLicense2:       drugLicense2,
		passwordHash:       passwordHash,
		location:           location,
		address:            address,
		acceptingOrders:    acceptingOrders,
		acceptingVersion:   acceptingVersion,
		documents:          documents,
		verificationStatus: verificationStatus,
		verifiedAt:         verifiedAt,
		metrics:            metrics,
		active:             active,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isConstructed:      true,
	}, nil
}

// Validate ensures the Seller instance was properly constructed through a
// factory method.
func (s *Seller) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSellerIsNotConstructed
	}

	return nil
}

// IsEqual compares two sellers by their unique identifiers.
func (s *Seller) IsEqual(other *Seller) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the seller's unique identifier.
func (s *Seller) ID() kernel.UUID {
	return s.id
}

// OwnerName returns the registered owner's name.
func (s *Seller) OwnerName() string {
	return s.ownerName
}

// StoreName returns the store's display name.
func (s *Seller) StoreName() string {
	return s.storeName
}

// Email returns the seller's unique login identity.
func (s *Seller) Email() string {
	return s.email
}

// Mobile returns the seller's contact number.
func (s *Seller) Mobile() string {
	return s.mobile
}

// TaxID returns the GST registration number.
func (s *Seller) TaxID() string {
	return s.taxID
}

// DrugLicense1 returns the first submitted pharmacy license number.
func (s *Seller) DrugLicense1() string {
	return s.drugLicense1
}

// DrugLicense2 returns the second submitted pharmacy license number.
func (s *Seller) DrugLicense2() string {
	return s.drugLicense2
}

// PasswordHash returns the stored bcrypt hash.
func (s *Seller) PasswordHash() string {
	return s.passwordHash
}

// Location returns the store's geographic position.
func (s *Seller) Location() kernel.GeoPoint {
	return s.location
}

// Address returns the free-text store address.
func (s *Seller) Address() string {
	return s.address
}

// IsAcceptingOrders reports whether the store currently accepts new orders.
func (s *Seller) IsAcceptingOrders() bool {
	return s.acceptingOrders
}

// AcceptingVersion returns the optimistic token guarding the accepting
// flag, as read from storage. The repository compares-and-swaps on it; the
// domain never increments it.
func (s *Seller) AcceptingVersion() int64 {
	return s.acceptingVersion
}

// Documents returns the per-document review outcomes.
func (s *Seller) Documents() DocumentFlags {
	return s.documents
}

// VerificationStatus returns the derived overall verification state.
func (s *Seller) VerificationStatus() VerificationStatus {
	return s.verificationStatus
}

// VerifiedAt returns when the seller first became verified, or nil.
func (s *Seller) VerifiedAt() *time.Time {
	return s.verifiedAt
}

// Metrics returns the last computed order-history snapshot.
func (s *Seller) Metrics() Metrics {
	return s.metrics
}

// IsActive reports whether the seller account is active.
func (s *Seller) IsActive() bool {
	return s.active
}

// CreatedAt returns the server-assigned creation timestamp.
func (s *Seller) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the server-assigned last-modification timestamp.
func (s *Seller) UpdatedAt() time.Time {
	return s.updatedAt
}

// IsAssignable reports whether the seller participates in order assignment:
// active and currently accepting orders.
func (s *Seller) IsAssignable() bool {
	return s.active && s.acceptingOrders
}

// SetAcceptingOrders flips the accepting flag. A deactivated seller cannot
// reopen the store.
func (s *Seller) SetAcceptingOrders(accepting bool) error {
	if !s.active {
		return errs.NewConflictErrorWithCause(
			"acceptingOrders", fmt.Errorf("seller %s is deactivated", s.id))
	}

	s.acceptingOrders = accepting
	s.updatedAt = time.Now().UTC()
	return nil
}

// ReviewDocuments records a document review outcome and recomputes the
// derived verification status. The first time the seller becomes verified,
// the verification timestamp is set; it is never cleared afterwards.
func (s *Seller) ReviewDocuments(flags DocumentFlags) error {
	if err := flags.Validate(); err != nil {
		return err
	}

	s.documents = flags
	s.verificationStatus = ComputeVerificationStatus(flags)
	if s.verificationStatus == VerificationVerified && s.verifiedAt == nil {
		now := time.Now().UTC()
		s.verifiedAt = &now
	}
	s.updatedAt = time.Now().UTC()
	return nil
}

// Relocate updates the store's coordinates and address.
func (s *Seller) Relocate(location kernel.GeoPoint, address string) error {
	if err := errors.Join(s.setLocation(location), s.setAddress(address)); err != nil {
		return err
	}

	s.updatedAt = time.Now().UTC()
	return nil
}

// UpdateMetrics replaces the order-history snapshot. Called by the metrics
// job after recomputing counters from the order store.
func (s *Seller) UpdateMetrics(metrics Metrics) {
	s.metrics = metrics
	s.updatedAt = time.Now().UTC()
}

// Deactivate soft-deletes the seller: the account stops accepting orders
// and no longer matches assignment, but the record is kept.
func (s *Seller) Deactivate() {
	s.active = false
	s.acceptingOrders = false
	s.updatedAt = time.Now().UTC()
}

func (s *Seller) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Seller) setOwnerName(ownerName string) error {
	if ownerName == "" {
		return errs.NewValueIsRequiredError("ownerName")
	}
	s.ownerName = ownerName
	return nil
}

func (s *Seller) setStoreName(storeName string) error {
	if storeName == "" {
		return errs.NewValueIsRequiredError("storeName")
	}
	s.storeName = storeName
	return nil
}

func (s *Seller) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not a valid email address", email))
	}
	s.email = email
	return nil
}

func (s *Seller) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValueIsRequiredError("mobile")
	}
	if !mobilePattern.MatchString(mobile) {
		return errs.NewValueIsInvalidErrorWithCause(
			"mobile", fmt.Errorf("%q is not a valid 10-digit mobile number", mobile))
	}
	s.mobile = mobile
	return nil
}

func (s *Seller) setTaxID(taxID string) error {
	if taxID == "" {
		return errs.NewValueIsRequiredError("taxId")
	}
	if !taxIDPattern.MatchString(taxID) {
		return errs.NewValueIsInvalidErrorWithCause(
			"taxId", fmt.Errorf("%q is not a valid GST registration number", taxID))
	}
	s.taxID = taxID
	return nil
}

func (s *Seller) setDrugLicenses(license1, license2 string) error {
	if license1 == "" {
		return errs.NewValueIsRequiredError("drugLicense1")
	}
	if license2 == "" {
		return errs.NewValueIsRequiredError("drugLicense2")
	}
	s.drugLicense1 = license1
	s.drugLicense2 = license2
	return nil
}

func (s *Seller) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	s.passwordHash = passwordHash
	return nil
}

func (s *Seller) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}

func (s *Seller) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	s.address = address
	return nil
}
