package seller

import (
	"fmt"

	"medmarket/internal/pkg/errs"
)

// DocumentStatus is the review outcome for a single submitted document.
type DocumentStatus int

const (
	// DocumentUnknown represents an invalid or undefined document status.
	DocumentUnknown DocumentStatus = iota

	// DocumentPending means the document has not been reviewed yet.
	DocumentPending

	// DocumentVerified means the document passed review.
	DocumentVerified

	// DocumentRejected means the document failed review.
	DocumentRejected
)

func getDocumentStatusStrings() map[DocumentStatus]string {
	return map[DocumentStatus]string{
		DocumentPending:  "pending",
		DocumentVerified: "verified",
		DocumentRejected: "rejected",
	}
}

// String returns the wire name of the document status.
// Invalid values render as "unknown".
func (s DocumentStatus) String() string {
	if name, ok := getDocumentStatusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// DocumentStatusFromString parses a wire document status name.
// The enumeration is closed: unknown names fail with a typed error.
func DocumentStatusFromString(name string) (DocumentStatus, error) {
	for status, statusName := range getDocumentStatusStrings() {
		if statusName == name {
			return status, nil
		}
	}
	return DocumentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"documentStatus", fmt.Errorf("%q is not a valid document status", name))
}

// Validate checks that the document status is one of the defined values.
func (s DocumentStatus) Validate() error {
	if _, ok := getDocumentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"documentStatus", fmt.Errorf("%d is not a valid document status", s))
	}
	return nil
}

// DocumentFlags holds the per-document review outcomes for a seller's
// submitted paperwork. It is a plain value; the seller's overall
// verification status is derived from it by ComputeVerificationStatus.
type DocumentFlags struct {
	Tax      DocumentStatus
	License1 DocumentStatus
	License2 DocumentStatus
	Photos   DocumentStatus
}

// NewDocumentFlags returns the initial flag set for a freshly registered
// seller: every document pending review.
func NewDocumentFlags() DocumentFlags {
	return DocumentFlags{
		Tax:      DocumentPending,
		License1: DocumentPending,
		License2: DocumentPending,
		Photos:   DocumentPending,
	}
}

func (f DocumentFlags) statuses() []DocumentStatus {
	return []DocumentStatus{f.Tax, f.License1, f.License2, f.Photos}
}

// Validate checks every per-document status.
func (f DocumentFlags) Validate() error {
	for _, status := range f.statuses() {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// VerificationStatus is the seller's overall verification state, derived
// from the document flags.
type VerificationStatus int

const (
	// VerificationUnknown represents an invalid or undefined verification status.
	VerificationUnknown VerificationStatus = iota

	// VerificationPending means no document has been reviewed yet.
	VerificationPending

	// VerificationUnderReview means some, but not all, documents passed review.
	VerificationUnderReview

	// VerificationVerified means every document passed review.
	VerificationVerified

	// VerificationRejected means at least one document failed review.
	VerificationRejected
)

func getVerificationStatusStrings() map[VerificationStatus]string {
	return map[VerificationStatus]string{
		VerificationPending:     "pending",
		VerificationUnderReview: "under_review",
		VerificationVerified:    "verified",
		VerificationRejected:    "rejected",
	}
}

// String returns the wire name of the verification status.
// Invalid values render as "unknown".
func (s VerificationStatus) String() string {
	if name, ok := getVerificationStatusStrings()[s]; ok {
		return name
	}
	return "unknown"
}

// VerificationStatusFromString parses a wire verification status name.
// The enumeration is closed: unknown names fail with a typed error.
func VerificationStatusFromString(name string) (VerificationStatus, error) {
	for status, statusName := range getVerificationStatusStrings() {
		if statusName == name {
			return status, nil
		}
	}
	return VerificationUnknown, errs.NewValueIsInvalidErrorWithCause(
		"verificationStatus", fmt.Errorf("%q is not a valid verification status", name))
}

// Validate checks that the verification status is one of the defined values.
func (s VerificationStatus) Validate() error {
	if _, ok := getVerificationStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"verificationStatus", fmt.Errorf("%d is not a valid verification status", s))
	}
	return nil
}

// ComputeVerificationStatus derives the overall verification state from the
// per-document review outcomes. It is a pure function, called explicitly
// after every document review; nothing recomputes the status implicitly on
// save.
//
// Rules, in order:
//   - any rejected document makes the seller rejected
//   - all documents verified makes the seller verified
//   - at least one verified document means review is in progress
//   - otherwise the seller is still pending
func ComputeVerificationStatus(flags DocumentFlags) VerificationStatus {
	verified := 0
	for _, status := range flags.statuses() {
		switch status {
		case DocumentRejected:
			return VerificationRejected
		case DocumentVerified:
			verified++
		}
	}

	switch verified {
	case len(flags.statuses()):
		return VerificationVerified
	case 0:
		return VerificationPending
	default:
		return VerificationUnderReview
	}
}
