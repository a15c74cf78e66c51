package services

import (
	"errors"
	"math"
	"strings"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/seller"
)

// ErrNoSellerAvailable is returned when no seller can take the order.
// This occurs when no candidates are provided, or when none of them is
// active, accepting orders, and within the assignment radius.
var ErrNoSellerAvailable = errors.New("no seller available")

// SellerMatcher is a domain service responsible for choosing the single
// seller a new order is bound to.
//
// Selection is deterministic: among the assignable candidates within the
// radius, the nearest seller wins; if several are at exactly the same
// distance, the one with the lexicographically smallest ID wins. Running
// the match twice over the same candidates always yields the same seller.
//
// Business rules:
//   - Inactive or non-accepting sellers never match
//   - Candidates beyond the maximum distance never match
//   - Distance is the great-circle distance from the order origin
//
// Example usage:
//
//	matcher := NewSellerMatcher()
//	chosen, err := matcher.Match(origin, candidates, 10_000)
//	if errors.Is(err, ErrNoSellerAvailable) {
//	    // nothing to bind the order to
//	    return
//	}
type SellerMatcher struct{}

// NewSellerMatcher creates a new SellerMatcher instance.
func NewSellerMatcher() SellerMatcher {
	return SellerMatcher{}
}

// Match picks the seller for an order placed at origin.
//
// Parameters:
//   - origin: the point the order is placed from
//   - candidates: sellers to consider, in any order
//   - maxDistanceM: the assignment radius in meters
//
// Returns the chosen seller, or ErrNoSellerAvailable if no candidate is
// assignable within the radius. Candidate validation errors are returned
// as-is.
func (m SellerMatcher) Match(
	origin kernel.GeoPoint,
	candidates []*seller.Seller,
	maxDistanceM float64,
) (*seller.Seller, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	var (
		best         *seller.Seller
		bestDistance = math.MaxFloat64
	)

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsAssignable() {
			continue
		}

		distance, err := origin.DistanceTo(candidate.Location())
		if err != nil {
			return nil, err
		}
		if distance > maxDistanceM {
			continue
		}

		if distance < bestDistance || (distance == bestDistance && isBefore(candidate, best)) {
			bestDistance = distance
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrNoSellerAvailable
	}

	return best, nil
}

// isBefore reports whether a wins the tie against b: IDs compare ascending.
func isBefore(a, b *seller.Seller) bool {
	return b == nil || strings.Compare(a.ID().String(), b.ID().String()) < 0
}
