// Package kernel contains shared value objects used across all domain aggregates.
//
// The package provides:
//   - UUID: validated entity identifiers backed by github.com/google/uuid
//   - GeoPoint: validated WGS84 coordinates with great-circle distance math
//
// All value objects in this package are immutable and must be created through
// their constructor functions. Zero values fail validation.
package kernel
