// Package seller contains the Seller aggregate: a registered store identity
// with its geographic location, document verification state, the accepting
// flag that gates order assignment, and aggregated order metrics.
package seller
