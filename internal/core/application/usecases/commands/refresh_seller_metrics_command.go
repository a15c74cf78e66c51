package commands

import (
	"errors"

	"medmarket/internal/pkg/guard"
)

var ErrRefreshSellerMetricsCommandIsNotConstructed = errors.New(
	"RefreshSellerMetricsCommand must be created via NewRefreshSellerMetricsCommand constructor",
)

// RefreshSellerMetricsCommand triggers a recomputation of every active
// seller's order-history counters from the orders table. It is a
// parameterless command issued by the scheduled metrics job.
type RefreshSellerMetricsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshSellerMetricsCommand creates a command to refresh seller metrics.
func NewRefreshSellerMetricsCommand() RefreshSellerMetricsCommand {
	return RefreshSellerMetricsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *RefreshSellerMetricsCommand) Validate() error {
	return c.guard.Validate(
		ErrRefreshSellerMetricsCommandIsNotConstructed,
	)
}
