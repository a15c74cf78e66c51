package jobs

import (
	"context"
	"log/slog"

	"medmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SellerMetricsJob periodically recomputes seller order-history counters
// from the orders table.
type SellerMetricsJob struct {
	handler  commands.RefreshSellerMetricsCommandHandler
	cronSpec string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSellerMetricsJob creates a job that refreshes seller metrics on the
// given cron schedule, e.g. "@hourly".
func NewSellerMetricsJob(
	handler commands.RefreshSellerMetricsCommandHandler,
	cronSpec string,
	logger *slog.Logger,
) *SellerMetricsJob {
	return &SellerMetricsJob{
		handler:  handler,
		cronSpec: cronSpec,
		cron:     cron.New(),
		logger:   logger.With("component", "seller_metrics_job"),
	}
}

// Start schedules the metrics refresh. Returns an error if the cron spec
// does not parse.
func (j *SellerMetricsJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshSellerMetricsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Seller metrics refresh failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Seller metrics refreshed")
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Seller metrics job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the metrics job.
func (j *SellerMetricsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Seller metrics job stopped")
}
