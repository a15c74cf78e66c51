// Package jobs provides scheduled background tasks for the marketplace.
//
// Jobs run on cron schedules via github.com/robfig/cron/v3 and are managed
// through JobManager, which starts and stops them as a unit:
//
//	jobManager := jobs.NewJobManager(refreshMetricsHandler, cronSpec, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// SellerMetricsJob recomputes every active seller's order-history counters
// (total, completed, cancelled, last activity) from the orders table. It runs
// hourly by default; the schedule is configurable. The counters are purely
// derived data, so a failed or missed run is recovered by the next one.
package jobs
