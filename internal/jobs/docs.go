// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the checkout engine.
//
// # Available Jobs
//
// 1. CheckoutExpirationJob - Runs every ten minutes to discard abandoned
// checkouts and void their payment intents
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireCheckoutsHandler, maxAge, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The expiration job uses the cron expression "0 */10 * * * *", running at
// every tenth minute. Abandoned checkouts accumulate slowly, so a tighter
// schedule would only add database load.
//
// # Error Handling
//
// - Expiration failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
