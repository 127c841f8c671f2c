// Package jobs provides scheduled background tasks for the shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the shop service.
//
// # Available Jobs
//
// 1. AbandonedCartJob - Runs every minute to find collecting orders whose cart
// has not changed for a configurable threshold and record a reminder fact for
// each of them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(abandonedCartQueryHandler, notifyHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The abandoned cart job skips expected business errors: an order that moved
// out of Collecting or was deleted between the query and the command is not
// worth logging. Everything else indicates a system issue and is logged.
package jobs
