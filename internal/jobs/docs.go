// Package jobs provides scheduled background tasks for the delivery platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order lifecycle.
//
// # Available Jobs
//
// 1. KitchenJob - Runs every second to move created orders into preparation and finished ones to ready
// 2. StaleAssignmentJob - Runs every second to return abandoned claims to the ready pool
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the shared registry
//	jobManager := jobs.NewJobManager(registry, nil, prepTime, staleTimeout, logger)
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
// Both jobs use the cron expression "* * * * * *" which means they run every second.
// This frequency keeps the simulated kitchen and dispatch pool responsive.
//
// # Error Handling
//
// - The kitchen job ignores expected contention outcomes (an order moved on before its pass)
// - The stale assignment job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
