// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AssignmentJob - Periodically sweeps all registered couriers and packs
// waiting orders into shipments for those without an active one.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignOrdersHandler, getAllCouriersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The assignment job runs every five seconds. Couriers that already carry an
// active shipment are effectively no-ops for the sweep, so the frequency only
// controls how quickly idle couriers pick up new orders.
//
// # Error Handling
//
// Per-courier failures are logged and do not interrupt the sweep; the
// remaining couriers are still processed.
package jobs
