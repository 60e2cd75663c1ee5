// Package jobs provides scheduled background tasks for the freight system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the forwarding service.
//
// # Available Jobs
//
// 1. TrackingSyncJob - Periodically refreshes the carrier tracking snapshot
// of every shipment that has a carrier code and is past Draft.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, syncTrackingHandler, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The tracking sync schedule is a six-field cron expression with seconds,
// taken from configuration. The default "0 0 * * * *" runs hourly, which
// matches how often carriers refresh vessel positions.
//
// # Error Handling
//
// The sweep treats shipments independently: one failed lookup is logged
// and the rest of the sweep continues. Shipments that became ineligible
// between the listing and the sync are skipped silently.
package jobs
