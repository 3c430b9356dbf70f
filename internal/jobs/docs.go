// Package jobs provides scheduled background tasks for the field-service system.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OrderAssignmentJob runs every five seconds: it looks up the oldest order
// still in the "new" status and dispatches it to the best available master.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(pendingHandler, assignHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Expected business outcomes are not failures: an empty pending queue, no
// available masters, or an order grabbed by a concurrent manual assignment
// are logged at debug level. Everything else is logged as an error.
package jobs
