// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PaymentTimeoutJob - Runs every minute to cancel Pending orders whose
// payment never arrived within the configured timeout.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, cancelHandler, timeout, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The timeout sweep treats precondition failures and version conflicts as
// expected: a concurrent admin action beat the job to the order. Everything
// else is logged.
package jobs
