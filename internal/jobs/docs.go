// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OverdueDeliveryJob - counts active deliveries past their estimated
// delivery time, publishes the count as a gauge and logs a warning when it is
// not zero. Deliveries are never transitioned in the background.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(overdueJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the six-field cron format with seconds. The overdue check
// defaults to "0 * * * * *" (once a minute).
package jobs
