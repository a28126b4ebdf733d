// Package jobs provides scheduled background tasks for the order lifecycle
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps the order lifecycle requires.
//
// # Available Jobs
//
// 1. RecurringOrdersJob - Runs hourly to generate the next instance of every order whose recurrence is due
// 2. OverdueInstallmentsJob - Runs daily to flag pending installments whose due date has passed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(recurringOrdersHandler, markOverdueHandler, logger)
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
// The recurrence sweep runs at the top of every hour; due dates carry day
// precision, so hourly is more than enough to generate instances on the
// right day. The overdue sweep runs once a day shortly after midnight,
// when the previous day's installments have just become overdue.
//
// # Error Handling
//
// - Both sweeps isolate failures per order: one failing order is logged and counted, the rest of the sweep proceeds
// - A failed order stays due and is retried on the next sweep
// - Failed job starts will stop any already running jobs
package jobs
