// Package services provides domain services that implement business
// operations which don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RecurringOrderScheduler: generates the next instance of a recurring
//     order template and advances or terminates the recurrence
//
// Domain services stay free of persistence concerns; orchestration against
// repositories happens in the application layer.
package services
