// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
//
// Mutating handlers apply per-order mutual exclusion via optimistic
// concurrency: a version conflict reported by the repository causes the
// whole read-modify-write cycle to re-run against fresh state, up to a
// small retry budget.
package commands

import (
	"context"
	"errors"
	"time"

	"pos/internal/core/ports"
	"pos/internal/pkg/errs"
)

// maxVersionRetries bounds how many times a handler re-runs its
// read-modify-write cycle after an optimistic-concurrency conflict.
const maxVersionRetries = 3

// perOrderTimeout caps how long a sweep or batch handler may spend on a
// single order. One hung repository call must not stall the remaining
// orders of the batch.
const perOrderTimeout = 30 * time.Second

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// TemplateRepoFactory provides access to the template repository within a transaction.
	TemplateRepoFactory interface {
		TemplateRepository() ports.TemplateRepository
	}

	// BulkOperationRepoFactory provides access to the bulk-operation repository within a transaction.
	BulkOperationRepoFactory interface {
		BulkOperationRepository() ports.BulkOperationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TemplateUoW manages transactions for template-only operations.
	TemplateUoW interface {
		TxManager
		TemplateRepoFactory
	}

	// TemplateUoWFactory creates new template unit of work instances.
	TemplateUoWFactory interface {
		Create() TemplateUoW
	}

	// BulkOperationUoW manages transactions for bulk-operation records.
	BulkOperationUoW interface {
		TxManager
		BulkOperationRepoFactory
	}

	// BulkOperationUoWFactory creates new bulk-operation unit of work instances.
	BulkOperationUoWFactory interface {
		Create() BulkOperationUoW
	}

	// UoW manages transactions across order and template aggregates.
	// Used by commands that read a template and write an order.
	UoW interface {
		TxManager
		OrderRepoFactory
		TemplateRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// retryOnVersionConflict runs fn, re-running the whole cycle when it fails
// with an optimistic-concurrency conflict. Any other outcome is returned
// as-is. fn must re-read current aggregate state on every attempt.
func retryOnVersionConflict(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxVersionRetries; attempt++ {
		err = fn(ctx)
		if err == nil || !errors.Is(err, errs.ErrVersionIsInvalid) {
			return err
		}
	}
	return err
}
