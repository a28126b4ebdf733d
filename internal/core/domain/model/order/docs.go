// Package order contains the Order aggregate root and its owned value
// objects: line items, the status state machine, payment terms with
// installment schedules, the approval workflow, and the recurrence
// configuration.
//
// The aggregate is the unit of consistency for the order lifecycle. All
// financial and workflow invariants are enforced by aggregate methods;
// persistence adapters rehydrate orders exclusively through RestoreOrder
// and new orders are created exclusively through NewOrder.
package order
