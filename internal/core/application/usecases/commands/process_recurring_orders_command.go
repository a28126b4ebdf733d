package commands

import (
	"errors"
	"time"

	"pos/internal/pkg/guard"
)

var ErrProcessRecurringOrdersCommandIsNotConstructed = errors.New(
	"ProcessRecurringOrdersCommand must be created via NewProcessRecurringOrdersCommand constructor",
)

// ProcessRecurringOrdersCommand triggers one sweep over all orders whose
// recurrence is due at the given instant.
type ProcessRecurringOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewProcessRecurringOrdersCommand creates a command to run a recurrence
// sweep as of now.
func NewProcessRecurringOrdersCommand(now time.Time) ProcessRecurringOrdersCommand {
	return ProcessRecurringOrdersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ProcessRecurringOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessRecurringOrdersCommandIsNotConstructed)
}

// Now returns the instant the sweep evaluates dueness against.
func (c ProcessRecurringOrdersCommand) Now() time.Time { return c.now }
