package commands

import (
	"errors"
	"time"

	"pos/internal/pkg/guard"
)

var ErrMarkInstallmentsOverdueCommandIsNotConstructed = errors.New(
	"MarkInstallmentsOverdueCommand must be created via NewMarkInstallmentsOverdueCommand constructor",
)

// MarkInstallmentsOverdueCommand triggers one sweep that flags pending
// installments whose due date has passed.
type MarkInstallmentsOverdueCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewMarkInstallmentsOverdueCommand creates a command to run an overdue
// sweep as of now.
func NewMarkInstallmentsOverdueCommand(now time.Time) MarkInstallmentsOverdueCommand {
	return MarkInstallmentsOverdueCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c MarkInstallmentsOverdueCommand) Validate() error {
	return c.guard.Validate(ErrMarkInstallmentsOverdueCommandIsNotConstructed)
}

// Now returns the instant the sweep evaluates due dates against.
func (c MarkInstallmentsOverdueCommand) Now() time.Time { return c.now }
