package commands

import (
	"errors"

	"printflow/internal/pkg/guard"
)

var ErrScanDueDatesCommandIsNotConstructed = errors.New(
	"ScanDueDatesCommand must be created via NewScanDueDatesCommand constructor",
)

// ScanDueDatesCommand triggers a due-date sweep over the active order set.
// The scheduler issues it periodically; running it more often is harmless
// because the produced alerts carry per-day deterministic ids.
type ScanDueDatesCommand struct {
	guard guard.ConstructorGuard
}

// NewScanDueDatesCommand creates a command to run a due-date sweep.
func NewScanDueDatesCommand() ScanDueDatesCommand {
	return ScanDueDatesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrScanDueDatesCommandIsNotConstructed if validation fails.
func (c ScanDueDatesCommand) Validate() error {
	return c.guard.Validate(ErrScanDueDatesCommandIsNotConstructed)
}
