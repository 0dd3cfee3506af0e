package order

import (
	"fmt"

	"printflow/internal/pkg/errs"
)

// Status represents the state of a single production step.
// Every step of an order carries its own Status.
//
// Possible states:
//
//	Pendente ──> Em Produção ──> Concluído
//
// Transitions are deliberately permissive: operators may move a step to any
// status in any direction to correct mistakes. The diagram above is the
// expected path, not an enforced one. The only transition with a side effect
// is Concluído on the expedition step, which archives the order.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPendente is the initial status of every step.
	StatusPendente

	// StatusEmProducao indicates work on the step has started.
	// Entering this status stamps the step assignment's startedAt once.
	StatusEmProducao

	// StatusConcluido indicates the step is finished.
	// Entering this status stamps the step assignment's completedAt once.
	StatusConcluido
)

// getStatusNames returns a map of Status values to their display names.
// The names double as the persistence representation, matching what the
// operators see on the board.
func getStatusNames() map[Status]string {
	return map[Status]string{
		StatusPendente:   "Pendente",
		StatusEmProducao: "Em Produção",
		StatusConcluido:  "Concluído",
	}
}

// StatusFromName parses a Status from its display name (e.g. "Em Produção").
// Returns an error for unknown names.
func StatusFromName(name string) (Status, error) {
	for status, n := range getStatusNames() {
		if n == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// String returns the display name of the status.
// Returns "Unknown" for invalid status values.
// Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusNames()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pendente, Em Produção, Concluído.
func (s Status) Validate() error {
	if _, ok := getStatusNames()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}
