package order

import (
	"fmt"

	"printflow/internal/pkg/errs"
)

// Priority represents the urgency of an order.
// High priority orders are sorted to the top of board views.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityBaixa is the lowest urgency.
	PriorityBaixa

	// PriorityMedia is the default urgency for new orders.
	PriorityMedia

	// PriorityAlta is the highest urgency. Alta orders come first in
	// board and backlog sorting.
	PriorityAlta
)

// getPriorityNames returns a map of Priority values to their display names.
func getPriorityNames() map[Priority]string {
	return map[Priority]string{
		PriorityBaixa: "Baixa",
		PriorityMedia: "Média",
		PriorityAlta:  "Alta",
	}
}

// DefaultPriority returns the priority assigned to orders created without an
// explicit priority.
func DefaultPriority() Priority {
	return PriorityMedia
}

// PriorityFromName parses a Priority from its display name (e.g. "Alta").
// An empty name yields the default priority. Unknown names return an error.
func PriorityFromName(name string) (Priority, error) {
	if name == "" {
		return DefaultPriority(), nil
	}
	for priority, n := range getPriorityNames() {
		if n == name {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", name))
}

// String returns the display name of the priority.
// Returns "Unknown" for invalid priority values.
func (p Priority) String() string {
	if str, ok := getPriorityNames()[p]; ok {
		return str
	}
	return "Unknown"
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if _, ok := getPriorityNames()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}
