package ports

import "time"

// Clock abstracts the current time so commands, the due-date scan and tests
// agree on what "today" means.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time

	// Today returns the current calendar day in order.DateLayout format
	// (YYYY-MM-DD). Delivery dates compare against this value.
	Today() string
}
