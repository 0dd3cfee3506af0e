// Package services provides domain services that operate across the whole
// order set rather than on a single aggregate.
//
// The package includes:
//   - BoardProjector: the pure projection engine deriving the stage-board,
//     my-tasks and team board layouts from orders and team members
//   - DueDateScanner: the pure derivation of due-today and overdue alerts
//
// Both services are stateless; all state lives in the aggregates and the
// notification feed they read from and write to.
package services
