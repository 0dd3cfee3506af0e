// Package order provides the domain model of print-shop work orders.
// It implements the Order aggregate root that moves through the fixed
// five-step production pipeline.
//
// The package includes:
//   - Order: the aggregate root owning per-step statuses, the assignment
//     ledger, the history trail, artwork paths and archival state
//   - Step: the five production steps plus their department names
//   - Status: the per-step workflow state (Pendente, Em Produção, Concluído)
//   - Priority: order urgency (Alta, Média, Baixa)
//   - Assignment: the per-step responsibility record with idempotent work
//     timestamps
//   - HistoryEntry: one line of the append-only audit trail
//   - NetworkPath: a named pointer to artwork files on shared storage
//
// Key business rules:
//   - every status or assignment change appends exactly one history entry
//   - startedAt/completedAt stamps on assignments are write-once
//   - re-assigning the same user preserves work timestamps; a different
//     user starts clean
//   - completing the expedition step archives the order; reactivation is
//     only possible through the explicit archival toggle
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
