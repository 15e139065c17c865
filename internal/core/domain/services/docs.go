// Package services provides domain services that orchestrate business logic
// across the order aggregate without naturally belonging to it.
//
// The package includes:
//   - ChangeTracker: Snapshots tracked lifecycle fields around a mutation,
//     diffs them, and resolves the change set to exactly one outbound
//     notification using a fixed priority order.
//
// Domain services hold no state and no infrastructure dependencies; delivery
// of the notifications they build is an adapter concern.
package services
