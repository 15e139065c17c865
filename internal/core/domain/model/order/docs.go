// Package order provides domain entities and business logic for order lifecycle
// management in the POS system. It implements the Order aggregate root with
// state transitions, owned items, and an append-only audit event log.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, items, lifecycle timestamps, and transitions
//   - Status: A state machine that enforces valid order status transitions
//   - Item: A line entry with its own completion state
//   - Event: An immutable audit record of one lifecycle transition
//
// Key business rules:
//   - Order status follows the workflow CREATED -> ACCEPTED -> DELAYED/DONE, with
//     REJECTED and CANCELLED as alternative terminal outcomes
//   - Every successful transition produces exactly one audit event, persisted in
//     the same unit of work as the transition itself
//   - Completing the last pending item drives the order itself to DONE through
//     the same state machine as a staff action
//   - Terminal orders (DONE, REJECTED, CANCELLED) admit no further transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
