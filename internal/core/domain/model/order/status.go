package order

import (
	"pos/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct kitchen workflow.
//
// State transitions:
//
//	CREATED ──┬──> ACCEPTED ──┬──> DELAYED (repeatable) ──┬──> DONE
//	          │               ├──> DONE                   └──> CANCELLED
//	          │               └──> CANCELLED
//	          ├──> REJECTED
//	          └──> CANCELLED
//
// DONE, REJECTED, and CANCELLED are terminal: no outgoing edges exist and any
// further transition attempt fails with an InvalidTransitionError.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order arrives from the ordering
	// platform. Orders in this status await a staff decision.
	Created

	// Accepted indicates the restaurant has committed to preparing the order
	// and announced an estimated preparation time.
	Accepted

	// Delayed indicates the restaurant pushed back the promised ready time.
	// Orders may be delayed repeatedly.
	Delayed

	// Done indicates the preparation finished. Terminal.
	Done

	// Rejected indicates the restaurant declined the order. Terminal.
	Rejected

	// Cancelled indicates the order was withdrawn, either by the customer via
	// the ordering platform or by the restaurant. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Accepted:  "ACCEPTED",
		Delayed:   "DELAYED",
		Done:      "DONE",
		Rejected:  "REJECTED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Accepted:  "ACCEPTED",
		Delayed:   "DELAYED",
		Done:      "DONE",
		Rejected:  "REJECTED",
		Cancelled: "CANCELLED",
	}
}

// getTransitionTable returns the complete set of legal edges of the state machine.
// A status missing from the map is terminal.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Created:  {Accepted, Rejected, Cancelled},
		Accepted: {Delayed, Done, Cancelled},
		Delayed:  {Delayed, Done, Cancelled},
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Accepted, Delayed, Done, Rejected, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewValueIsOutOfRangeError("status", int(s), int(Created), int(Cancelled)))
	}
	return nil
}

// String returns the persisted/displayed name of the status, e.g. "ACCEPTED".
// It implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones, which render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString resolves a persisted status name back to its Status value.
// Returns an error for names that do not match any valid status.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("status")
}

// IsTerminal reports whether the status has no outgoing edges.
// Terminal statuses are final resting states: Done, Rejected, Cancelled.
func (s Status) IsTerminal() bool {
	if err := s.Validate(); err != nil {
		return false
	}
	return len(getTransitionTable()[s]) == 0
}

// CanTransitionTo reports whether an edge from the current status to target
// exists in the transition table, without performing the transition.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitionTable()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the state machine along the edge to target.
//
// Returns:
//   - (target, nil) when the edge exists
//   - (0, *errs.InvalidTransitionError) naming the current and requested
//     states when it does not, including any transition requested from a
//     terminal state
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}

	return target, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Created -> Accepted
func (s Status) Accept() (Status, error) {
	return s.TransitionTo(Accepted)
}

// Reject transitions the status to Rejected.
//
// Valid transitions:
//   - Created -> Rejected
func (s Status) Reject() (Status, error) {
	return s.TransitionTo(Rejected)
}

// Delay transitions the status to Delayed.
//
// Valid transitions:
//   - Accepted -> Delayed
//   - Delayed -> Delayed (repeated delays)
func (s Status) Delay() (Status, error) {
	return s.TransitionTo(Delayed)
}

// Complete transitions the status to Done.
//
// Valid transitions:
//   - Accepted -> Done
//   - Delayed -> Done
func (s Status) Complete() (Status, error) {
	return s.TransitionTo(Done)
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Created -> Cancelled
//   - Accepted -> Cancelled
//   - Delayed -> Cancelled
func (s Status) Cancel() (Status, error) {
	return s.TransitionTo(Cancelled)
}
